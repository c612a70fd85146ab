// Package bloghdl chứa HTTP handler cho domain Blog.
package bloghdl

import (
	"fmt"

	basehdl "elite_devs/internal/api/base/handler"
	blogdto "elite_devs/internal/api/blog/dto"
	blogmodels "elite_devs/internal/api/blog/models"
	blogsvc "elite_devs/internal/api/blog/service"
	"elite_devs/internal/common"

	"github.com/gofiber/fiber/v3"
)

// relatedPostsLimit số bài liên quan trả kèm khi xem chi tiết.
const relatedPostsLimit = 3

// BlogHandler xử lý bài viết blog: public đọc, admin quản lý.
// InsertOne và UpdateById được override để sinh slug và readTime.
type BlogHandler struct {
	*basehdl.BaseHandler[blogmodels.BlogPost, blogdto.BlogCreateInput, blogdto.BlogUpdateInput]
	service *blogsvc.BlogService
}

// NewBlogHandler tạo mới BlogHandler
func NewBlogHandler() (*BlogHandler, error) {
	service, err := blogsvc.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %v", err)
	}

	h := &BlogHandler{service: service}
	h.BaseHandler = basehdl.NewBaseHandler[blogmodels.BlogPost, blogdto.BlogCreateInput, blogdto.BlogUpdateInput](service)
	return h, nil
}

// List trả về danh sách bài đã xuất bản, phân trang, lọc theo category/tag/featured.
// GET /api/blog?category&tag&featured&page&limit
func (h *BlogHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q blogdto.BlogListQuery
		if err := c.Bind().Query(&q); err != nil {
			return common.ErrInvalidFormat
		}

		page, limit := basehdl.ParsePagination(c)
		result, err := h.service.ListPublished(c.Context(), q, page, limit)
		if err != nil {
			return err
		}

		return basehdl.SuccessWithPagination(c, result.Items, basehdl.Pagination{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPage,
		})
	})
}

// GetBySlug trả về bài đã xuất bản theo slug kèm các bài liên quan.
// Mỗi lượt gọi tăng views; event blog_view do middleware tracking trên route ghi nhận.
// GET /api/blog/:slug
func (h *BlogHandler) GetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			return common.ErrNotFound
		}

		post, err := h.service.GetPublishedBySlug(c.Context(), slug)
		if err != nil {
			return err
		}

		related, err := h.service.GetRelated(c.Context(), post, relatedPostsLimit)
		if err != nil {
			return err
		}

		return basehdl.Success(c, common.StatusOK, fiber.Map{
			"post":    post,
			"related": related,
		})
	})
}

// Like tăng lượt thích của bài đã xuất bản.
// POST /api/blog/:slug/like
func (h *BlogHandler) Like(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			return common.ErrNotFound
		}

		post, err := h.service.LikePost(c.Context(), slug)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{"likes": post.Likes})
	})
}

// Categories trả về các chuyên mục có bài đã xuất bản.
// GET /api/blog/categories/list
func (h *BlogHandler) Categories(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		categories, err := h.service.ListCategories(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, categories)
	})
}

// Tags trả về các tag có bài đã xuất bản.
// GET /api/blog/tags/list
func (h *BlogHandler) Tags(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		tags, err := h.service.ListTags(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, tags)
	})
}

// InsertOne tạo bài viết mới (override: sinh slug, readTime, publishedAt).
// POST /api/admin/blog/insert-one
func (h *BlogHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input blogdto.BlogCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := h.ValidateInput(&input); err != nil {
			return err
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			return err
		}

		created, err := h.service.CreatePost(c.Context(), *model)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusCreated, created)
	})
}

// UpdateById cập nhật bài viết (override: sinh lại slug/readTime khi cần).
// PUT /api/admin/blog/update-by-id/:id
func (h *BlogHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.GetIDFromContext(c)
		if err != nil {
			return err
		}

		var input blogdto.BlogUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := h.ValidateInput(&input); err != nil {
			return err
		}

		updated, err := h.service.UpdatePost(c.Context(), id, &input)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, updated)
	})
}

// BulkStatus đổi trạng thái hàng loạt theo danh sách ID.
// POST /api/admin/bulk/blog/status body {ids, status}
func (h *BlogHandler) BulkStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input blogdto.BulkStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		modified, err := h.service.BulkUpdateStatus(c.Context(), input.IDs, input.Status)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{"modifiedCount": modified})
	})
}

// Stats trả về thống kê bài viết cho admin.
// GET /api/admin/blog/stats
func (h *BlogHandler) Stats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.service.GetStats(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, stats)
	})
}
