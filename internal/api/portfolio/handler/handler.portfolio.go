// Package portfoliohdl chứa HTTP handler cho domain Portfolio.
package portfoliohdl

import (
	"fmt"

	basehdl "elite_devs/internal/api/base/handler"
	portfoliodto "elite_devs/internal/api/portfolio/dto"
	portfoliomodels "elite_devs/internal/api/portfolio/models"
	portfoliosvc "elite_devs/internal/api/portfolio/service"
	"elite_devs/internal/common"

	"github.com/gofiber/fiber/v3"
)

// PortfolioHandler xử lý dự án portfolio: public đọc, admin quản lý.
// InsertOne và UpdateById được override để sinh slug.
type PortfolioHandler struct {
	*basehdl.BaseHandler[portfoliomodels.PortfolioProject, portfoliodto.ProjectCreateInput, portfoliodto.ProjectUpdateInput]
	service *portfoliosvc.PortfolioService
}

// NewPortfolioHandler tạo mới PortfolioHandler
func NewPortfolioHandler() (*PortfolioHandler, error) {
	service, err := portfoliosvc.NewPortfolioService()
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio service: %v", err)
	}

	h := &PortfolioHandler{service: service}
	h.BaseHandler = basehdl.NewBaseHandler[portfoliomodels.PortfolioProject, portfoliodto.ProjectCreateInput, portfoliodto.ProjectUpdateInput](service)
	return h, nil
}

// List trả về danh sách dự án đang hiển thị, phân trang.
// GET /api/portfolio?category&technology&featured&page&limit
func (h *PortfolioHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q portfoliodto.ProjectListQuery
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

// GetBySlug trả về dự án đang hiển thị theo slug.
// Mỗi lượt gọi tăng views; event portfolio_view do middleware tracking trên route ghi nhận.
// GET /api/portfolio/:slug
func (h *PortfolioHandler) GetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			return common.ErrNotFound
		}

		project, err := h.service.GetPublishedBySlug(c.Context(), slug)
		if err != nil {
			return err
		}

		return basehdl.Success(c, common.StatusOK, project)
	})
}

// Like tăng lượt thích của dự án.
// POST /api/portfolio/:slug/like
func (h *PortfolioHandler) Like(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			return common.ErrNotFound
		}

		project, err := h.service.LikeProject(c.Context(), slug)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{"likes": project.Likes})
	})
}

// InsertOne tạo dự án mới (override: sinh slug).
// POST /api/admin/portfolio/insert-one
func (h *PortfolioHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input portfoliodto.ProjectCreateInput
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

		created, err := h.service.CreateProject(c.Context(), *model)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusCreated, created)
	})
}

// UpdateById cập nhật dự án (override: sinh lại slug khi đổi tên).
// PUT /api/admin/portfolio/update-by-id/:id
func (h *PortfolioHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.GetIDFromContext(c)
		if err != nil {
			return err
		}

		var input portfoliodto.ProjectUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := h.ValidateInput(&input); err != nil {
			return err
		}

		updated, err := h.service.UpdateProject(c.Context(), id, &input)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, updated)
	})
}

// BulkStatus đổi trạng thái hàng loạt theo danh sách ID.
// POST /api/admin/bulk/portfolio/status body {ids, status}
func (h *PortfolioHandler) BulkStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input portfoliodto.BulkStatusInput
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

// Stats trả về thống kê dự án cho admin.
// GET /api/admin/portfolio/stats
func (h *PortfolioHandler) Stats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.service.GetStats(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, stats)
	})
}
