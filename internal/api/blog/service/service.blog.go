package blogsvc

import (
	"context"
	"fmt"
	"time"

	basemodels "elite_devs/internal/api/base/models"
	basesvc "elite_devs/internal/api/base/service"
	blogdto "elite_devs/internal/api/blog/dto"
	blogmodels "elite_devs/internal/api/blog/models"
	"elite_devs/internal/common"
	"elite_devs/internal/global"
	"elite_devs/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxSlugAttempts giới hạn số lần thử hậu tố số trước khi chuyển sang hậu tố ObjectID.
const maxSlugAttempts = 50

// BlogService quản lý bài viết blog.
type BlogService struct {
	*basesvc.BaseServiceMongoImpl[blogmodels.BlogPost]
}

// NewBlogService tạo mới BlogService
func NewBlogService() (*BlogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BlogPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_posts collection: %v", common.ErrNotFound)
	}
	return &BlogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[blogmodels.BlogPost](collection),
	}, nil
}

// GenerateUniqueSlug sinh slug duy nhất từ tiêu đề.
// Slug trùng được thêm hậu tố -2, -3...; excludeID dùng khi đổi tiêu đề bài đã có.
func (s *BlogService) GenerateUniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := utility.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	for n := 2; n <= maxSlugAttempts; n++ {
		filter := bson.M{"slug": slug}
		if !excludeID.IsZero() {
			filter["_id"] = bson.M{"$ne": excludeID}
		}

		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}

	// Quá nhiều bài trùng tiêu đề: dùng hậu tố ObjectID để chắc chắn duy nhất
	return fmt.Sprintf("%s-%s", base, primitive.NewObjectID().Hex()), nil
}

// CreatePost tạo bài viết mới: sinh slug, ước lượng thời gian đọc,
// gán publishedAt nếu tạo ở trạng thái published.
func (s *BlogService) CreatePost(ctx context.Context, model blogmodels.BlogPost) (blogmodels.BlogPost, error) {
	slug, err := s.GenerateUniqueSlug(ctx, model.Title, primitive.NilObjectID)
	if err != nil {
		return blogmodels.BlogPost{}, err
	}
	model.Slug = slug
	model.ReadTime = utility.EstimateReadTime(model.Content)
	if model.Status == blogmodels.PostStatusPublished {
		model.PublishedAt = time.Now().UnixMilli()
	}

	return s.InsertOne(ctx, model)
}

// UpdatePost cập nhật bài viết từ input partial.
// Đổi tiêu đề sinh lại slug, đổi nội dung tính lại readTime,
// chuyển sang published lần đầu gán publishedAt.
func (s *BlogService) UpdatePost(ctx context.Context, id primitive.ObjectID, input *blogdto.BlogUpdateInput) (blogmodels.BlogPost, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return blogmodels.BlogPost{}, err
	}

	set := map[string]interface{}{}
	if input.Title != nil && *input.Title != current.Title {
		slug, err := s.GenerateUniqueSlug(ctx, *input.Title, id)
		if err != nil {
			return blogmodels.BlogPost{}, err
		}
		set["title"] = *input.Title
		set["slug"] = slug
	}
	if input.Excerpt != nil {
		set["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		set["content"] = *input.Content
		set["readTime"] = utility.EstimateReadTime(*input.Content)
	}
	if input.Author != nil {
		set["author"] = *input.Author
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Tags != nil {
		set["tags"] = *input.Tags
	}
	if input.FeaturedImage != nil {
		set["featuredImage"] = *input.FeaturedImage
	}
	if input.Featured != nil {
		set["featured"] = *input.Featured
	}
	if input.Status != nil {
		set["status"] = *input.Status
		if *input.Status == blogmodels.PostStatusPublished && current.PublishedAt == 0 {
			set["publishedAt"] = time.Now().UnixMilli()
		}
	}

	if len(set) == 0 {
		return current, nil
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// GetPublishedBySlug trả về bài đã xuất bản theo slug, đồng thời tăng lượt xem.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (blogmodels.BlogPost, error) {
	filter := bson.M{"slug": slug, "status": blogmodels.PostStatusPublished}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"views": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// LikePost tăng lượt thích của bài đã xuất bản, trả về bài sau khi tăng.
func (s *BlogService) LikePost(ctx context.Context, slug string) (blogmodels.BlogPost, error) {
	filter := bson.M{"slug": slug, "status": blogmodels.PostStatusPublished}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"likes": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// BulkUpdateStatus đổi trạng thái cho danh sách bài viết, trả về số bản ghi đã thay đổi.
// ID không tồn tại chỉ làm giảm số lượng, không gây lỗi.
func (s *BlogService) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Invalid id: %s", id), common.StatusBadRequest, nil)
		}
		objectIDs = append(objectIDs, objectID)
	}

	filter := bson.M{"_id": bson.M{"$in": objectIDs}}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"status": status}}
	return s.UpdateMany(ctx, filter, update, nil)
}

// distinctStrings lọc kết quả Distinct về các chuỗi khác rỗng.
func distinctStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ListCategories trả về các chuyên mục xuất hiện trong bài đã xuất bản.
func (s *BlogService) ListCategories(ctx context.Context) ([]string, error) {
	values, err := s.Distinct(ctx, "category", bson.M{"status": blogmodels.PostStatusPublished})
	if err != nil {
		return nil, err
	}
	return distinctStrings(values), nil
}

// ListTags trả về các tag xuất hiện trong bài đã xuất bản.
func (s *BlogService) ListTags(ctx context.Context) ([]string, error) {
	values, err := s.Distinct(ctx, "tags", bson.M{"status": blogmodels.PostStatusPublished})
	if err != nil {
		return nil, err
	}
	return distinctStrings(values), nil
}

// GetRelated trả về các bài đã xuất bản cùng chuyên mục, mới nhất trước.
func (s *BlogService) GetRelated(ctx context.Context, post blogmodels.BlogPost, limit int64) ([]blogmodels.BlogPost, error) {
	if post.Category == "" {
		return []blogmodels.BlogPost{}, nil
	}

	filter := bson.M{
		"status":   blogmodels.PostStatusPublished,
		"category": post.Category,
		"_id":      bson.M{"$ne": post.ID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, filter, opts)
}

// PublishedFilter dựng filter danh sách public từ query.
// featured nhận "true"/"false", giá trị khác bị bỏ qua.
func PublishedFilter(q blogdto.BlogListQuery) bson.M {
	filter := bson.M{"status": blogmodels.PostStatusPublished}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Tag != "" {
		filter["tags"] = q.Tag
	}
	switch q.Featured {
	case "true":
		filter["featured"] = true
	case "false":
		filter["featured"] = false
	}
	return filter
}

// ListPublished trả về danh sách bài đã xuất bản, phân trang, mới nhất trước.
func (s *BlogService) ListPublished(ctx context.Context, q blogdto.BlogListQuery, page, limit int64) (*basemodels.PaginateResult[blogmodels.BlogPost], error) {
	filter := PublishedFilter(q)
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// statusRow là một dòng kết quả group-by.
type statusRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// CategoryStats số liệu gộp theo chuyên mục.
type CategoryStats struct {
	Count int64 `json:"count" bson:"count"`
	Views int64 `json:"views" bson:"views"`
	Likes int64 `json:"likes" bson:"likes"`
}

// BlogStats thống kê bài viết cho admin.
type BlogStats struct {
	Total      int64                    `json:"total"`
	ByStatus   map[string]int64         `json:"byStatus"`
	ByCategory map[string]CategoryStats `json:"byCategory"`
	TotalViews int64                    `json:"totalViews"`
	TotalLikes int64                    `json:"totalLikes"`
}

// GetStats trả về thống kê bài viết: tổng, theo trạng thái (zero-fill), theo chuyên mục, tổng views/likes.
func (s *BlogService) GetStats(ctx context.Context) (*BlogStats, error) {
	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var byStatusRows []statusRow
	statusPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	if err := s.Aggregate(ctx, statusPipeline, &byStatusRows); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(blogmodels.PostStatuses))
	for _, status := range blogmodels.PostStatuses {
		byStatus[status] = 0
	}
	for _, row := range byStatusRows {
		byStatus[row.Status] = row.Count
	}

	var byCategoryRows []struct {
		Category      string `bson:"_id"`
		CategoryStats `bson:",inline"`
	}
	categoryPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
			"views": bson.M{"$sum": "$views"},
			"likes": bson.M{"$sum": "$likes"},
		}}},
	}
	if err := s.Aggregate(ctx, categoryPipeline, &byCategoryRows); err != nil {
		return nil, err
	}
	byCategory := make(map[string]CategoryStats, len(byCategoryRows))
	for _, row := range byCategoryRows {
		byCategory[row.Category] = row.CategoryStats
	}

	var totals []struct {
		Views int64 `bson:"views"`
		Likes int64 `bson:"likes"`
	}
	totalPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"views": bson.M{"$sum": "$views"},
			"likes": bson.M{"$sum": "$likes"},
		}}},
	}
	if err := s.Aggregate(ctx, totalPipeline, &totals); err != nil {
		return nil, err
	}

	stats := &BlogStats{Total: total, ByStatus: byStatus, ByCategory: byCategory}
	if len(totals) > 0 {
		stats.TotalViews = totals[0].Views
		stats.TotalLikes = totals[0].Likes
	}
	return stats, nil
}
