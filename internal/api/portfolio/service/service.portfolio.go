package portfoliosvc

import (
	"context"
	"fmt"

	basemodels "elite_devs/internal/api/base/models"
	basesvc "elite_devs/internal/api/base/service"
	portfoliodto "elite_devs/internal/api/portfolio/dto"
	portfoliomodels "elite_devs/internal/api/portfolio/models"
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

// PortfolioService quản lý dự án portfolio.
type PortfolioService struct {
	*basesvc.BaseServiceMongoImpl[portfoliomodels.PortfolioProject]
}

// NewPortfolioService tạo mới PortfolioService
func NewPortfolioService() (*PortfolioService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PortfolioProjects)
	if !exist {
		return nil, fmt.Errorf("failed to get portfolio_projects collection: %v", common.ErrNotFound)
	}
	return &PortfolioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[portfoliomodels.PortfolioProject](collection),
	}, nil
}

// GenerateUniqueSlug sinh slug duy nhất từ tên dự án.
func (s *PortfolioService) GenerateUniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	base := utility.Slugify(title)
	if base == "" {
		base = "project"
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

	return fmt.Sprintf("%s-%s", base, primitive.NewObjectID().Hex()), nil
}

// CreateProject tạo dự án mới với slug sinh tự động.
func (s *PortfolioService) CreateProject(ctx context.Context, model portfoliomodels.PortfolioProject) (portfoliomodels.PortfolioProject, error) {
	slug, err := s.GenerateUniqueSlug(ctx, model.Title, primitive.NilObjectID)
	if err != nil {
		return portfoliomodels.PortfolioProject{}, err
	}
	model.Slug = slug
	return s.InsertOne(ctx, model)
}

// UpdateProject cập nhật dự án từ input partial; đổi tên sinh lại slug.
func (s *PortfolioService) UpdateProject(ctx context.Context, id primitive.ObjectID, input *portfoliodto.ProjectUpdateInput) (portfoliomodels.PortfolioProject, error) {
	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return portfoliomodels.PortfolioProject{}, err
	}

	set := map[string]interface{}{}
	if input.Title != nil && *input.Title != current.Title {
		slug, err := s.GenerateUniqueSlug(ctx, *input.Title, id)
		if err != nil {
			return portfoliomodels.PortfolioProject{}, err
		}
		set["title"] = *input.Title
		set["slug"] = slug
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Content != nil {
		set["content"] = *input.Content
	}
	if input.Client != nil {
		set["client"] = *input.Client
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Technologies != nil {
		set["technologies"] = *input.Technologies
	}
	if input.ProjectURL != nil {
		set["projectUrl"] = *input.ProjectURL
	}
	if input.GithubURL != nil {
		set["githubUrl"] = *input.GithubURL
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}
	if input.Featured != nil {
		set["featured"] = *input.Featured
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.DisplayOrder != nil {
		set["displayOrder"] = *input.DisplayOrder
	}

	if len(set) == 0 {
		return current, nil
	}
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// GetPublishedBySlug trả về dự án đang hiển thị theo slug, đồng thời tăng lượt xem.
func (s *PortfolioService) GetPublishedBySlug(ctx context.Context, slug string) (portfoliomodels.PortfolioProject, error) {
	filter := bson.M{"slug": slug, "status": portfoliomodels.ProjectStatusPublished}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"views": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// BulkUpdateStatus đổi trạng thái cho danh sách dự án, trả về số bản ghi đã thay đổi.
// ID không tồn tại chỉ làm giảm số lượng, không gây lỗi.
func (s *PortfolioService) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
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

// LikeProject tăng lượt thích của dự án đang hiển thị, trả về dự án sau khi tăng.
func (s *PortfolioService) LikeProject(ctx context.Context, slug string) (portfoliomodels.PortfolioProject, error) {
	filter := bson.M{"slug": slug, "status": portfoliomodels.ProjectStatusPublished}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{"likes": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return s.FindOneAndUpdate(ctx, filter, update, opts)
}

// PublishedFilter dựng filter danh sách public từ query.
func PublishedFilter(q portfoliodto.ProjectListQuery) bson.M {
	filter := bson.M{"status": portfoliomodels.ProjectStatusPublished}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Technology != "" {
		filter["technologies"] = q.Technology
	}
	switch q.Featured {
	case "true":
		filter["featured"] = true
	case "false":
		filter["featured"] = false
	}
	return filter
}

// ListPublished trả về danh sách dự án đang hiển thị, phân trang.
// Sắp theo displayOrder tăng dần, cùng thứ tự thì dự án mới trước.
func (s *PortfolioService) ListPublished(ctx context.Context, q portfoliodto.ProjectListQuery, page, limit int64) (*basemodels.PaginateResult[portfoliomodels.PortfolioProject], error) {
	filter := PublishedFilter(q)
	opts := options.Find().SetSort(bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// statusRow là một dòng kết quả group-by.
type statusRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// CategoryStats số liệu gộp theo loại dự án.
type CategoryStats struct {
	Count int64 `json:"count" bson:"count"`
	Views int64 `json:"views" bson:"views"`
	Likes int64 `json:"likes" bson:"likes"`
}

// PortfolioStats thống kê dự án cho admin.
type PortfolioStats struct {
	Total      int64                    `json:"total"`
	ByStatus   map[string]int64         `json:"byStatus"`
	ByCategory map[string]CategoryStats `json:"byCategory"`
	Featured   int64                    `json:"featured"`
	TotalViews int64                    `json:"totalViews"`
	TotalLikes int64                    `json:"totalLikes"`
}

// GetStats trả về thống kê dự án: tổng, theo trạng thái (zero-fill), theo loại, nổi bật, tổng views/likes.
func (s *PortfolioService) GetStats(ctx context.Context) (*PortfolioStats, error) {
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

	byStatus := make(map[string]int64, len(portfoliomodels.ProjectStatuses))
	for _, status := range portfoliomodels.ProjectStatuses {
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

	featured, err := s.CountDocuments(ctx, bson.M{"featured": true})
	if err != nil {
		return nil, err
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

	stats := &PortfolioStats{Total: total, ByStatus: byStatus, ByCategory: byCategory, Featured: featured}
	if len(totals) > 0 {
		stats.TotalViews = totals[0].Views
		stats.TotalLikes = totals[0].Likes
	}
	return stats, nil
}
