package contactsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "elite_devs/internal/api/base/service"
	contactmodels "elite_devs/internal/api/contact/models"
	"elite_devs/internal/common"
	"elite_devs/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContactService quản lý liên hệ từ form public.
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[contactmodels.Contact]
}

// NewContactService tạo mới ContactService
func NewContactService() (*ContactService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("failed to get contacts collection: %v", common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contactmodels.Contact](collection),
	}, nil
}

// statusRow là một dòng kết quả group-by-status.
type statusRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// ContactStats thống kê liên hệ cho admin.
type ContactStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"byStatus"`
	ByService map[string]int64 `json:"byService"`
	Recent    int64            `json:"recent"` // Số liên hệ trong 7 ngày gần nhất
}

// ZeroFillStatuses bảo đảm mọi trạng thái đã biết đều có mặt trong map,
// kể cả khi chưa có liên hệ nào ở trạng thái đó.
func ZeroFillStatuses(rows []statusRow) map[string]int64 {
	byStatus := make(map[string]int64, len(contactmodels.ContactStatuses))
	for _, status := range contactmodels.ContactStatuses {
		byStatus[status] = 0
	}
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}
	return byStatus
}

// GetStats trả về thống kê liên hệ: tổng, theo trạng thái (zero-fill),
// theo dịch vụ và số liên hệ trong 7 ngày gần nhất.
func (s *ContactService) GetStats(ctx context.Context) (*ContactStats, error) {
	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	groupBy := func(field string) ([]statusRow, error) {
		pipeline := mongo.Pipeline{
			bson.D{{Key: "$group", Value: bson.M{
				"_id":   field,
				"count": bson.M{"$sum": 1},
			}}},
		}
		var rows []statusRow
		if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	statusRows, err := groupBy("$status")
	if err != nil {
		return nil, err
	}
	serviceRows, err := groupBy("$service")
	if err != nil {
		return nil, err
	}

	byService := make(map[string]int64, len(serviceRows))
	for _, row := range serviceRows {
		byService[row.Status] = row.Count
	}

	weekAgo := time.Now().AddDate(0, 0, -7).UnixMilli()
	recent, err := s.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": weekAgo}})
	if err != nil {
		return nil, err
	}

	return &ContactStats{
		Total:     total,
		ByStatus:  ZeroFillStatuses(statusRows),
		ByService: byService,
		Recent:    recent,
	}, nil
}

// MarkEmailSent đánh dấu liên hệ đã được gửi email thông báo admin.
func (s *ContactService) MarkEmailSent(ctx context.Context, id primitive.ObjectID) error {
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"emailSent":   true,
		"emailSentAt": time.Now().UnixMilli(),
	}}
	_, err := s.UpdateById(ctx, id, update)
	return err
}

// BulkUpdateStatus đổi trạng thái cho danh sách liên hệ, trả về số bản ghi đã thay đổi.
// ID không tồn tại chỉ làm giảm số lượng, không gây lỗi.
func (s *ContactService) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
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
