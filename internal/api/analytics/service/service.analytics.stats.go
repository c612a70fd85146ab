package analyticssvc

import (
	"context"
	"fmt"
	"time"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	basemodels "elite_devs/internal/api/base/models"
	basesvc "elite_devs/internal/api/base/service"
	"elite_devs/internal/common"
	"elite_devs/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsService chạy các pipeline thống kê chỉ-đọc trên event store.
// Mọi operation nhận khoảng đóng [start, end]; pipeline lỗi thì trả lỗi luôn,
// không retry, không trả kết quả một phần.
type StatsService struct {
	*basesvc.BaseServiceMongoImpl[analyticsmodels.Event]
}

// NewStatsService tạo mới StatsService
func NewStatsService() (*StatsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalyticsEvents)
	if !exist {
		return nil, fmt.Errorf("failed to get analytics_events collection: %v", common.ErrNotFound)
	}
	return &StatsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[analyticsmodels.Event](collection),
	}, nil
}

// rangeMatch là stage $match theo khoảng thời gian, kèm điều kiện bổ sung.
func rangeMatch(start, end time.Time, extra bson.M) bson.D {
	match := bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}}
	for k, v := range extra {
		match[k] = v
	}
	return bson.D{{Key: "$match", Value: match}}
}

// countIfType là expression đếm có điều kiện theo loại event.
func countIfType(eventType string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$type", eventType}},
		1,
		0,
	}}}
}

// sizeNonNull là expression đếm số phần tử khác null của một set.
func sizeNonNull(field string) bson.M {
	return bson.M{"$size": bson.M{"$setDifference": bson.A{field, bson.A{nil}}}}
}

// GetOverallStats trả về thống kê tổng quan trong [start, end].
// Khoảng rỗng trả về record toàn 0, không bao giờ null.
func (s *StatsService) GetOverallStats(ctx context.Context, start, end time.Time) (OverallStats, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, nil),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":                    nil,
			"totalPageViews":         countIfType(analyticsmodels.EventTypePageView),
			"totalContacts":          countIfType(analyticsmodels.EventTypeContactForm),
			"totalNewsletterSignups": countIfType(analyticsmodels.EventTypeNewsletterSignup),
			"visitors":               bson.M{"$addToSet": "$ipAddress"},
			"sessions":               bson.M{"$addToSet": "$session.id"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":                    0,
			"totalPageViews":         1,
			"totalContacts":          1,
			"totalNewsletterSignups": 1,
			"uniqueVisitors":         sizeNonNull("$visitors"),
			"uniqueSessions":         sizeNonNull("$sessions"),
		}}},
	}

	var rows []OverallStats
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return OverallStats{}, err
	}
	return ShapeOverall(rows), nil
}

// GetPopularPages trả về bảng xếp hạng trang theo lượt xem trong [start, end].
// Giảm dần theo views, hòa thì page tăng dần, cắt theo limit (mặc định 10).
func (s *StatsService) GetPopularPages(ctx context.Context, start, end time.Time, limit int) ([]PageStats, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, bson.M{"type": analyticsmodels.EventTypePageView}),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      "$page",
			"views":    bson.M{"$sum": 1},
			"visitors": bson.M{"$addToSet": "$ipAddress"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"views":          1,
			"uniqueVisitors": sizeNonNull("$visitors"),
		}}},
	}

	var rows []PageStats
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return RankPopularPages(rows, limit), nil
}

// GetDeviceStats trả về phân bố pageview theo loại thiết bị trong [start, end].
func (s *StatsService) GetDeviceStats(ctx context.Context, start, end time.Time) ([]BreakdownStats, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, bson.M{"type": analyticsmodels.EventTypePageView}),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$device.type",
			"count": bson.M{"$sum": 1},
		}}},
	}

	var rows []BreakdownStats
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return SortBreakdownDesc(rows), nil
}

// GetGeographicStats trả về phân bố pageview theo quốc gia trong [start, end].
// Event không có country bị loại khỏi báo cáo.
func (s *StatsService) GetGeographicStats(ctx context.Context, start, end time.Time) ([]BreakdownStats, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, bson.M{
			"type":             analyticsmodels.EventTypePageView,
			"location.country": bson.M{"$nin": bson.A{nil, ""}},
		}),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$location.country",
			"count": bson.M{"$sum": 1},
		}}},
	}

	var rows []BreakdownStats
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return SortBreakdownDesc(rows), nil
}

// GetDailyStats trả về thống kê theo ngày (UTC, YYYY-MM-DD) trong [start, end], tăng dần.
// Ngày không có event bị bỏ qua, không zero-fill.
func (s *StatsService) GetDailyStats(ctx context.Context, start, end time.Time) ([]DailyStats, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, nil),
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     "$timestamp",
				"timezone": "UTC",
			}},
			"pageViews":         countIfType(analyticsmodels.EventTypePageView),
			"contacts":          countIfType(analyticsmodels.EventTypeContactForm),
			"newsletterSignups": countIfType(analyticsmodels.EventTypeNewsletterSignup),
			"visitors":          bson.M{"$addToSet": "$ipAddress"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"pageViews":         1,
			"contacts":          1,
			"newsletterSignups": 1,
			"uniqueVisitors":    sizeNonNull("$visitors"),
		}}},
	}

	var rows []DailyStats
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return SortDailyAsc(rows), nil
}

// GetDailyCountByType trả về chuỗi đếm theo ngày cho một loại event trong [start, end].
// Dùng cho chuỗi contact submissions và newsletter signups.
func (s *StatsService) GetDailyCountByType(ctx context.Context, eventType string, start, end time.Time) ([]DailyCount, error) {
	pipeline := mongo.Pipeline{
		rangeMatch(start, end, bson.M{"type": eventType}),
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     "$timestamp",
				"timezone": "UTC",
			}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	var rows []DailyCount
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return SortDailyCountAsc(rows), nil
}

// GetRealtimeStats trả về thống kê theo giờ trong cửa sổ 24h gần nhất, tăng dần theo giờ.
func (s *StatsService) GetRealtimeStats(ctx context.Context, now time.Time) ([]HourlyStats, error) {
	since := now.UTC().Add(-24 * time.Hour)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"hour": bson.M{"$hour": bson.M{"date": "$timestamp", "timezone": "UTC"}},
				"type": "$type",
			},
			"count": bson.M{"$sum": 1},
		}}},
	}

	var rows []hourlyRow
	if err := s.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}
	return ShapeRealtime(rows), nil
}

// GetEventsByType trả về danh sách event thô của một loại, phân trang, mới nhất trước.
func (s *StatsService) GetEventsByType(ctx context.Context, eventType string, start, end time.Time, page, limit int64) (*basemodels.PaginateResult[analyticsmodels.Event], error) {
	filter := bson.M{
		"type":      eventType,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// CountEventsSince đếm số event của một loại từ thời điểm since.
// Dùng cho dashboard (pageview hôm nay, hoạt động 7 ngày).
func (s *StatsService) CountEventsSince(ctx context.Context, eventType string, since time.Time) (int64, error) {
	filter := bson.M{"timestamp": bson.M{"$gte": since}}
	if eventType != "" {
		filter["type"] = eventType
	}
	return s.CountDocuments(ctx, filter)
}
