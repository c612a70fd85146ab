package newslettersvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	basesvc "elite_devs/internal/api/base/service"
	newsletterdto "elite_devs/internal/api/newsletter/dto"
	newslettermodels "elite_devs/internal/api/newsletter/models"
	"elite_devs/internal/common"
	"elite_devs/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Các bộ đếm tương tác được phép tăng qua endpoint tracking.
const (
	CounterEmailsSent   = "emailsSent"
	CounterEmailsOpened = "emailsOpened"
	CounterLinksClicked = "linksClicked"
)

// NewsletterService quản lý subscriber nhận tin.
type NewsletterService struct {
	*basesvc.BaseServiceMongoImpl[newslettermodels.NewsletterSubscriber]
}

// NewNewsletterService tạo mới NewsletterService
func NewNewsletterService() (*NewsletterService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.NewsletterSubscribers)
	if !exist {
		return nil, fmt.Errorf("failed to get newsletter_subscribers collection: %v", common.ErrNotFound)
	}
	return &NewsletterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[newslettermodels.NewsletterSubscriber](collection),
	}, nil
}

// SubscribeResult kết quả đăng ký: Activated=true khi đăng ký mới
// hoặc kích hoạt lại (caller gửi welcome email trong hai trường hợp này).
type SubscribeResult struct {
	Subscriber newslettermodels.NewsletterSubscriber
	Activated  bool
}

// NormalizeEmail chuẩn hóa email trước khi lưu và so khớp.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe đăng ký nhận tin, idempotent theo email:
//   - email mới: tạo subscriber active
//   - đã hủy đăng ký: kích hoạt lại
//   - đang active: trả về bản ghi hiện có, không thay đổi gì
func (s *NewsletterService) Subscribe(ctx context.Context, input newsletterdto.SubscribeInput) (*SubscribeResult, error) {
	email := NormalizeEmail(input.Email)
	now := time.Now().UnixMilli()

	existing, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if !common.IsNotFound(err) {
			return nil, err
		}

		subscriber := newslettermodels.NewsletterSubscriber{
			Email:        email,
			Name:         input.Name,
			Status:       newslettermodels.SubscriberStatusActive,
			Source:       input.Source,
			SubscribedAt: now,
		}
		if len(input.Topics) > 0 {
			subscriber.Preferences = &newslettermodels.Preferences{Topics: input.Topics}
		}

		created, err := s.InsertOne(ctx, subscriber)
		if err != nil {
			return nil, err
		}
		return &SubscribeResult{Subscriber: created, Activated: true}, nil
	}

	if existing.Status == newslettermodels.SubscriberStatusActive {
		return &SubscribeResult{Subscriber: existing, Activated: false}, nil
	}

	// Đã hủy trước đó: kích hoạt lại
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":       newslettermodels.SubscriberStatusActive,
			"subscribedAt": now,
		},
		Unset: map[string]interface{}{"unsubscribedAt": ""},
	}
	reactivated, err := s.UpdateById(ctx, existing.ID, update)
	if err != nil {
		return nil, err
	}
	return &SubscribeResult{Subscriber: reactivated, Activated: true}, nil
}

// UnsubscribeByToken hủy đăng ký theo token trong link email.
// TODO: token hiện là chính địa chỉ email, đoán được; thay bằng chuỗi ký
// ngẫu nhiên lưu theo subscriber khi làm tính năng chiến dịch email.
func (s *NewsletterService) UnsubscribeByToken(ctx context.Context, token string) (newslettermodels.NewsletterSubscriber, error) {
	email := NormalizeEmail(token)
	filter := bson.M{"email": email}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":         newslettermodels.SubscriberStatusUnsubscribed,
			"unsubscribedAt": time.Now().UnixMilli(),
		},
	}
	return s.UpdateOne(ctx, filter, update, nil)
}

// UpdatePreferences cập nhật tùy chọn nhận tin theo email.
func (s *NewsletterService) UpdatePreferences(ctx context.Context, input newsletterdto.PreferencesInput) (newslettermodels.NewsletterSubscriber, error) {
	email := NormalizeEmail(input.Email)
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"preferences": newslettermodels.Preferences{
				Frequency: input.Frequency,
				Topics:    input.Topics,
			},
		},
	}
	return s.UpdateOne(ctx, bson.M{"email": email}, update, nil)
}

// BumpCounter tăng một bộ đếm tương tác của subscriber.
func (s *NewsletterService) BumpCounter(ctx context.Context, email, counter string) (newslettermodels.NewsletterSubscriber, error) {
	switch counter {
	case CounterEmailsSent, CounterEmailsOpened, CounterLinksClicked:
	default:
		return newslettermodels.NewsletterSubscriber{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown counter: %s", counter),
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{"email": NormalizeEmail(email)}
	update := &basesvc.UpdateData{Inc: map[string]interface{}{counter: 1}}
	return s.UpdateOne(ctx, filter, update, nil)
}

// activeFilter lọc subscriber đang active, thu hẹp theo topic nếu có.
func activeFilter(topic string) bson.M {
	filter := bson.M{"status": newslettermodels.SubscriberStatusActive}
	if topic != "" {
		filter["preferences.topics"] = topic
	}
	return filter
}

// ListActiveSubscribers trả về subscriber đang active, lọc theo topic nếu có.
func (s *NewsletterService) ListActiveSubscribers(ctx context.Context, topic string) ([]newslettermodels.NewsletterSubscriber, error) {
	return s.Find(ctx, activeFilter(topic), nil)
}

// RecordCampaignSent tăng emailsSent cho subscriber nhận chiến dịch
// (toàn bộ active, hoặc thu hẹp theo topic), trả về số subscriber được tính.
func (s *NewsletterService) RecordCampaignSent(ctx context.Context, topic string) (int64, error) {
	update := &basesvc.UpdateData{Inc: map[string]interface{}{CounterEmailsSent: 1}}
	return s.UpdateMany(ctx, activeFilter(topic), update, nil)
}

// BulkUpdateStatus đổi trạng thái cho danh sách subscriber, trả về số bản ghi đã thay đổi.
func (s *NewsletterService) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Invalid id: %s", id), common.StatusBadRequest, nil)
		}
		objectIDs = append(objectIDs, objectID)
	}

	set := map[string]interface{}{"status": status}
	if status == newslettermodels.SubscriberStatusUnsubscribed {
		set["unsubscribedAt"] = time.Now().UnixMilli()
	}

	filter := bson.M{"_id": bson.M{"$in": objectIDs}}
	return s.UpdateMany(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
}

// statusRow là một dòng kết quả group-by-status.
type statusRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// EngagementStats tổng hợp tương tác email của toàn bộ subscriber.
type EngagementStats struct {
	EmailsSent   int64   `json:"emailsSent" bson:"emailsSent"`
	EmailsOpened int64   `json:"emailsOpened" bson:"emailsOpened"`
	LinksClicked int64   `json:"linksClicked" bson:"linksClicked"`
	Rate         float64 `json:"rate" bson:"-"`
}

// NewsletterStats thống kê subscriber cho admin.
type NewsletterStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	Recent     int64            `json:"recent"` // Đăng ký trong 7 ngày gần nhất
	Engagement EngagementStats  `json:"engagement"`
}

// EngagementRate tính tỷ lệ tương tác: (mở + click) / email đã gửi.
// Chưa gửi email nào thì tỷ lệ là 0, không bao giờ chia cho 0.
func EngagementRate(sent, opened, clicked int64) float64 {
	if sent <= 0 {
		return 0
	}
	return float64(opened+clicked) / float64(sent)
}

// GetStats trả về thống kê subscriber: tổng, theo trạng thái (zero-fill),
// đăng ký 7 ngày gần nhất và tổng hợp tương tác.
func (s *NewsletterService) GetStats(ctx context.Context) (*NewsletterStats, error) {
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

	byStatus := make(map[string]int64, len(newslettermodels.SubscriberStatuses))
	for _, status := range newslettermodels.SubscriberStatuses {
		byStatus[status] = 0
	}
	for _, row := range byStatusRows {
		byStatus[row.Status] = row.Count
	}

	weekAgo := time.Now().AddDate(0, 0, -7).UnixMilli()
	recent, err := s.CountDocuments(ctx, bson.M{"subscribedAt": bson.M{"$gte": weekAgo}})
	if err != nil {
		return nil, err
	}

	var engagementRows []EngagementStats
	engagementPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"emailsSent":   bson.M{"$sum": "$emailsSent"},
			"emailsOpened": bson.M{"$sum": "$emailsOpened"},
			"linksClicked": bson.M{"$sum": "$linksClicked"},
		}}},
	}
	if err := s.Aggregate(ctx, engagementPipeline, &engagementRows); err != nil {
		return nil, err
	}

	engagement := EngagementStats{}
	if len(engagementRows) > 0 {
		engagement = engagementRows[0]
	}
	engagement.Rate = EngagementRate(engagement.EmailsSent, engagement.EmailsOpened, engagement.LinksClicked)

	return &NewsletterStats{
		Total:      total,
		ByStatus:   byStatus,
		Recent:     recent,
		Engagement: engagement,
	}, nil
}
