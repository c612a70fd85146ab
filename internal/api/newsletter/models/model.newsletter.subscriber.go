package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đăng ký nhận tin
const (
	SubscriberStatusActive       = "active"       // Đang nhận tin
	SubscriberStatusUnsubscribed = "unsubscribed" // Đã hủy đăng ký
)

// SubscriberStatuses danh sách trạng thái (dùng cho stats zero-fill).
var SubscriberStatuses = []string{
	SubscriberStatusActive,
	SubscriberStatusUnsubscribed,
}

// Preferences tùy chọn nhận tin của subscriber.
type Preferences struct {
	Frequency string   `json:"frequency,omitempty" bson:"frequency,omitempty"` // weekly | monthly
	Topics    []string `json:"topics,omitempty" bson:"topics,omitempty"`       // Chủ đề quan tâm
}

// NewsletterSubscriber đại diện cho một người đăng ký nhận tin.
type NewsletterSubscriber struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của subscriber

	Email  string `json:"email" bson:"email" index:"unique"`                      // Email, duy nhất
	Name   string `json:"name,omitempty" bson:"name,omitempty"`                   // Tên (tùy chọn)
	Status string `json:"status" bson:"status" default:"active" index:"single:1"` // Trạng thái đăng ký
	Source string `json:"source,omitempty" bson:"source,omitempty"`               // Nguồn đăng ký (footer, popup...)

	Preferences *Preferences `json:"preferences,omitempty" bson:"preferences,omitempty"` // Tùy chọn nhận tin

	SubscribedAt   int64 `json:"subscribedAt,omitempty" bson:"subscribedAt,omitempty"`     // Thời điểm đăng ký gần nhất
	UnsubscribedAt int64 `json:"unsubscribedAt,omitempty" bson:"unsubscribedAt,omitempty"` // Thời điểm hủy đăng ký

	// Bộ đếm tương tác, tăng bằng $inc khi gửi chiến dịch
	EmailsSent   int64 `json:"emailsSent" bson:"emailsSent"`     // Số email đã gửi
	EmailsOpened int64 `json:"emailsOpened" bson:"emailsOpened"` // Số email đã mở
	LinksClicked int64 `json:"linksClicked" bson:"linksClicked"` // Số link đã click

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
