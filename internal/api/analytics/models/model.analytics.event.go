package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType định nghĩa các loại sự kiện được ghi nhận
const (
	EventTypePageView         = "pageview"          // Lượt xem trang
	EventTypeContactForm      = "contact_form"      // Gửi form liên hệ
	EventTypeNewsletterSignup = "newsletter_signup" // Đăng ký newsletter
	EventTypePortfolioView    = "portfolio_view"    // Xem dự án portfolio
	EventTypeBlogView         = "blog_view"         // Xem bài blog
	EventTypeDownload         = "download"          // Tải file
	EventTypeClick            = "click"             // Click
	EventTypeScroll           = "scroll"            // Scroll
)

// DeviceType định nghĩa các loại thiết bị
const (
	DeviceTypeDesktop = "desktop"
	DeviceTypeTablet  = "tablet"
	DeviceTypeMobile  = "mobile"
	DeviceTypeUnknown = "unknown"
)

// Screen kích thước màn hình, chỉ có khi client gửi query param sw/sh hợp lệ
type Screen struct {
	Width  int `json:"width" bson:"width"`   // Chiều rộng (px)
	Height int `json:"height" bson:"height"` // Chiều cao (px)
}

// Device thông tin thiết bị phân loại từ user agent
type Device struct {
	Type    string  `json:"type" bson:"type" index:"single:1"`          // desktop, tablet, mobile, unknown
	Browser string  `json:"browser,omitempty" bson:"browser,omitempty"` // Tên trình duyệt
	OS      string  `json:"os,omitempty" bson:"os,omitempty"`           // Hệ điều hành
	Screen  *Screen `json:"screen,omitempty" bson:"screen,omitempty"`   // Kích thước màn hình (null nếu không có)
}

// Location vị trí địa lý, do geo-lookup bên ngoài điền vào (có thể vắng mặt)
type Location struct {
	Country string `json:"country,omitempty" bson:"country,omitempty" index:"single:1"` // Quốc gia
	Region  string `json:"region,omitempty" bson:"region,omitempty"`                    // Vùng
	City    string `json:"city,omitempty" bson:"city,omitempty"`                        // Thành phố
}

// Session thông tin phiên của client
type Session struct {
	ID        string `json:"id" bson:"id" index:"single:1"`                  // Session ID từ header hoặc query param
	StartTime int64  `json:"startTime,omitempty" bson:"startTime,omitempty"` // Thời điểm bắt đầu phiên
	Duration  int64  `json:"duration,omitempty" bson:"duration,omitempty"`   // Thời lượng phiên (ms)
}

// EventUser thông tin người dùng gắn với sự kiện (tùy chọn)
type EventUser struct {
	ID    string `json:"id,omitempty" bson:"id,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// Event đại diện cho một sự kiện được ghi nhận (pageview, form submit, click, ...).
// Document chỉ ghi một lần, không bao giờ sửa; xóa tự động qua TTL index trên timestamp.
type Event struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của event

	// ===== EVENT CORE =====
	Type  string `json:"type" bson:"type" index:"compound:type_timestamp"` // Loại sự kiện: pageview, contact_form, ...
	Page  string `json:"page" bson:"page" index:"compound:page_timestamp"` // Đường dẫn trang
	Title string `json:"title,omitempty" bson:"title,omitempty"`           // Tiêu đề trang

	// ===== REQUEST CONTEXT =====
	Referrer  string `json:"referrer,omitempty" bson:"referrer,omitempty"`                                 // Trang dẫn đến
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`                               // Raw user agent
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty" index:"compound:ip_timestamp"` // IP của client

	// ===== CLASSIFICATION =====
	Device   *Device    `json:"device,omitempty" bson:"device,omitempty"`     // Thiết bị (phân loại từ user agent)
	Location *Location  `json:"location,omitempty" bson:"location,omitempty"` // Vị trí địa lý (nếu có)
	Session  *Session   `json:"session,omitempty" bson:"session,omitempty"`   // Phiên của client
	User     *EventUser `json:"user,omitempty" bson:"user,omitempty"`         // Người dùng (nếu có)

	// ===== METADATA =====
	Metadata map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"` // method, statusCode, responseTime, cờ theo form...

	// Timestamp thời điểm sự kiện, cũng là mốc tính TTL (1 năm)
	Timestamp time.Time `json:"timestamp" bson:"timestamp" index:"ttl:31536000;compound:type_timestamp;compound:page_timestamp;compound:ip_timestamp"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
