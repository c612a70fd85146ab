package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus định nghĩa trạng thái xử lý của một liên hệ
const (
	ContactStatusNew        = "new"         // Mới nhận, chưa xử lý
	ContactStatusContacted  = "contacted"   // Đã liên hệ lại
	ContactStatusInProgress = "in-progress" // Đang trao đổi / làm việc
	ContactStatusCompleted  = "completed"   // Đã hoàn tất
	ContactStatusArchived   = "archived"    // Lưu trữ
)

// ContactStatuses danh sách trạng thái theo thứ tự hiển thị (dùng cho stats zero-fill).
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusContacted,
	ContactStatusInProgress,
	ContactStatusCompleted,
	ContactStatusArchived,
}

// Contact đại diện cho một liên hệ gửi từ form public.
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của liên hệ

	// ===== FORM FIELDS =====
	Name     string `json:"name" bson:"name"`                             // Tên người liên hệ
	Email    string `json:"email" bson:"email" index:"single:1"`          // Email liên hệ
	Company  string `json:"company,omitempty" bson:"company,omitempty"`   // Công ty (tùy chọn)
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`       // Số điện thoại (tùy chọn)
	Service  string `json:"service" bson:"service" index:"single:1"`      // Dịch vụ quan tâm
	Budget   string `json:"budget,omitempty" bson:"budget,omitempty"`     // Khoảng ngân sách
	Timeline string `json:"timeline,omitempty" bson:"timeline,omitempty"` // Khung thời gian mong muốn
	Message  string `json:"message" bson:"message"`                       // Nội dung liên hệ

	// ===== WORKFLOW =====
	Status string `json:"status" bson:"status" default:"new" index:"single:1"` // Trạng thái xử lý
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`              // Ghi chú nội bộ của admin

	// ===== EMAIL TRACKING =====
	EmailSent   bool  `json:"emailSent" bson:"emailSent"`                         // Đã gửi email thông báo admin
	EmailSentAt int64 `json:"emailSentAt,omitempty" bson:"emailSentAt,omitempty"` // Thời điểm gửi email

	// ===== REQUEST CONTEXT =====
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"` // IP người gửi
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"` // User agent
	Referrer  string `json:"referrer,omitempty" bson:"referrer,omitempty"`   // Trang dẫn đến form

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1,order:-1"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                            // Thời gian cập nhật
}
