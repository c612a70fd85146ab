package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái hiển thị của dự án
const (
	ProjectStatusDraft     = "draft"     // Bản nháp
	ProjectStatusPublished = "published" // Đang hiển thị
	ProjectStatusArchived  = "archived"  // Lưu trữ
)

// ProjectStatuses danh sách trạng thái (dùng cho stats zero-fill).
var ProjectStatuses = []string{
	ProjectStatusDraft,
	ProjectStatusPublished,
	ProjectStatusArchived,
}

// PortfolioProject đại diện cho một dự án trong portfolio.
type PortfolioProject struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của dự án

	Title       string `json:"title" bson:"title"`                                 // Tên dự án
	Slug        string `json:"slug" bson:"slug" index:"unique"`                    // Slug duy nhất
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả ngắn
	Content     string `json:"content,omitempty" bson:"content,omitempty"`         // Nội dung chi tiết (case study)
	Client      string `json:"client,omitempty" bson:"client,omitempty"`           // Tên khách hàng

	Category     string   `json:"category,omitempty" bson:"category,omitempty" index:"single:1"`         // Loại dự án
	Technologies []string `json:"technologies,omitempty" bson:"technologies,omitempty" index:"single:1"` // Công nghệ sử dụng

	ProjectURL string   `json:"projectUrl,omitempty" bson:"projectUrl,omitempty"` // Link dự án live
	GithubURL  string   `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`   // Link source code
	Images     []string `json:"images,omitempty" bson:"images,omitempty"`         // Ảnh minh họa

	Featured     bool   `json:"featured" bson:"featured"`                              // Dự án nổi bật
	Status       string `json:"status" bson:"status" default:"draft" index:"single:1"` // Trạng thái hiển thị
	DisplayOrder int    `json:"displayOrder" bson:"displayOrder" index:"single:1"`     // Thứ tự hiển thị (nhỏ trước)

	Views int64 `json:"views" bson:"views"` // Lượt xem
	Likes int64 `json:"likes" bson:"likes"` // Lượt thích

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
