package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái xuất bản của bài viết
const (
	PostStatusDraft     = "draft"     // Bản nháp
	PostStatusPublished = "published" // Đã xuất bản
	PostStatusArchived  = "archived"  // Lưu trữ
)

// PostStatuses danh sách trạng thái (dùng cho stats zero-fill).
var PostStatuses = []string{
	PostStatusDraft,
	PostStatusPublished,
	PostStatusArchived,
}

// BlogPost đại diện cho một bài viết blog.
type BlogPost struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài viết

	Title   string `json:"title" bson:"title"`                         // Tiêu đề
	Slug    string `json:"slug" bson:"slug" index:"unique"`            // Slug duy nhất, sinh từ tiêu đề
	Excerpt string `json:"excerpt,omitempty" bson:"excerpt,omitempty"` // Tóm tắt ngắn
	Content string `json:"content" bson:"content"`                     // Nội dung bài viết
	Author  string `json:"author,omitempty" bson:"author,omitempty"`   // Tác giả

	Category      string   `json:"category,omitempty" bson:"category,omitempty" index:"single:1"` // Chuyên mục
	Tags          []string `json:"tags,omitempty" bson:"tags,omitempty" index:"single:1"`         // Nhãn
	FeaturedImage string   `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`        // Ảnh đại diện
	Featured      bool     `json:"featured" bson:"featured"`                                      // Bài nổi bật

	Status      string `json:"status" bson:"status" default:"draft" index:"single:1"`                         // Trạng thái xuất bản
	PublishedAt int64  `json:"publishedAt,omitempty" bson:"publishedAt,omitempty" index:"single:-1,order:-1"` // Thời điểm xuất bản lần đầu (unix ms)

	Views    int64 `json:"views" bson:"views"`       // Lượt xem
	Likes    int64 `json:"likes" bson:"likes"`       // Lượt thích
	ReadTime int   `json:"readTime" bson:"readTime"` // Thời gian đọc ước lượng (phút)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
