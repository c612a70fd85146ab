package dto

// BlogCreateInput dữ liệu tạo bài viết từ admin.
// Slug và readTime được sinh ở service, không nhận từ client.
type BlogCreateInput struct {
	Title         string   `json:"title" validate:"required,min=3,max=200,no_xss"`
	Excerpt       string   `json:"excerpt,omitempty" validate:"omitempty,max=500,no_xss"`
	Content       string   `json:"content" validate:"required,min=10"`
	Author        string   `json:"author,omitempty" validate:"omitempty,max=100,no_xss"`
	Category      string   `json:"category,omitempty" validate:"omitempty,max=100,no_xss"`
	Tags          []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	FeaturedImage string   `json:"featuredImage,omitempty" validate:"omitempty,url,max=1000"`
	Featured      bool     `json:"featured,omitempty"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// BlogUpdateInput dữ liệu cập nhật bài viết (partial update).
type BlogUpdateInput struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=3,max=200,no_xss"`
	Excerpt       *string   `json:"excerpt,omitempty" validate:"omitempty,max=500,no_xss"`
	Content       *string   `json:"content,omitempty" validate:"omitempty,min=10"`
	Author        *string   `json:"author,omitempty" validate:"omitempty,max=100,no_xss"`
	Category      *string   `json:"category,omitempty" validate:"omitempty,max=100,no_xss"`
	Tags          *[]string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	FeaturedImage *string   `json:"featuredImage,omitempty" validate:"omitempty,url,max=1000"`
	Featured      *bool     `json:"featured,omitempty"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// BulkStatusInput cập nhật trạng thái hàng loạt theo danh sách ID.
type BulkStatusInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
	Status string   `json:"status" validate:"required,oneof=draft published archived"`
}

// BlogListQuery bộ lọc danh sách bài viết public.
type BlogListQuery struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Featured string `query:"featured"`
}
