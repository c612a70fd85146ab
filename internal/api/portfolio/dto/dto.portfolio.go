package dto

// ProjectCreateInput dữ liệu tạo dự án từ admin.
// Slug được sinh ở service, không nhận từ client.
type ProjectCreateInput struct {
	Title        string   `json:"title" validate:"required,min=3,max=200,no_xss"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=500,no_xss"`
	Content      string   `json:"content,omitempty" validate:"omitempty,max=50000"`
	Client       string   `json:"client,omitempty" validate:"omitempty,max=200,no_xss"`
	Category     string   `json:"category,omitempty" validate:"omitempty,max=100,no_xss"`
	Technologies []string `json:"technologies,omitempty" validate:"omitempty,max=30,dive,max=50"`
	ProjectURL   string   `json:"projectUrl,omitempty" validate:"omitempty,url,max=1000"`
	GithubURL    string   `json:"githubUrl,omitempty" validate:"omitempty,url,max=1000"`
	Images       []string `json:"images,omitempty" validate:"omitempty,max=20,dive,url,max=1000"`
	Featured     bool     `json:"featured,omitempty"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	DisplayOrder int      `json:"displayOrder,omitempty" validate:"omitempty,min=0,max=10000"`
}

// ProjectUpdateInput dữ liệu cập nhật dự án (partial update).
type ProjectUpdateInput struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=3,max=200,no_xss"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,max=500,no_xss"`
	Content      *string   `json:"content,omitempty" validate:"omitempty,max=50000"`
	Client       *string   `json:"client,omitempty" validate:"omitempty,max=200,no_xss"`
	Category     *string   `json:"category,omitempty" validate:"omitempty,max=100,no_xss"`
	Technologies *[]string `json:"technologies,omitempty" validate:"omitempty,max=30,dive,max=50"`
	ProjectURL   *string   `json:"projectUrl,omitempty" validate:"omitempty,url,max=1000"`
	GithubURL    *string   `json:"githubUrl,omitempty" validate:"omitempty,url,max=1000"`
	Images       *[]string `json:"images,omitempty" validate:"omitempty,max=20,dive,url,max=1000"`
	Featured     *bool     `json:"featured,omitempty"`
	Status       *string   `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	DisplayOrder *int      `json:"displayOrder,omitempty" validate:"omitempty,min=0,max=10000"`
}

// BulkStatusInput cập nhật trạng thái hàng loạt theo danh sách ID.
type BulkStatusInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
	Status string   `json:"status" validate:"required,oneof=draft published archived"`
}

// ProjectListQuery bộ lọc danh sách dự án public.
type ProjectListQuery struct {
	Category   string `query:"category"`
	Technology string `query:"technology"`
	Featured   string `query:"featured"`
}
