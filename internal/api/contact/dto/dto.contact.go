package dto

// ContactCreateInput dữ liệu từ form liên hệ public.
type ContactCreateInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100,no_xss"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Company  string `json:"company,omitempty" validate:"omitempty,max=200,no_xss"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Service  string `json:"service" validate:"required,oneof=web-development mobile-development ui-ux-design consulting maintenance other"`
	Budget   string `json:"budget,omitempty" validate:"omitempty,oneof=under-10k 10k-25k 25k-50k 50k-100k over-100k not-sure"`
	Timeline string `json:"timeline,omitempty" validate:"omitempty,oneof=asap 1-3-months 3-6-months 6-12-months flexible"`
	Message  string `json:"message" validate:"required,min=10,max=5000,no_xss"`
}

// ContactUpdateInput dữ liệu cập nhật từ admin (partial update).
type ContactUpdateInput struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted in-progress completed archived"`
	Notes  *string `json:"notes,omitempty" validate:"omitempty,max=5000,no_xss"`
}

// BulkStatusInput cập nhật trạng thái hàng loạt theo danh sách ID.
type BulkStatusInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
	Status string   `json:"status" validate:"required,oneof=new contacted in-progress completed archived"`
}
