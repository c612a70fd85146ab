package dto

// SubscribeInput dữ liệu đăng ký nhận tin từ form public.
type SubscribeInput struct {
	Email  string   `json:"email" validate:"required,email,max=254"`
	Name   string   `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
	Source string   `json:"source,omitempty" validate:"omitempty,max=100,no_xss"`
	Topics []string `json:"topics,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

// UnsubscribeInput hủy đăng ký theo email trong body (form trên trang web).
type UnsubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// PreferencesInput cập nhật tùy chọn nhận tin.
type PreferencesInput struct {
	Email     string   `json:"email" validate:"required,email,max=254"`
	Frequency string   `json:"frequency,omitempty" validate:"omitempty,oneof=weekly monthly"`
	Topics    []string `json:"topics,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

// SubscriberCreateInput tạo subscriber từ admin.
type SubscriberCreateInput struct {
	Email  string `json:"email" validate:"required,email,max=254"`
	Name   string `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
	Source string `json:"source,omitempty" validate:"omitempty,max=100,no_xss"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active unsubscribed"`
}

// SubscriberUpdateInput cập nhật subscriber từ admin (partial update).
type SubscriberUpdateInput struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active unsubscribed"`
}

// CampaignInput nội dung một số newsletter gửi cho subscriber đang active.
// Topic để trống thì gửi cho toàn bộ, có giá trị thì chỉ gửi cho
// subscriber đã chọn topic đó trong preferences.
type CampaignInput struct {
	Subject     string `json:"subject" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	PreviewText string `json:"previewText,omitempty" validate:"omitempty,max=200"`
	Topic       string `json:"topic,omitempty" validate:"omitempty,max=50"`
}

// BulkStatusInput cập nhật trạng thái hàng loạt theo danh sách ID.
type BulkStatusInput struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=100,dive,required"`
	Status string   `json:"status" validate:"required,oneof=active unsubscribed"`
}
