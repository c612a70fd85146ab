// Package analyticsdto chứa DTO cho domain Analytics.
package analyticsdto

// TrackEventInput là input cho endpoint track sự kiện.
// Device, screen, session, IP được server tự trích xuất từ request context.
type TrackEventInput struct {
	Type     string                 `json:"type" validate:"required,oneof=pageview contact_form newsletter_signup portfolio_view blog_view download click scroll"` // Loại sự kiện
	Page     string                 `json:"page" validate:"required,max=500"`                                                                                      // Đường dẫn trang
	Title    string                 `json:"title,omitempty" validate:"omitempty,max=500"`                                                                          // Tiêu đề trang
	Metadata map[string]interface{} `json:"metadata,omitempty"`                                                                                                    // Metadata bổ sung từ client
}

// DateRangeQuery là query params cho các endpoint thống kê theo khoảng thời gian.
// Thiếu startDate mặc định là 30 ngày trước, thiếu endDate mặc định là hiện tại.
type DateRangeQuery struct {
	StartDate string `query:"startDate"` // Định dạng YYYY-MM-DD hoặc RFC3339
	EndDate   string `query:"endDate"`   // Định dạng YYYY-MM-DD hoặc RFC3339
}

// EventsByTypeParams là URI params cho endpoint liệt kê event theo loại.
type EventsByTypeParams struct {
	Type string `uri:"type"`
}
