package contactsvc

// Bảng nhãn hiển thị cho các giá trị enum từ form.
// Giá trị không có trong bảng trả về nguyên văn, không bao giờ lỗi.
var budgetLabels = map[string]string{
	"under-10k": "Under $10,000",
	"10k-25k":   "$10,000 - $25,000",
	"25k-50k":   "$25,000 - $50,000",
	"50k-100k":  "$50,000 - $100,000",
	"over-100k": "Over $100,000",
	"not-sure":  "Not sure yet",
}

var timelineLabels = map[string]string{
	"asap":        "ASAP",
	"1-3-months":  "1-3 months",
	"3-6-months":  "3-6 months",
	"6-12-months": "6-12 months",
	"flexible":    "Flexible",
}

var serviceLabels = map[string]string{
	"web-development":    "Web Development",
	"mobile-development": "Mobile Development",
	"ui-ux-design":       "UI/UX Design",
	"consulting":         "Consulting",
	"maintenance":        "Maintenance & Support",
	"other":              "Other",
}

// FormatBudget trả về nhãn hiển thị của khoảng ngân sách.
func FormatBudget(value string) string {
	if label, ok := budgetLabels[value]; ok {
		return label
	}
	return value
}

// FormatTimeline trả về nhãn hiển thị của khung thời gian.
func FormatTimeline(value string) string {
	if label, ok := timelineLabels[value]; ok {
		return label
	}
	return value
}

// FormatService trả về nhãn hiển thị của dịch vụ.
func FormatService(value string) string {
	if label, ok := serviceLabels[value]; ok {
		return label
	}
	return value
}
