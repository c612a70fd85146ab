package contactsvc

import (
	"testing"

	contactmodels "elite_devs/internal/api/contact/models"
)

func TestFormatBudget(t *testing.T) {
	cases := map[string]string{
		"under-10k": "Under $10,000",
		"10k-25k":   "$10,000 - $25,000",
		"25k-50k":   "$25,000 - $50,000",
		"50k-100k":  "$50,000 - $100,000",
		"over-100k": "Over $100,000",
		"not-sure":  "Not sure yet",
	}
	for value, want := range cases {
		if got := FormatBudget(value); got != want {
			t.Errorf("FormatBudget(%q) = %q, mong đợi %q", value, got, want)
		}
	}

	// Giá trị lạ trả về nguyên văn
	if got := FormatBudget("unknown-value"); got != "unknown-value" {
		t.Errorf("Giá trị không có trong bảng phải trả về nguyên văn, nhận được %q", got)
	}
}

func TestFormatTimeline(t *testing.T) {
	cases := map[string]string{
		"asap":        "ASAP",
		"1-3-months":  "1-3 months",
		"3-6-months":  "3-6 months",
		"6-12-months": "6-12 months",
		"flexible":    "Flexible",
	}
	for value, want := range cases {
		if got := FormatTimeline(value); got != want {
			t.Errorf("FormatTimeline(%q) = %q, mong đợi %q", value, got, want)
		}
	}

	if got := FormatTimeline(""); got != "" {
		t.Errorf("Chuỗi rỗng phải trả về rỗng, nhận được %q", got)
	}
}

func TestFormatService(t *testing.T) {
	cases := map[string]string{
		"web-development":    "Web Development",
		"mobile-development": "Mobile Development",
		"ui-ux-design":       "UI/UX Design",
		"consulting":         "Consulting",
		"maintenance":        "Maintenance & Support",
		"other":              "Other",
	}
	for value, want := range cases {
		if got := FormatService(value); got != want {
			t.Errorf("FormatService(%q) = %q, mong đợi %q", value, got, want)
		}
	}
}

func TestZeroFillStatuses(t *testing.T) {
	rows := []statusRow{
		{Status: contactmodels.ContactStatusNew, Count: 3},
		{Status: contactmodels.ContactStatusCompleted, Count: 1},
	}

	got := ZeroFillStatuses(rows)

	if len(got) != len(contactmodels.ContactStatuses) {
		t.Fatalf("Map kết quả phải có đủ %d trạng thái, nhận được %d", len(contactmodels.ContactStatuses), len(got))
	}
	if got[contactmodels.ContactStatusNew] != 3 || got[contactmodels.ContactStatusCompleted] != 1 {
		t.Errorf("Count từ aggregation phải được giữ lại: %+v", got)
	}
	if got[contactmodels.ContactStatusContacted] != 0 || got[contactmodels.ContactStatusArchived] != 0 {
		t.Errorf("Trạng thái không có liên hệ phải là 0: %+v", got)
	}
}
