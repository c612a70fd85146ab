package analyticssvc

import (
	"testing"

	analyticsmodels "elite_devs/internal/api/analytics/models"
)

func TestClassifyDevice(t *testing.T) {
	cases := []struct {
		name string
		ua   string
		want string
	}{
		{
			name: "iPhone phân loại mobile",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			want: analyticsmodels.DeviceTypeMobile,
		},
		{
			name: "Android phân loại mobile",
			ua:   "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Mobile Safari/537.36",
			want: analyticsmodels.DeviceTypeMobile,
		},
		{
			name: "iPad phân loại tablet",
			ua:   "Mozilla/5.0 (iPad; CPU OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1",
			want: analyticsmodels.DeviceTypeTablet,
		},
		{
			name: "Windows phân loại desktop",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
			want: analyticsmodels.DeviceTypeDesktop,
		},
		{
			name: "macOS phân loại desktop",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Safari/605.1.15",
			want: analyticsmodels.DeviceTypeDesktop,
		},
		{
			name: "User agent rỗng phân loại unknown",
			ua:   "",
			want: analyticsmodels.DeviceTypeUnknown,
		},
	}

	for _, tc := range cases {
		got := ClassifyDevice(tc.ua)
		if got.Type != tc.want {
			t.Errorf("%s: mong đợi %s, nhận được %s", tc.name, tc.want, got.Type)
		}
	}
}

func TestParseScreen(t *testing.T) {
	if got := ParseScreen("1920", "1080"); got == nil || got.Width != 1920 || got.Height != 1080 {
		t.Errorf("Kích thước hợp lệ phải được parse, nhận được %+v", got)
	}

	// Thiếu hoặc không phải số: trả về nil, không bao giờ suy đoán
	if got := ParseScreen("", "1080"); got != nil {
		t.Errorf("Thiếu sw phải trả về nil, nhận được %+v", got)
	}
	if got := ParseScreen("1920", ""); got != nil {
		t.Errorf("Thiếu sh phải trả về nil, nhận được %+v", got)
	}
	if got := ParseScreen("abc", "1080"); got != nil {
		t.Errorf("sw không phải số phải trả về nil, nhận được %+v", got)
	}
	if got := ParseScreen("-5", "1080"); got != nil {
		t.Errorf("sw âm phải trả về nil, nhận được %+v", got)
	}
}

func TestBuildEventMetadata(t *testing.T) {
	s := &RecorderService{}
	info := RequestInfo{
		Page:         "/blog/foo",
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		IPAddress:    "1.2.3.4",
		SessionID:    "sess-1",
		ScreenWidth:  "1280",
		ScreenHeight: "720",
		Method:       "GET",
		StatusCode:   200,
		ResponseTime: 42,
	}

	event := s.BuildEvent(analyticsmodels.EventTypePageView, info, map[string]interface{}{"source": "test"})

	if event.Type != analyticsmodels.EventTypePageView || event.Page != "/blog/foo" {
		t.Fatalf("Event core sai: %+v", event)
	}
	if event.Session == nil || event.Session.ID != "sess-1" {
		t.Errorf("Session phải được gán từ snapshot, nhận được %+v", event.Session)
	}
	if event.Device == nil || event.Device.Screen == nil || event.Device.Screen.Width != 1280 {
		t.Errorf("Screen phải được parse từ sw/sh, nhận được %+v", event.Device)
	}
	if event.Metadata["method"] != "GET" || event.Metadata["statusCode"] != 200 {
		t.Errorf("Metadata request sai: %+v", event.Metadata)
	}
	if event.Metadata["source"] != "test" {
		t.Errorf("Metadata từ caller phải được giữ lại: %+v", event.Metadata)
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp phải được gán khi build event")
	}
}

func TestShouldTrackView(t *testing.T) {
	for _, status := range []int{200, 201, 301, 304} {
		if !ShouldTrackView(status) {
			t.Errorf("Status %d phải được tính là lượt xem", status)
		}
	}
	// Request lỗi không được tính, giữ event đồng bộ với counter views
	for _, status := range []int{400, 404, 429, 500} {
		if ShouldTrackView(status) {
			t.Errorf("Status %d không được tính là lượt xem", status)
		}
	}
}
