package analyticssvc

import (
	"testing"
	"time"
)

func TestResolveRangeDefaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end, err := ResolveRange("", "", now)
	if err != nil {
		t.Fatalf("ResolveRange với params rỗng không được lỗi: %v", err)
	}
	if !end.Equal(now) {
		t.Errorf("endDate mặc định phải là now, nhận được %v", end)
	}
	wantStart := now.AddDate(0, 0, -30)
	if !start.Equal(wantStart) {
		t.Errorf("startDate mặc định phải là now-30d (%v), nhận được %v", wantStart, start)
	}
}

func TestResolveRangeExplicitDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	start, end, err := ResolveRange("2025-06-01", "2025-06-10", now)
	if err != nil {
		t.Fatalf("ResolveRange với ngày hợp lệ không được lỗi: %v", err)
	}
	if start.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("startDate sai: %v", start)
	}
	// endDate dạng YYYY-MM-DD phải bao trùm đến cuối ngày
	if end.Before(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)) {
		t.Errorf("endDate phải bao trùm hết ngày 2025-06-10, nhận được %v", end)
	}
	if !end.Before(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("endDate không được vượt sang ngày 2025-06-11, nhận được %v", end)
	}
}

func TestResolveRangeInvalid(t *testing.T) {
	now := time.Now()

	if _, _, err := ResolveRange("not-a-date", "", now); err == nil {
		t.Error("startDate không hợp lệ phải trả về lỗi")
	}
	if _, _, err := ResolveRange("2025-06-10", "2025-06-01", now); err == nil {
		t.Error("endDate trước startDate phải trả về lỗi")
	}
}

func TestShapeOverallEmpty(t *testing.T) {
	got := ShapeOverall(nil)

	if got.TotalPageViews != 0 || got.TotalContacts != 0 || got.TotalNewsletterSignups != 0 ||
		got.UniqueVisitors != 0 || got.UniqueSessions != 0 {
		t.Errorf("Khoảng không có event phải trả về record toàn 0, nhận được %+v", got)
	}
}

func TestRankPopularPagesLimit(t *testing.T) {
	// 3 lượt xem /blog/foo và 2 lượt xem /blog/bar, limit 1
	rows := []PageStats{
		{Page: "/blog/bar", Views: 2, UniqueVisitors: 2},
		{Page: "/blog/foo", Views: 3, UniqueVisitors: 1},
	}

	got := RankPopularPages(rows, 1)
	if len(got) != 1 {
		t.Fatalf("Kết quả phải có đúng 1 phần tử, nhận được %d", len(got))
	}
	if got[0].Page != "/blog/foo" || got[0].Views != 3 {
		t.Errorf("Trang đứng đầu phải là /blog/foo với 3 views, nhận được %+v", got[0])
	}
}

func TestRankPopularPagesTieBreak(t *testing.T) {
	rows := []PageStats{
		{Page: "/b", Views: 5},
		{Page: "/a", Views: 5},
		{Page: "/c", Views: 7},
	}

	got := RankPopularPages(rows, 10)
	if got[0].Page != "/c" {
		t.Errorf("Trang nhiều views nhất phải đứng đầu, nhận được %s", got[0].Page)
	}
	if got[1].Page != "/a" || got[2].Page != "/b" {
		t.Errorf("Hòa views phải sắp theo page tăng dần, nhận được %s, %s", got[1].Page, got[2].Page)
	}
}

func TestRankPopularPagesDefaultLimit(t *testing.T) {
	rows := make([]PageStats, 15)
	for i := range rows {
		rows[i] = PageStats{Page: "/p", Views: int64(i)}
	}

	if got := RankPopularPages(rows, 0); len(got) != DefaultPopularPagesLimit {
		t.Errorf("Limit 0 phải dùng mặc định %d, nhận được %d", DefaultPopularPagesLimit, len(got))
	}
}

func TestSortBreakdownDesc(t *testing.T) {
	rows := []BreakdownStats{
		{Key: "mobile", Count: 3},
		{Key: "desktop", Count: 10},
		{Key: "tablet", Count: 3},
	}

	got := SortBreakdownDesc(rows)
	if got[0].Key != "desktop" {
		t.Errorf("Nhóm nhiều nhất phải đứng đầu, nhận được %s", got[0].Key)
	}
	if got[1].Key != "mobile" || got[2].Key != "tablet" {
		t.Errorf("Hòa count phải sắp theo key tăng dần, nhận được %s, %s", got[1].Key, got[2].Key)
	}
}

func TestSortDailyAsc(t *testing.T) {
	rows := []DailyStats{
		{Date: "2025-06-03", PageViews: 1},
		{Date: "2025-06-01", PageViews: 2},
		{Date: "2025-06-02", PageViews: 3},
	}

	got := SortDailyAsc(rows)
	for i := 1; i < len(got); i++ {
		if got[i].Date <= got[i-1].Date {
			t.Fatalf("Thống kê ngày phải tăng dần và không trùng ngày: %s sau %s", got[i].Date, got[i-1].Date)
		}
	}
}

func TestShapeRealtime(t *testing.T) {
	rows := []hourlyRow{}
	add := func(hour int, eventType string, count int64) {
		row := hourlyRow{Count: count}
		row.ID.Hour = hour
		row.ID.Type = eventType
		rows = append(rows, row)
	}
	add(14, "pageview", 5)
	add(9, "pageview", 3)
	add(14, "click", 2)

	got := ShapeRealtime(rows)
	if len(got) != 2 {
		t.Fatalf("Phải có 2 giờ, nhận được %d", len(got))
	}
	if got[0].Hour != 9 || got[1].Hour != 14 {
		t.Errorf("Giờ phải tăng dần, nhận được %d, %d", got[0].Hour, got[1].Hour)
	}
	if got[1].Total != 7 {
		t.Errorf("Total của giờ 14 phải là 7, nhận được %d", got[1].Total)
	}
	if got[1].Counts["pageview"] != 5 || got[1].Counts["click"] != 2 {
		t.Errorf("Counts theo loại của giờ 14 sai: %+v", got[1].Counts)
	}
}
