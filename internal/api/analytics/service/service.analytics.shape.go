package analyticssvc

// Các hàm shaping thuần: nhận rows đã decode từ pipeline, trả về report object.
// Không chạm database để có thể test độc lập.

import (
	"fmt"
	"sort"
	"time"
)

// DefaultRangeDays là số ngày mặc định của khoảng thống kê khi thiếu startDate.
const DefaultRangeDays = 30

// DefaultPopularPagesLimit là số trang tối đa mặc định cho bảng xếp hạng.
const DefaultPopularPagesLimit = 10

// OverallStats là báo cáo tổng quan trong một khoảng thời gian.
// Khoảng không có event nào trả về record toàn số 0, không bao giờ null.
type OverallStats struct {
	TotalPageViews         int64 `json:"totalPageViews" bson:"totalPageViews"`
	TotalContacts          int64 `json:"totalContacts" bson:"totalContacts"`
	TotalNewsletterSignups int64 `json:"totalNewsletterSignups" bson:"totalNewsletterSignups"`
	UniqueVisitors         int64 `json:"uniqueVisitors" bson:"uniqueVisitors"`
	UniqueSessions         int64 `json:"uniqueSessions" bson:"uniqueSessions"`
}

// PageStats là một dòng trong bảng xếp hạng trang.
type PageStats struct {
	Page           string `json:"page" bson:"_id"`
	Views          int64  `json:"views" bson:"views"`
	UniqueVisitors int64  `json:"uniqueVisitors" bson:"uniqueVisitors"`
}

// BreakdownStats là một dòng đếm theo nhóm (device type, country, status, ...).
type BreakdownStats struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DailyStats là thống kê của một ngày (UTC, YYYY-MM-DD).
type DailyStats struct {
	Date              string `json:"date" bson:"_id"`
	PageViews         int64  `json:"pageViews" bson:"pageViews"`
	Contacts          int64  `json:"contacts" bson:"contacts"`
	NewsletterSignups int64  `json:"newsletterSignups" bson:"newsletterSignups"`
	UniqueVisitors    int64  `json:"uniqueVisitors" bson:"uniqueVisitors"`
}

// DailyCount là số event của một ngày cho một loại event cụ thể.
type DailyCount struct {
	Date  string `json:"date" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// hourlyRow là một dòng decode từ pipeline realtime (group theo giờ + loại event).
type hourlyRow struct {
	ID struct {
		Hour int    `bson:"hour"`
		Type string `bson:"type"`
	} `bson:"_id"`
	Count int64 `bson:"count"`
}

// HourlyStats là thống kê của một giờ trong cửa sổ 24h gần nhất.
type HourlyStats struct {
	Hour   int              `json:"hour"`
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// ResolveRange chuẩn hóa khoảng thống kê [start, end] từ query params.
// Thiếu startDate: 30 ngày trước now. Thiếu endDate: now.
// Ngày dạng YYYY-MM-DD được hiểu là trọn ngày đó (endDate bao trùm đến cuối ngày).
func ResolveRange(startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()

	start := now.AddDate(0, 0, -DefaultRangeDays)
	if startStr != "" {
		parsed, err := parseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("startDate không hợp lệ: %w", err)
		}
		start = parsed
	}

	end := now
	if endStr != "" {
		parsed, err := parseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("endDate không hợp lệ: %w", err)
		}
		// Ngày dạng YYYY-MM-DD: lấy đến hết ngày để khoảng là đóng cả hai đầu
		if len(endStr) == len("2006-01-02") {
			parsed = parsed.AddDate(0, 0, 1).Add(-time.Millisecond)
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate phải sau startDate")
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ShapeOverall trả về record tổng quan từ rows pipeline (tối đa 1 row).
// Rows rỗng trả về record toàn 0.
func ShapeOverall(rows []OverallStats) OverallStats {
	if len(rows) == 0 {
		return OverallStats{}
	}
	return rows[0]
}

// RankPopularPages sắp xếp giảm dần theo views, hòa thì page tăng dần, cắt theo limit.
// limit <= 0 dùng mặc định 10.
func RankPopularPages(rows []PageStats, limit int) []PageStats {
	if limit <= 0 {
		limit = DefaultPopularPagesLimit
	}

	ranked := make([]PageStats, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		return ranked[i].Page < ranked[j].Page
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SortBreakdownDesc sắp xếp giảm dần theo count, hòa thì key tăng dần.
func SortBreakdownDesc(rows []BreakdownStats) []BreakdownStats {
	sorted := make([]BreakdownStats, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// SortDailyAsc sắp xếp thống kê ngày tăng dần theo date.
// Ngày không có event không được chèn thêm - caller cần dense series phải tự backfill.
func SortDailyAsc(rows []DailyStats) []DailyStats {
	sorted := make([]DailyStats, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// SortDailyCountAsc sắp xếp chuỗi đếm theo ngày tăng dần.
func SortDailyCountAsc(rows []DailyCount) []DailyCount {
	sorted := make([]DailyCount, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// ShapeRealtime gom rows (giờ + loại event) thành thống kê theo giờ, tăng dần theo giờ.
func ShapeRealtime(rows []hourlyRow) []HourlyStats {
	byHour := map[int]*HourlyStats{}
	for _, row := range rows {
		h, ok := byHour[row.ID.Hour]
		if !ok {
			h = &HourlyStats{Hour: row.ID.Hour, Counts: map[string]int64{}}
			byHour[row.ID.Hour] = h
		}
		h.Counts[row.ID.Type] += row.Count
		h.Total += row.Count
	}

	result := make([]HourlyStats, 0, len(byHour))
	for _, h := range byHour {
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Hour < result[j].Hour
	})
	return result
}
