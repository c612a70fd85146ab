package utility

import (
	"strings"
	"unicode"
)

// Slugify chuyển tiêu đề thành slug dạng kebab-case (chỉ giữ chữ thường, số và dấu gạch ngang)
// @params - chuỗi tiêu đề
// @returns - slug
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // chặn dash ở đầu chuỗi

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// EstimateReadTime ước lượng thời gian đọc (phút) theo tốc độ 200 từ/phút, tối thiểu 1 phút
// @params - nội dung bài viết
// @returns - số phút đọc
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
