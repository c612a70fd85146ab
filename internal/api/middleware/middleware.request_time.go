package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// requestStartKey là key trong Locals lưu thời điểm nhận request.
const requestStartKey = "request_started_at"

// RequestTimer ghi lại thời điểm bắt đầu xử lý request vào Locals.
// Các handler và middleware phía sau đọc lại qua RequestStartedAt để tính response time,
// không dùng biến global để tránh sai lệch khi nhiều request chạy đồng thời.
func RequestTimer() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(requestStartKey, time.Now())
		return c.Next()
	}
}

// RequestStartedAt trả về thời điểm bắt đầu xử lý request.
// Nếu RequestTimer chưa chạy (route ngoài chain), trả về time.Now().
func RequestStartedAt(c fiber.Ctx) time.Time {
	if v, ok := c.Locals(requestStartKey).(time.Time); ok {
		return v
	}
	return time.Now()
}
