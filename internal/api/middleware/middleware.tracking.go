package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// TrackFunc nhận thông tin request sau khi xử lý xong để ghi nhận thống kê.
// Implementation phải tự chạy bất đồng bộ, không được block response.
type TrackFunc func(c fiber.Ctx, statusCode int, responseTime time.Duration)

// Tracking gọi track sau khi request đã được xử lý.
// Lỗi trong quá trình ghi nhận không bao giờ ảnh hưởng đến response chính.
func Tracking(track TrackFunc) fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()

		started := RequestStartedAt(c)
		status := c.Response().StatusCode()
		track(c, status, time.Since(started))

		return err
	}
}
