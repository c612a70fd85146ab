package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

func TestTrackingChiGhiRouteDuocGan(t *testing.T) {
	app := fiber.New()
	app.Use(RequestTimer())

	var called int
	var gotStatus int
	track := Tracking(func(c fiber.Ctx, statusCode int, responseTime time.Duration) {
		called++
		gotStatus = statusCode
	})

	app.Get("/item/:slug", func(c fiber.Ctx) error {
		return c.SendString("ok")
	}, track)
	app.Get("/khac", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/item/abc", nil))
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Route phải trả về 200, nhận được %d", resp.StatusCode)
	}
	if called != 1 {
		t.Fatalf("Track phải được gọi đúng 1 lần, nhận được %d", called)
	}
	if gotStatus != 200 {
		t.Errorf("Track phải nhận status sau khi xử lý, nhận được %d", gotStatus)
	}

	// Route không gắn tracking không được ghi nhận
	if _, err := app.Test(httptest.NewRequest("GET", "/khac", nil)); err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if called != 1 {
		t.Errorf("Route không gắn tracking không được gọi track, số lần gọi: %d", called)
	}
}

func TestTrackingNhanStatusLoi(t *testing.T) {
	app := fiber.New()
	app.Use(RequestTimer())

	var gotStatus int
	track := Tracking(func(c fiber.Ctx, statusCode int, responseTime time.Duration) {
		gotStatus = statusCode
	})

	app.Get("/missing", func(c fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"success": false})
	}, track)

	if _, err := app.Test(httptest.NewRequest("GET", "/missing", nil)); err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if gotStatus != 404 {
		t.Errorf("Track phải nhận status thật của response, nhận được %d", gotStatus)
	}
}
