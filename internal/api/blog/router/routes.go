// Package router đăng ký các route thuộc domain Blog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	bloghdl "elite_devs/internal/api/blog/handler"
	"elite_devs/internal/api/middleware"
	apirouter "elite_devs/internal/api/router"
)

// Register đăng ký route blog: public đọc dưới /api/blog, admin CRUD + stats.
// Route tĩnh (/blog) phải đăng ký trước route có tham số (/blog/:slug).
// Lượt xem chi tiết được ghi nhận qua middleware tracking trên chính route đó.
func Register(api fiber.Router, r *apirouter.Router) error {
	recorder, err := analyticssvc.NewRecorderService()
	if err != nil {
		return fmt.Errorf("create analytics recorder service: %w", err)
	}

	h, err := bloghdl.NewBlogHandler()
	if err != nil {
		return fmt.Errorf("create blog handler: %w", err)
	}

	viewTrack := middleware.Tracking(recorder.TrackFunc(analyticsmodels.EventTypeBlogView))

	api.Get("/blog", h.List)
	api.Get("/blog/categories/list", h.Categories)
	api.Get("/blog/tags/list", h.Tags)
	api.Get("/blog/:slug", h.GetBySlug, viewTrack)
	api.Post("/blog/:slug/like", h.Like)

	r.RegisterCRUDRoutes(api, "/admin/blog", h, apirouter.ReadWriteConfig)
	api.Get("/admin/blog/stats", h.Stats)
	api.Post("/admin/bulk/blog/status", h.BulkStatus)

	return nil
}
