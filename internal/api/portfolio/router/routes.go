// Package router đăng ký các route thuộc domain Portfolio.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	"elite_devs/internal/api/middleware"
	portfoliohdl "elite_devs/internal/api/portfolio/handler"
	apirouter "elite_devs/internal/api/router"
)

// Register đăng ký route portfolio: public đọc dưới /api/portfolio, admin CRUD + stats.
// Lượt xem chi tiết được ghi nhận qua middleware tracking trên chính route đó.
func Register(api fiber.Router, r *apirouter.Router) error {
	recorder, err := analyticssvc.NewRecorderService()
	if err != nil {
		return fmt.Errorf("create analytics recorder service: %w", err)
	}

	h, err := portfoliohdl.NewPortfolioHandler()
	if err != nil {
		return fmt.Errorf("create portfolio handler: %w", err)
	}

	viewTrack := middleware.Tracking(recorder.TrackFunc(analyticsmodels.EventTypePortfolioView))

	api.Get("/portfolio", h.List)
	api.Get("/portfolio/:slug", h.GetBySlug, viewTrack)
	api.Post("/portfolio/:slug/like", h.Like)

	r.RegisterCRUDRoutes(api, "/admin/portfolio", h, apirouter.ReadWriteConfig)
	api.Get("/admin/portfolio/stats", h.Stats)
	api.Post("/admin/bulk/portfolio/status", h.BulkStatus)

	return nil
}
