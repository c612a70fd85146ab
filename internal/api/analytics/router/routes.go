// Package router đăng ký các route thuộc domain Analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "elite_devs/internal/api/analytics/handler"
	apirouter "elite_devs/internal/api/router"
)

// Register đăng ký tất cả route analytics lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	h, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create analytics handler: %w", err)
	}

	group := api.Group("/analytics")
	group.Get("/overview", h.Overview)
	group.Get("/daily", h.Daily)
	group.Get("/popular-pages", h.PopularPages)
	group.Get("/devices", h.Devices)
	group.Get("/geographic", h.Geographic)
	group.Get("/realtime", h.Realtime)
	group.Get("/contact-forms", h.ContactForms)
	group.Get("/newsletter-signups", h.NewsletterSignups)
	group.Get("/by-type/:type", h.EventsByType)
	group.Post("/track", h.Track)

	return nil
}
