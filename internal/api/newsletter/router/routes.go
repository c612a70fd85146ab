// Package router đăng ký các route thuộc domain Newsletter.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticssvc "elite_devs/internal/api/analytics/service"
	newsletterhdl "elite_devs/internal/api/newsletter/handler"
	apirouter "elite_devs/internal/api/router"
	"elite_devs/internal/notification"
)

// Register trả về hàm đăng ký route newsletter, đóng gói email service.
func Register(emails notification.Service) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		recorder, err := analyticssvc.NewRecorderService()
		if err != nil {
			return fmt.Errorf("create analytics recorder service: %w", err)
		}

		h, err := newsletterhdl.NewNewsletterHandler(emails, recorder)
		if err != nil {
			return fmt.Errorf("create newsletter handler: %w", err)
		}

		group := api.Group("/newsletter")
		group.Post("/subscribe", h.Subscribe)
		group.Post("/unsubscribe", h.UnsubscribeByEmail)
		group.Get("/unsubscribe/:token", h.Unsubscribe)
		group.Put("/preferences", h.Preferences)

		r.RegisterCRUDRoutes(api, "/admin/newsletter", h, apirouter.ReadWriteConfig)
		api.Get("/admin/newsletter/stats", h.Stats)
		api.Post("/admin/newsletter/send", h.SendCampaign)
		api.Post("/admin/bulk/newsletter/status", h.BulkStatus)

		return nil
	}
}
