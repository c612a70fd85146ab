// Package router đăng ký các route thuộc domain Contact.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticssvc "elite_devs/internal/api/analytics/service"
	contacthdl "elite_devs/internal/api/contact/handler"
	apirouter "elite_devs/internal/api/router"
	"elite_devs/internal/notification"
)

// Register trả về hàm đăng ký route contact, đóng gói email service.
// Public: POST /api/contact. Admin: CRUD + stats + bulk status.
func Register(emails notification.Service) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		recorder, err := analyticssvc.NewRecorderService()
		if err != nil {
			return fmt.Errorf("create analytics recorder service: %w", err)
		}

		h, err := contacthdl.NewContactHandler(emails, recorder)
		if err != nil {
			return fmt.Errorf("create contact handler: %w", err)
		}

		api.Post("/contact", h.Create)

		r.RegisterCRUDRoutes(api, "/admin/contacts", h, apirouter.ReadWriteConfig)
		api.Get("/admin/contacts/stats", h.Stats)
		api.Post("/admin/bulk/contacts/status", h.BulkStatus)

		return nil
	}
}
