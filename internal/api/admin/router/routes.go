// Package router đăng ký các route dashboard và export admin.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	adminhdl "elite_devs/internal/api/admin/handler"
	apirouter "elite_devs/internal/api/router"
)

// Register đăng ký route admin tổng hợp.
// Stats và bulk của từng collection do domain tương ứng tự đăng ký.
func Register(api fiber.Router, r *apirouter.Router) error {
	h, err := adminhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("create admin handler: %w", err)
	}

	api.Get("/admin/dashboard", h.Dashboard)
	api.Get("/admin/export/contacts", h.ExportContacts)
	api.Get("/admin/export/newsletter", h.ExportNewsletter)

	return nil
}
