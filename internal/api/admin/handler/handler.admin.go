// Package adminhdl chứa HTTP handler cho dashboard và export admin.
package adminhdl

import (
	"bytes"
	"fmt"
	"time"

	adminsvc "elite_devs/internal/api/admin/service"
	basehdl "elite_devs/internal/api/base/handler"
	contactsvc "elite_devs/internal/api/contact/service"
	newslettersvc "elite_devs/internal/api/newsletter/service"
	"elite_devs/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminHandler xử lý dashboard tổng hợp và export dữ liệu.
type AdminHandler struct {
	dashboard  *adminsvc.DashboardService
	contacts   *contactsvc.ContactService
	newsletter *newslettersvc.NewsletterService
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	dashboard, err := adminsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %v", err)
	}
	contacts, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %v", err)
	}
	newsletter, err := newslettersvc.NewNewsletterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter service: %v", err)
	}

	return &AdminHandler{
		dashboard:  dashboard,
		contacts:   contacts,
		newsletter: newsletter,
	}, nil
}

// Dashboard trả về dữ liệu tổng hợp cho trang dashboard.
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		dashboard, err := h.dashboard.GetDashboard(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, dashboard)
	})
}

// sendCSV ghi bảng CSV ra response với header tải file.
func sendCSV(c fiber.Ctx, doc adminsvc.CSVDocument, filenamePrefix string) error {
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Failed to build CSV export", common.StatusInternalServerError, nil)
	}

	filename := adminsvc.ExportFilename(filenamePrefix, time.Now())
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(common.StatusOK).Send(buf.Bytes())
}

// ExportContacts export toàn bộ liên hệ dạng CSV, mới nhất trước.
// GET /api/admin/export/contacts
func (h *AdminHandler) ExportContacts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		contacts, err := h.contacts.Find(c.Context(), bson.M{}, opts)
		if err != nil {
			return err
		}
		return sendCSV(c, adminsvc.ContactsCSV(contacts), "contacts")
	})
}

// ExportNewsletter export toàn bộ subscriber dạng CSV, mới nhất trước.
// GET /api/admin/export/newsletter
func (h *AdminHandler) ExportNewsletter(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
		subscribers, err := h.newsletter.Find(c.Context(), bson.M{}, opts)
		if err != nil {
			return err
		}
		return sendCSV(c, adminsvc.SubscribersCSV(subscribers), "newsletter-subscribers")
	})
}
