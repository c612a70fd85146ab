// Package contacthdl chứa HTTP handler cho domain Contact.
package contacthdl

import (
	"context"
	"fmt"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	basehdl "elite_devs/internal/api/base/handler"
	contactdto "elite_devs/internal/api/contact/dto"
	contactmodels "elite_devs/internal/api/contact/models"
	contactsvc "elite_devs/internal/api/contact/service"
	"elite_devs/internal/common"
	"elite_devs/internal/logger"
	"elite_devs/internal/notification"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactHandler xử lý form liên hệ public và nghiệp vụ admin.
type ContactHandler struct {
	*basehdl.BaseHandler[contactmodels.Contact, contactdto.ContactCreateInput, contactdto.ContactUpdateInput]
	service  *contactsvc.ContactService
	emails   notification.Service
	recorder *analyticssvc.RecorderService
}

// NewContactHandler tạo mới ContactHandler
func NewContactHandler(emails notification.Service, recorder *analyticssvc.RecorderService) (*ContactHandler, error) {
	service, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %v", err)
	}

	h := &ContactHandler{
		service:  service,
		emails:   emails,
		recorder: recorder,
	}
	h.BaseHandler = basehdl.NewBaseHandler[contactmodels.Contact, contactdto.ContactCreateInput, contactdto.ContactUpdateInput](service)
	return h, nil
}

// Create nhận liên hệ mới từ form public.
// POST /api/contact
// Email thông báo và event analytics chạy bất đồng bộ, lỗi chỉ được log.
func (h *ContactHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input contactdto.ContactCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := h.ValidateInput(&input); err != nil {
			return err
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			return err
		}
		model.IPAddress = c.IP()
		model.UserAgent = c.Get("User-Agent")
		model.Referrer = c.Get("Referer")

		created, err := h.service.InsertOne(c.Context(), *model)
		if err != nil {
			return err
		}

		h.notifyAsync(created.ID, input)

		if h.recorder != nil {
			info := analyticssvc.SnapshotRequest(c, c.Get("Referer"), "")
			h.recorder.Record(analyticsmodels.EventTypeContactForm, info, map[string]interface{}{
				"contactId": created.ID.Hex(),
				"service":   created.Service,
			})
		}

		return basehdl.Success(c, common.StatusCreated, created)
	})
}

// notifyAsync gửi email thông báo admin và auto-reply, không chặn response.
// Gửi thông báo thành công thì đánh dấu emailSent trên liên hệ.
func (h *ContactHandler) notifyAsync(contactID primitive.ObjectID, input contactdto.ContactCreateInput) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Panic khi gửi email liên hệ")
			}
		}()

		serviceLabel := contactsvc.FormatService(input.Service)
		if err := h.emails.SendContactNotification(input.Name, input.Email, serviceLabel, input.Message); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Gửi contact notification thất bại")
		} else if err := h.service.MarkEmailSent(context.Background(), contactID); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Đánh dấu emailSent thất bại")
		}
		if err := h.emails.SendContactAutoReply(input.Name, input.Email); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Gửi contact auto-reply thất bại")
		}
	}()
}

// Stats trả về thống kê liên hệ cho admin.
// GET /api/admin/contacts/stats
func (h *ContactHandler) Stats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.service.GetStats(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, stats)
	})
}

// BulkStatus đổi trạng thái hàng loạt theo danh sách ID.
// POST /api/admin/bulk/contacts/status body {ids, status}
func (h *ContactHandler) BulkStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input contactdto.BulkStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		modified, err := h.service.BulkUpdateStatus(c.Context(), input.IDs, input.Status)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{"modifiedCount": modified})
	})
}
