// Package newsletterhdl chứa HTTP handler cho domain Newsletter.
package newsletterhdl

import (
	"fmt"
	"time"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	basehdl "elite_devs/internal/api/base/handler"
	newsletterdto "elite_devs/internal/api/newsletter/dto"
	newslettermodels "elite_devs/internal/api/newsletter/models"
	newslettersvc "elite_devs/internal/api/newsletter/service"
	"elite_devs/internal/common"
	"elite_devs/internal/logger"
	"elite_devs/internal/notification"

	"github.com/gofiber/fiber/v3"
)

// NewsletterHandler xử lý đăng ký nhận tin public và nghiệp vụ admin.
type NewsletterHandler struct {
	*basehdl.BaseHandler[newslettermodels.NewsletterSubscriber, newsletterdto.SubscriberCreateInput, newsletterdto.SubscriberUpdateInput]
	service  *newslettersvc.NewsletterService
	emails   notification.Service
	recorder *analyticssvc.RecorderService
}

// NewNewsletterHandler tạo mới NewsletterHandler
func NewNewsletterHandler(emails notification.Service, recorder *analyticssvc.RecorderService) (*NewsletterHandler, error) {
	service, err := newslettersvc.NewNewsletterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create newsletter service: %v", err)
	}

	h := &NewsletterHandler{
		service:  service,
		emails:   emails,
		recorder: recorder,
	}
	h.BaseHandler = basehdl.NewBaseHandler[newslettermodels.NewsletterSubscriber, newsletterdto.SubscriberCreateInput, newsletterdto.SubscriberUpdateInput](service)
	return h, nil
}

// Subscribe đăng ký nhận tin, idempotent theo email.
// POST /api/newsletter/subscribe
// Welcome email và event analytics chạy bất đồng bộ, lỗi chỉ được log.
func (h *NewsletterHandler) Subscribe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsletterdto.SubscribeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		result, err := h.service.Subscribe(c.Context(), input)
		if err != nil {
			return err
		}

		if result.Activated {
			h.sendWelcomeAsync(result.Subscriber.Email)

			if h.recorder != nil {
				info := analyticssvc.SnapshotRequest(c, c.Get("Referer"), "")
				h.recorder.Record(analyticsmodels.EventTypeNewsletterSignup, info, map[string]interface{}{
					"subscriberId": result.Subscriber.ID.Hex(),
					"source":       result.Subscriber.Source,
				})
			}
		}

		status := common.StatusOK
		if result.Activated {
			status = common.StatusCreated
		}
		return basehdl.Success(c, status, result.Subscriber)
	})
}

// sendWelcomeAsync gửi welcome email không chặn response.
func (h *NewsletterHandler) sendWelcomeAsync(email string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Panic khi gửi welcome email")
			}
		}()

		if err := h.emails.SendWelcomeEmail(email); err != nil {
			logger.GetErrorLogger().WithError(err).Error("Gửi welcome email thất bại")
		}
	}()
}

// Unsubscribe hủy đăng ký theo token trong link email.
// GET /api/newsletter/unsubscribe/:token
func (h *NewsletterHandler) Unsubscribe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		token := c.Params("token")
		if token == "" {
			return common.ErrNotFound
		}

		subscriber, err := h.service.UnsubscribeByToken(c.Context(), token)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{
			"email":  subscriber.Email,
			"status": subscriber.Status,
		})
	})
}

// UnsubscribeByEmail hủy đăng ký theo email trong body, dùng cho form trên trang web.
// POST /api/newsletter/unsubscribe
func (h *NewsletterHandler) UnsubscribeByEmail(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsletterdto.UnsubscribeInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		subscriber, err := h.service.UnsubscribeByToken(c.Context(), input.Email)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, fiber.Map{
			"email":  subscriber.Email,
			"status": subscriber.Status,
		})
	})
}

// Preferences cập nhật tùy chọn nhận tin theo email.
// PUT /api/newsletter/preferences
func (h *NewsletterHandler) Preferences(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsletterdto.PreferencesInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		subscriber, err := h.service.UpdatePreferences(c.Context(), input)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, subscriber)
	})
}

// Stats trả về thống kê subscriber cho admin.
// GET /api/admin/newsletter/stats
func (h *NewsletterHandler) Stats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.service.GetStats(c.Context())
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, stats)
	})
}

// SendCampaign gửi một số newsletter cho toàn bộ subscriber đang active
// (hoặc thu hẹp theo topic trong preferences).
// POST /api/admin/newsletter/send
// Email fan-out chạy bất đồng bộ; emailsSent được tăng ngay khi nhận chiến dịch.
func (h *NewsletterHandler) SendCampaign(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsletterdto.CampaignInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return err
		}
		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		subscribers, err := h.service.ListActiveSubscribers(c.Context(), input.Topic)
		if err != nil {
			return err
		}
		if len(subscribers) == 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				"No subscribers found for the specified criteria",
				common.StatusBadRequest,
				nil,
			)
		}

		if _, err := h.service.RecordCampaignSent(c.Context(), input.Topic); err != nil {
			return err
		}

		h.sendCampaignAsync(input, subscribers)

		return basehdl.Success(c, common.StatusOK, fiber.Map{
			"sentTo":  len(subscribers),
			"subject": input.Subject,
			"sentAt":  time.Now().UnixMilli(),
		})
	})
}

// sendCampaignAsync gửi newsletter cho từng subscriber không chặn response.
// Lỗi gửi từng email chỉ được log, không dừng cả chiến dịch.
func (h *NewsletterHandler) sendCampaignAsync(input newsletterdto.CampaignInput, subscribers []newslettermodels.NewsletterSubscriber) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Panic khi gửi newsletter")
			}
		}()

		for _, subscriber := range subscribers {
			if err := h.emails.SendNewsletterIssue(subscriber.Email, input.Subject, input.Content, input.PreviewText); err != nil {
				logger.GetErrorLogger().WithError(err).WithField("email", subscriber.Email).Error("Gửi newsletter thất bại")
			}
		}
	}()
}

// BulkStatus đổi trạng thái hàng loạt theo danh sách ID.
// POST /api/admin/bulk/newsletter/status body {ids, status}
func (h *NewsletterHandler) BulkStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input newsletterdto.BulkStatusInput
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
