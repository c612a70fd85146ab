// Package analyticshdl chứa HTTP handler cho domain Analytics.
package analyticshdl

import (
	"fmt"
	"strconv"
	"time"

	analyticsdto "elite_devs/internal/api/analytics/dto"
	analyticsmodels "elite_devs/internal/api/analytics/models"
	analyticssvc "elite_devs/internal/api/analytics/service"
	basehdl "elite_devs/internal/api/base/handler"
	"elite_devs/internal/common"

	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandler xử lý các request thống kê và ghi nhận event
type AnalyticsHandler struct {
	recorder *analyticssvc.RecorderService
	stats    *analyticssvc.StatsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	recorder, err := analyticssvc.NewRecorderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics recorder service: %v", err)
	}
	stats, err := analyticssvc.NewStatsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics stats service: %v", err)
	}
	return &AnalyticsHandler{
		recorder: recorder,
		stats:    stats,
	}, nil
}

// Recorder trả về recorder service (dùng bởi các domain khác để phát event).
func (h *AnalyticsHandler) Recorder() *analyticssvc.RecorderService {
	return h.recorder
}

// resolveRange đọc startDate/endDate từ query string và chuẩn hóa khoảng thống kê.
func resolveRange(c fiber.Ctx) (time.Time, time.Time, error) {
	start, end, err := analyticssvc.ResolveRange(c.Query("startDate"), c.Query("endDate"), time.Now())
	if err != nil {
		return time.Time{}, time.Time{}, common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			[]basehdl.ValidationDetail{{Field: "startDate/endDate", Message: err.Error()}},
		)
	}
	return start, end, nil
}

// Overview trả về thống kê tổng quan trong khoảng thời gian.
// GET /api/analytics/overview?startDate&endDate
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		data, err := h.stats.GetOverallStats(c.Context(), start, end)
		if err != nil {
			return err
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// Daily trả về thống kê theo ngày, tăng dần.
// GET /api/analytics/daily?startDate&endDate
func (h *AnalyticsHandler) Daily(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		data, err := h.stats.GetDailyStats(c.Context(), start, end)
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.DailyStats{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// PopularPages trả về bảng xếp hạng trang theo lượt xem.
// GET /api/analytics/popular-pages?startDate&endDate&limit
func (h *AnalyticsHandler) PopularPages(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil || limit <= 0 {
			limit = analyticssvc.DefaultPopularPagesLimit
		}

		data, err := h.stats.GetPopularPages(c.Context(), start, end, limit)
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.PageStats{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// Devices trả về phân bố pageview theo loại thiết bị.
// GET /api/analytics/devices?startDate&endDate
func (h *AnalyticsHandler) Devices(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		data, err := h.stats.GetDeviceStats(c.Context(), start, end)
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.BreakdownStats{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// Geographic trả về phân bố pageview theo quốc gia.
// GET /api/analytics/geographic?startDate&endDate
func (h *AnalyticsHandler) Geographic(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		data, err := h.stats.GetGeographicStats(c.Context(), start, end)
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.BreakdownStats{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// Realtime trả về thống kê theo giờ trong 24h gần nhất.
// GET /api/analytics/realtime
func (h *AnalyticsHandler) Realtime(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		data, err := h.stats.GetRealtimeStats(c.Context(), time.Now())
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.HourlyStats{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// dailyByType trả về chuỗi số lượng event theo ngày cho một loại cố định.
func (h *AnalyticsHandler) dailyByType(c fiber.Ctx, eventType string) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		data, err := h.stats.GetDailyCountByType(c.Context(), eventType, start, end)
		if err != nil {
			return err
		}
		if data == nil {
			data = []analyticssvc.DailyCount{}
		}
		return basehdl.Success(c, common.StatusOK, data)
	})
}

// ContactForms trả về số lượt gửi form liên hệ theo ngày.
// GET /api/analytics/contact-forms?startDate&endDate
func (h *AnalyticsHandler) ContactForms(c fiber.Ctx) error {
	return h.dailyByType(c, analyticsmodels.EventTypeContactForm)
}

// NewsletterSignups trả về số lượt đăng ký newsletter theo ngày.
// GET /api/analytics/newsletter-signups?startDate&endDate
func (h *AnalyticsHandler) NewsletterSignups(c fiber.Ctx) error {
	return h.dailyByType(c, analyticsmodels.EventTypeNewsletterSignup)
}

// Track ghi nhận một event từ client.
// POST /api/analytics/track body {type, page, title?, metadata?}
// Trả về 201 ngay khi event được nhận; việc ghi vào store chạy bất đồng bộ.
func (h *AnalyticsHandler) Track(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input analyticsdto.TrackEventInput
		if len(c.Body()) > 0 {
			if err := c.Bind().Body(&input); err != nil {
				return common.NewError(
					common.ErrCodeValidationFormat,
					"Request body phải là JSON hợp lệ",
					common.StatusBadRequest,
					nil,
				)
			}
		}

		if err := basehdl.ValidateStruct(&input); err != nil {
			return err
		}

		info := analyticssvc.SnapshotRequest(c, input.Page, input.Title)
		h.recorder.Record(input.Type, info, input.Metadata)

		return basehdl.Success(c, common.StatusCreated, fiber.Map{"accepted": true})
	})
}

// EventsByType trả về danh sách event thô theo loại, phân trang.
// GET /api/analytics/by-type/:type?startDate&endDate&page&limit
func (h *AnalyticsHandler) EventsByType(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		eventType := c.Params("type")
		if eventType == "" {
			return common.NewError(common.ErrCodeValidationInput, "Thiếu loại event trong URL", common.StatusBadRequest, nil)
		}

		start, end, err := resolveRange(c)
		if err != nil {
			return err
		}

		page, limit := basehdl.ParsePagination(c)

		result, err := h.stats.GetEventsByType(c.Context(), eventType, start, end, page, limit)
		if err != nil {
			return err
		}

		return basehdl.SuccessWithPagination(c, result.Items, basehdl.Pagination{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPage,
		})
	})
}
