package analyticssvc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	analyticsmodels "elite_devs/internal/api/analytics/models"
	basesvc "elite_devs/internal/api/base/service"
	"elite_devs/internal/api/middleware"
	"elite_devs/internal/common"
	"elite_devs/internal/global"
	"elite_devs/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/mileusna/useragent"
)

// RequestInfo là snapshot thông tin request dùng để build event.
// Phải snapshot TRƯỚC khi tách goroutine: fiber.Ctx bị tái sử dụng sau khi response trả về.
type RequestInfo struct {
	Page         string
	Title        string
	Referrer     string
	UserAgent    string
	IPAddress    string
	SessionID    string
	ScreenWidth  string // raw query param sw
	ScreenHeight string // raw query param sh
	Method       string
	StatusCode   int
	ResponseTime int64 // ms
}

// SnapshotRequest trích xuất thông tin cần thiết từ fiber context.
// page/title lấy từ tham số nếu client gửi trong body, fallback về path của request.
func SnapshotRequest(c fiber.Ctx, page, title string) RequestInfo {
	if page == "" {
		page = c.Path()
	}
	return RequestInfo{
		Page:         page,
		Title:        title,
		Referrer:     c.Get("Referer"),
		UserAgent:    c.Get("User-Agent"),
		IPAddress:    c.IP(),
		SessionID:    SessionIDFromRequest(c),
		ScreenWidth:  c.Query("sw"),
		ScreenHeight: c.Query("sh"),
		Method:       c.Method(),
	}
}

// SessionIDFromRequest lấy session id từ header X-Session-ID, fallback query param sessionId.
func SessionIDFromRequest(c fiber.Ctx) string {
	if sid := c.Get("X-Session-ID"); sid != "" {
		return sid
	}
	return c.Query("sessionId")
}

// ClassifyDevice phân loại thiết bị từ user agent.
// Chính sách: loại thiết bị tường minh từ parser → dùng luôn;
// không có thì OS iOS/Android → mobile; còn lại → desktop.
func ClassifyDevice(uaString string) *analyticsmodels.Device {
	if uaString == "" {
		return &analyticsmodels.Device{Type: analyticsmodels.DeviceTypeUnknown}
	}

	ua := useragent.Parse(uaString)

	deviceType := ""
	switch {
	case ua.Tablet:
		deviceType = analyticsmodels.DeviceTypeTablet
	case ua.Mobile:
		deviceType = analyticsmodels.DeviceTypeMobile
	case ua.Desktop:
		deviceType = analyticsmodels.DeviceTypeDesktop
	}

	if deviceType == "" {
		if ua.OS == "iOS" || ua.OS == "Android" {
			deviceType = analyticsmodels.DeviceTypeMobile
		} else {
			deviceType = analyticsmodels.DeviceTypeDesktop
		}
	}

	return &analyticsmodels.Device{
		Type:    deviceType,
		Browser: ua.Name,
		OS:      ua.OS,
	}
}

// ParseScreen parse kích thước màn hình từ query param sw/sh.
// Trả về nil khi thiếu hoặc không phải số - không bao giờ suy đoán.
func ParseScreen(sw, sh string) *analyticsmodels.Screen {
	if sw == "" || sh == "" {
		return nil
	}
	width, err := strconv.Atoi(sw)
	if err != nil || width <= 0 {
		return nil
	}
	height, err := strconv.Atoi(sh)
	if err != nil || height <= 0 {
		return nil
	}
	return &analyticsmodels.Screen{Width: width, Height: height}
}

// RecorderService ghi nhận event vào event store.
type RecorderService struct {
	*basesvc.BaseServiceMongoImpl[analyticsmodels.Event]
}

// NewRecorderService tạo mới RecorderService
func NewRecorderService() (*RecorderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AnalyticsEvents)
	if !exist {
		return nil, fmt.Errorf("failed to get analytics_events collection: %v", common.ErrNotFound)
	}
	return &RecorderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[analyticsmodels.Event](collection),
	}, nil
}

// BuildEvent dựng Event từ snapshot request và metadata bổ sung.
func (s *RecorderService) BuildEvent(eventType string, info RequestInfo, metadata map[string]interface{}) analyticsmodels.Event {
	event := analyticsmodels.Event{
		Type:      eventType,
		Page:      info.Page,
		Title:     info.Title,
		Referrer:  info.Referrer,
		UserAgent: info.UserAgent,
		IPAddress: info.IPAddress,
		Device:    ClassifyDevice(info.UserAgent),
		Timestamp: time.Now().UTC(),
	}

	if screen := ParseScreen(info.ScreenWidth, info.ScreenHeight); screen != nil {
		event.Device.Screen = screen
	}
	if info.SessionID != "" {
		event.Session = &analyticsmodels.Session{ID: info.SessionID}
	}

	meta := map[string]interface{}{}
	for k, v := range metadata {
		meta[k] = v
	}
	if info.Method != "" {
		meta["method"] = info.Method
	}
	if info.StatusCode != 0 {
		meta["statusCode"] = info.StatusCode
	}
	if info.ResponseTime > 0 {
		meta["responseTime"] = info.ResponseTime
	}
	if len(meta) > 0 {
		event.Metadata = meta
	}

	return event
}

// ShouldTrackView quyết định một request đọc nội dung có được tính là lượt xem không.
// Request lỗi (slug không tồn tại, bad request) không được tính,
// giữ số event đồng bộ với counter views trên document.
func ShouldTrackView(statusCode int) bool {
	return statusCode < 400
}

// TrackFunc trả về hook ghi event cho một loại cố định, gắn qua middleware.Tracking
// lên từng route GET chi tiết. Pageview KHÔNG đi qua đây: client tự gửi POST /track.
func (s *RecorderService) TrackFunc(eventType string) middleware.TrackFunc {
	return func(c fiber.Ctx, statusCode int, responseTime time.Duration) {
		if !ShouldTrackView(statusCode) {
			return
		}
		info := SnapshotRequest(c, "", "")
		info.StatusCode = statusCode
		info.ResponseTime = responseTime.Milliseconds()
		s.Record(eventType, info, nil)
	}
}

// Record ghi event bất đồng bộ (fire-and-forget).
// Insert chạy trong goroutine riêng với recover; lỗi chỉ được log,
// không bao giờ làm chậm hay làm hỏng response chính.
func (s *RecorderService) Record(eventType string, info RequestInfo, metadata map[string]interface{}) {
	event := s.BuildEvent(eventType, info, metadata)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic khi ghi analytics event")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := s.InsertOne(ctx, event); err != nil {
			logger.GetErrorLogger().WithError(err).WithField("eventType", eventType).Error("Ghi analytics event thất bại")
		}
	}()
}
