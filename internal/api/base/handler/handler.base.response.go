package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"elite_devs/internal/common"
	"elite_devs/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// Pagination mô tả thông tin phân trang trong response.
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// Success trả về response thành công với envelope chuẩn {success, data}.
func Success(c fiber.Ctx, statusCode int, data interface{}) error {
	return JSONResponse(c, statusCode, fiber.Map{
		"success": true,
		"data":    data,
	})
}

// SuccessWithPagination trả về response thành công kèm thông tin phân trang.
func SuccessWithPagination(c fiber.Ctx, data interface{}, pagination Pagination) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// SuccessMessage trả về response thành công chỉ có message (cho các thao tác không trả dữ liệu).
func SuccessMessage(c fiber.Ctx, message string) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": message,
	})
}

// HandleError chuẩn hóa error response.
// Lỗi thuộc nhóm Database không bao giờ lộ chi tiết ra client: log server-side,
// client chỉ nhận thông báo chung (trừ ErrNotFound trả về 404).
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.Code.Category == "Database" && customErr.StatusCode != common.StatusNotFound {
			logger.GetErrorLogger().WithError(err).WithField("path", c.Path()).Error("Lỗi database")
			return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"error":   common.MsgInternalError,
			})
		}

		body := fiber.Map{
			"success": false,
			"error":   customErr.Message,
		}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	// Lỗi không xác định: log chi tiết, trả về thông báo chung
	logger.GetErrorLogger().WithError(err).WithField("path", c.Path()).Error("Lỗi không xác định")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"success": false,
		"error":   common.MsgInternalError,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic trong handler")

			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"error":   common.MsgInternalError,
			})
		}
	}()
	return handler()
}

// SafeHandlerWrapper bọc handler function với recover (dùng bởi domain handler không embed BaseHandler).
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic trong handler")

			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"error":   common.MsgInternalError,
			})
		}
	}()
	if err := fn(); err != nil {
		return HandleError(c, err)
	}
	return nil
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		_ = HandleError(c, err)
		return
	}
	_ = Success(c, common.StatusOK, data)
}
