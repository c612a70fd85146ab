package basehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// parseApp dựng app tối giản có một route POST dùng ParseBody qua SafeHandlerWrapper,
// giống cách các domain handler nhận request body.
func parseApp() *fiber.App {
	app := fiber.New()
	app.Post("/echo", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error {
			var body map[string]interface{}
			if err := ParseBody(c, &body); err != nil {
				return err
			}
			return Success(c, 200, body)
		})
	})
	return app
}

func TestParseBodyMalformedJSONTraVe400(t *testing.T) {
	app := parseApp()

	req := httptest.NewRequest("POST", "/echo", strings.NewReader("{not json}"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("body JSON hỏng phải trả về 400, nhận được %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var payload struct {
		Success bool            `json:"success"`
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("response không phải JSON: %v", err)
	}
	if payload.Success {
		t.Error("success phải là false")
	}
	if payload.Error == "" {
		t.Error("thiếu thông báo lỗi")
	}
	if len(payload.Details) == 0 {
		t.Error("lỗi định dạng body phải kèm details")
	}
}

func TestParseBodyRongTraVe400(t *testing.T) {
	app := parseApp()

	req := httptest.NewRequest("POST", "/echo", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("body rỗng phải trả về 400, nhận được %d", resp.StatusCode)
	}
}
