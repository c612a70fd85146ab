package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	adminrouter "elite_devs/internal/api/admin/router"
	analyticsrouter "elite_devs/internal/api/analytics/router"
	basehdl "elite_devs/internal/api/base/handler"
	blogrouter "elite_devs/internal/api/blog/router"
	contactrouter "elite_devs/internal/api/contact/router"
	"elite_devs/internal/api/middleware"
	newsletterrouter "elite_devs/internal/api/newsletter/router"
	portfoliorouter "elite_devs/internal/api/portfolio/router"
	apirouter "elite_devs/internal/api/router"
	"elite_devs/internal/common"
	"elite_devs/internal/global"
	"elite_devs/internal/logger"
	"elite_devs/internal/notification"
)

// trackEndpoint endpoint ghi event từ client, có rate limit budget riêng.
const trackEndpoint = "/api/analytics/track"

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	cfg := global.MongoDB_ServerConfig

	// Khởi tạo app với cấu hình nâng cao
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "Elite Devs API", // Tên ứng dụng hiển thị
		ServerHeader:  "Elite Devs API", // Header server trong response
		StrictRouting: false,            // /foo và /foo/ là một
		CaseSensitive: true,             // /Foo và /foo là khác nhau
		UnescapePath:  true,             // Tự động decode URL-encoded paths

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       5 * 1024 * 1024, // Max size của request body (5MB)
		Concurrency:     256 * 1024,      // Số lượng goroutines tối đa
		ReadBufferSize:  4096,            // Buffer size cho request reading
		WriteBufferSize: 4096,            // Buffer size cho response writing

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,  // Timeout đọc request
		WriteTimeout: 30 * time.Second,  // Timeout ghi response
		IdleTimeout:  120 * time.Second, // Timeout cho idle connections

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			// Lỗi 5xx không bao giờ trả chi tiết nội bộ cho client
			if code >= fiber.StatusInternalServerError {
				logger.WithRequest(c).WithError(err).Error("Request error")
				message = "Internal server error"
			}

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   message,
			})
		},
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. Request Timer - ghi lại thời điểm nhận request cho tracking và log
	app.Use(middleware.RequestTimer())

	// 3. CORS Middleware - PHẢI ĐẶT TRƯỚC các middleware khác để xử lý preflight
	corsOrigins := cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Request-ID",
			"X-Requested-With",
			"X-Session-ID", // Session tracking cho analytics
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Thời gian cache preflight requests (24 giờ)
	}))

	// 4. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 5. Rate Limiting Middleware
	// Hai lớp: budget chung theo IP, và budget riêng rộng hơn cho /track
	// (client gửi event pageview liên tục, không được chặn chung với form).
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		rateLimitWindow := time.Duration(cfg.RateLimit_Window) * time.Second

		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: rateLimitReached,
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/health" ||
					c.Path() == trackEndpoint ||
					c.Method() == "OPTIONS"
			},
		}))

		trackMax := cfg.RateLimit_TrackMax
		if trackMax <= 0 {
			trackMax = cfg.RateLimit_Max * 10
		}
		app.Use(limiter.New(limiter.Config{
			Max:        trackMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: rateLimitReached,
			Next: func(c fiber.Ctx) bool {
				return c.Path() != trackEndpoint
			},
		}))

		log.Infof("Rate limiting enabled: %d requests per %d seconds (%d for track)",
			cfg.RateLimit_Max, cfg.RateLimit_Window, trackMax)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 6. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Internal server error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// Health check nằm ngoài /api, không qua rate limit
	systemHandler := basehdl.NewSystemHandler()
	app.Get("/health", systemHandler.HandleHealth)

	// Email service dùng chung cho contact và newsletter
	emails := notification.NewService(cfg)

	// Đăng ký route của từng domain
	if err := apirouter.SetupRoutes(app,
		analyticsrouter.Register,
		contactrouter.Register(emails),
		blogrouter.Register,
		portfoliorouter.Register,
		newsletterrouter.Register(emails),
		adminrouter.Register,
	); err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

// rateLimitReached trả về 429 với envelope thống nhất.
func rateLimitReached(c fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"success": false,
		"error":   common.MsgTooManyRequests,
	})
}
