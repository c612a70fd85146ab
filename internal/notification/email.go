// Package notification gửi email giao dịch qua Resend.
// Mọi email đều là side effect best-effort: caller gọi qua goroutine,
// lỗi gửi chỉ được log, không bao giờ ảnh hưởng response chính.
package notification

import (
	"fmt"

	"elite_devs/config"
	"elite_devs/internal/logger"

	"github.com/resendlabs/resend-go"
)

// Service là interface gửi email của hệ thống.
type Service interface {
	// SendContactNotification báo cho admin có liên hệ mới
	SendContactNotification(name, email, service, message string) error
	// SendContactAutoReply gửi thư xác nhận cho người liên hệ
	SendContactAutoReply(name, email string) error
	// SendWelcomeEmail gửi thư chào mừng subscriber mới
	SendWelcomeEmail(email string) error
	// SendNewsletterIssue gửi một số newsletter cho một subscriber
	SendNewsletterIssue(email, subject, content, previewText string) error
}

// ResendService gửi email qua Resend API.
type ResendService struct {
	client     *resend.Client
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewService tạo email service từ config.
// Thiếu API key trả về noopService: chỉ log, không gửi (dùng cho môi trường dev).
func NewService(cfg *config.Configuration) Service {
	if cfg.Resend_APIKey == "" {
		logger.GetAppLogger().Warn("RESEND_API_KEY chưa cấu hình, email chỉ được log")
		return &noopService{}
	}
	return &ResendService{
		client:     resend.NewClient(cfg.Resend_APIKey),
		fromEmail:  cfg.Email_From,
		fromName:   cfg.Email_FromName,
		adminEmail: cfg.Email_Admin,
	}
}

func (s *ResendService) send(to, subject, html string) error {
	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendContactNotification báo cho admin có liên hệ mới.
func (s *ResendService) SendContactNotification(name, email, service, message string) error {
	subject := fmt.Sprintf("New contact from %s", name)
	html := contactNotificationBody(name, email, service, message)
	return s.send(s.adminEmail, subject, html)
}

// SendContactAutoReply gửi thư xác nhận cho người liên hệ.
func (s *ResendService) SendContactAutoReply(name, email string) error {
	subject := "Thanks for reaching out"
	return s.send(email, subject, contactAutoReplyBody(name))
}

// SendWelcomeEmail gửi thư chào mừng subscriber mới.
func (s *ResendService) SendWelcomeEmail(email string) error {
	subject := "Welcome to our newsletter"
	return s.send(email, subject, welcomeBody())
}

// SendNewsletterIssue gửi một số newsletter cho một subscriber.
func (s *ResendService) SendNewsletterIssue(email, subject, content, previewText string) error {
	return s.send(email, subject, newsletterBody(content, previewText))
}

// noopService chỉ log, dùng khi chưa cấu hình Resend.
type noopService struct{}

func (s *noopService) SendContactNotification(name, email, service, message string) error {
	logger.GetAppLogger().WithField("email", email).Info("Bỏ qua gửi contact notification (chưa cấu hình Resend)")
	return nil
}

func (s *noopService) SendContactAutoReply(name, email string) error {
	logger.GetAppLogger().WithField("email", email).Info("Bỏ qua gửi auto reply (chưa cấu hình Resend)")
	return nil
}

func (s *noopService) SendWelcomeEmail(email string) error {
	logger.GetAppLogger().WithField("email", email).Info("Bỏ qua gửi welcome email (chưa cấu hình Resend)")
	return nil
}

func (s *noopService) SendNewsletterIssue(email, subject, content, previewText string) error {
	logger.GetAppLogger().WithField("email", email).Info("Bỏ qua gửi newsletter (chưa cấu hình Resend)")
	return nil
}
