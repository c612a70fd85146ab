package notification

import (
	"fmt"
	"html"
)

// emailLayout bọc nội dung trong khung HTML chung.
func emailLayout(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e; max-width: 600px; margin: 0 auto; padding: 24px;">
%s
<hr style="border: none; border-top: 1px solid #e0e0e0; margin-top: 32px;">
<p style="color: #888; font-size: 12px;">Elite Devs &middot; elitedevs.work</p>
</body>
</html>`, content)
}

func contactNotificationBody(name, email, service, message string) string {
	content := fmt.Sprintf(`<h2>New contact form submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(service),
		html.EscapeString(message),
	)
	return emailLayout(content)
}

func contactAutoReplyBody(name string) string {
	content := fmt.Sprintf(`<h2>Thanks for reaching out, %s!</h2>
<p>We received your message and will get back to you within 1-2 business days.</p>
<p>In the meantime, feel free to browse our recent work and blog.</p>`,
		html.EscapeString(name),
	)
	return emailLayout(content)
}

// newsletterBody bọc nội dung số newsletter do admin soạn (đã là HTML).
// previewText được giấu ở đầu thư để email client hiện làm dòng preview.
func newsletterBody(content, previewText string) string {
	preview := ""
	if previewText != "" {
		preview = fmt.Sprintf(`<div style="display: none; max-height: 0; overflow: hidden;">%s</div>
`, html.EscapeString(previewText))
	}
	return emailLayout(preview + content)
}

func welcomeBody() string {
	content := `<h2>Welcome aboard!</h2>
<p>You are now subscribed to our newsletter. Expect occasional updates on new projects, articles and announcements.</p>
<p>You can unsubscribe at any time from the link in any of our emails.</p>`
	return emailLayout(content)
}
