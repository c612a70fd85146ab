package adminsvc

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	contactmodels "elite_devs/internal/api/contact/models"
	contactsvc "elite_devs/internal/api/contact/service"
	newslettermodels "elite_devs/internal/api/newsletter/models"
)

// CSVDocument là một bảng CSV đã dựng sẵn, chưa ghi ra writer.
type CSVDocument struct {
	Headers []string
	Rows    [][]string
}

// Write ghi bảng ra writer. Bảng không có dòng nào vẫn ghi header, không lỗi.
func (d CSVDocument) Write(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.Headers); err != nil {
		return err
	}
	for _, row := range d.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// formatMillis đổi unix ms thành chuỗi thời gian dễ đọc, rỗng khi chưa có giá trị.
func formatMillis(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}

// ContactsCSV dựng bảng export liên hệ.
func ContactsCSV(contacts []contactmodels.Contact) CSVDocument {
	doc := CSVDocument{
		Headers: []string{"Name", "Email", "Company", "Phone", "Service", "Budget", "Timeline", "Status", "Message", "Created At"},
	}
	for _, contact := range contacts {
		doc.Rows = append(doc.Rows, []string{
			contact.Name,
			contact.Email,
			contact.Company,
			contact.Phone,
			contactsvc.FormatService(contact.Service),
			contactsvc.FormatBudget(contact.Budget),
			contactsvc.FormatTimeline(contact.Timeline),
			contact.Status,
			contact.Message,
			formatMillis(contact.CreatedAt),
		})
	}
	return doc
}

// SubscribersCSV dựng bảng export subscriber.
func SubscribersCSV(subscribers []newslettermodels.NewsletterSubscriber) CSVDocument {
	doc := CSVDocument{
		Headers: []string{"Email", "Name", "Status", "Source", "Subscribed At", "Unsubscribed At", "Emails Sent", "Emails Opened", "Links Clicked"},
	}
	for _, subscriber := range subscribers {
		doc.Rows = append(doc.Rows, []string{
			subscriber.Email,
			subscriber.Name,
			subscriber.Status,
			subscriber.Source,
			formatMillis(subscriber.SubscribedAt),
			formatMillis(subscriber.UnsubscribedAt),
			strconv.FormatInt(subscriber.EmailsSent, 10),
			strconv.FormatInt(subscriber.EmailsOpened, 10),
			strconv.FormatInt(subscriber.LinksClicked, 10),
		})
	}
	return doc
}

// ExportFilename sinh tên file export kèm ngày, ví dụ contacts-2025-06-15.csv.
func ExportFilename(prefix string, now time.Time) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(now.UTC().Format("2006-01-02"))
	b.WriteString(".csv")
	return b.String()
}
