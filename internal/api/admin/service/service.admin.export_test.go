package adminsvc

import (
	"bytes"
	"strings"
	"testing"
	"time"

	contactmodels "elite_devs/internal/api/contact/models"
	newslettermodels "elite_devs/internal/api/newsletter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsCSVEmpty(t *testing.T) {
	doc := ContactsCSV(nil)

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf), "Export rỗng không được lỗi")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "Export rỗng chỉ có dòng header")
	assert.Contains(t, lines[0], "Email")
}

func TestContactsCSVRows(t *testing.T) {
	contacts := []contactmodels.Contact{
		{
			Name:      "Nguyen Van A",
			Email:     "a@example.com",
			Service:   "web-development",
			Budget:    "10k-25k",
			Timeline:  "asap",
			Status:    "new",
			Message:   `Hello, we need a "quick" quote`,
			CreatedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC).UnixMilli(),
		},
	}

	doc := ContactsCSV(contacts)
	require.Len(t, doc.Rows, 1)

	row := doc.Rows[0]
	assert.Equal(t, "Web Development", row[4], "Service phải được format thành nhãn hiển thị")
	assert.Equal(t, "$10,000 - $25,000", row[5], "Budget phải được format thành nhãn hiển thị")
	assert.Equal(t, "ASAP", row[6], "Timeline phải được format thành nhãn hiển thị")
	assert.Equal(t, "2025-06-15 10:00:00", row[9])

	// Dấu phẩy và dấu nháy trong dữ liệu phải được escape khi ghi
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Contains(t, buf.String(), `"$10,000 - $25,000"`)
	assert.Contains(t, buf.String(), `""quick""`)
}

func TestSubscribersCSV(t *testing.T) {
	subscribers := []newslettermodels.NewsletterSubscriber{
		{
			Email:        "sub@example.com",
			Status:       "active",
			SubscribedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
			EmailsSent:   12,
			EmailsOpened: 4,
		},
	}

	doc := SubscribersCSV(subscribers)
	require.Len(t, doc.Rows, 1)

	row := doc.Rows[0]
	assert.Equal(t, "sub@example.com", row[0])
	assert.Equal(t, "12", row[6])
	assert.Equal(t, "", row[5], "Chưa hủy đăng ký thì cột Unsubscribed At rỗng")
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "contacts-2025-06-15.csv", ExportFilename("contacts", now))
}
