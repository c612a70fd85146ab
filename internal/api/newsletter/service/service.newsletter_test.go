package newslettersvc

import (
	"math"
	"testing"

	newslettermodels "elite_devs/internal/api/newsletter/models"
)

func TestEngagementRate(t *testing.T) {
	cases := []struct {
		name    string
		sent    int64
		opened  int64
		clicked int64
		want    float64
	}{
		{name: "chưa gửi email nào", sent: 0, opened: 0, clicked: 0, want: 0},
		{name: "sent âm không được chia", sent: -1, opened: 5, clicked: 5, want: 0},
		{name: "tỷ lệ bình thường", sent: 100, opened: 30, clicked: 10, want: 0.4},
		{name: "tương tác vượt 100%", sent: 10, opened: 10, clicked: 5, want: 1.5},
	}

	for _, tc := range cases {
		got := EngagementRate(tc.sent, tc.opened, tc.clicked)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: EngagementRate(%d, %d, %d) = %v, mong đợi %v",
				tc.name, tc.sent, tc.opened, tc.clicked, got, tc.want)
		}
	}
}

func TestActiveFilter(t *testing.T) {
	all := activeFilter("")
	if all["status"] != newslettermodels.SubscriberStatusActive {
		t.Errorf("Filter phải giới hạn status active, nhận được %v", all["status"])
	}
	if _, ok := all["preferences.topics"]; ok {
		t.Error("Topic rỗng không được thêm điều kiện preferences.topics")
	}

	byTopic := activeFilter("golang")
	if byTopic["preferences.topics"] != "golang" {
		t.Errorf("Filter theo topic phải khớp preferences.topics, nhận được %v", byTopic["preferences.topics"])
	}
	if byTopic["status"] != newslettermodels.SubscriberStatusActive {
		t.Error("Filter theo topic vẫn phải giới hạn status active")
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  Foo@Example.COM ": "foo@example.com",
		"bar@example.com":    "bar@example.com",
		"\tBAZ@ex.io\n":      "baz@ex.io",
	}

	for input, want := range cases {
		if got := NormalizeEmail(input); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, mong đợi %q", input, got, want)
		}
	}
}
