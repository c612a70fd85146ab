package utility

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":                 "hello-world",
		"  Modern Web Development!  ": "modern-web-development",
		"Go 1.23 Release Notes":       "go-1-23-release-notes",
		"already-a-slug":              "already-a-slug",
		"Multiple   Spaces -- Dashes": "multiple-spaces-dashes",
		"":                            "",
	}

	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Errorf("Slugify(%q) = %q, mong đợi %q", input, got, want)
		}
	}
}

func TestEstimateReadTime(t *testing.T) {
	if got := EstimateReadTime(""); got != 1 {
		t.Errorf("Nội dung rỗng phải trả về 1 phút, nhận được %d", got)
	}

	// 200 từ = đúng 1 phút
	words := make([]byte, 0)
	for i := 0; i < 200; i++ {
		words = append(words, []byte("word ")...)
	}
	if got := EstimateReadTime(string(words)); got != 1 {
		t.Errorf("200 từ phải trả về 1 phút, nhận được %d", got)
	}

	// 201 từ = làm tròn lên 2 phút
	if got := EstimateReadTime(string(words) + "extra"); got != 2 {
		t.Errorf("201 từ phải trả về 2 phút, nhận được %d", got)
	}
}
