// Package aisvc - Test đặt tiêu đề tự động cho hội thoại.
package aisvc

import (
	"strings"
	"testing"
)

func TestAutoTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"câu ngắn giữ nguyên", "Hỏi về visa EB-2", "Hỏi về visa EB-2"},
		{"xuống dòng thay bằng khoảng trắng", "dòng một\ndòng hai", "dòng một dòng hai"},
		{"trim khoảng trắng", "   hello   ", "hello"},
		{"chuỗi rỗng", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutoTitle(tt.input)
			if got != tt.want {
				t.Errorf("AutoTitle(%q) = %q, muốn %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAutoTitle_LongMessageTruncated(t *testing.T) {
	long := strings.Repeat("a", autoTitleLength+50)
	got := AutoTitle(long)
	want := strings.Repeat("a", autoTitleLength) + "..."
	if got != want {
		t.Errorf("tiêu đề dài phải cắt còn %d ký tự + dấu ba chấm, có %q", autoTitleLength, got)
	}
}

func TestAutoTitle_TrimBeforeEllipsis(t *testing.T) {
	// Ký tự thứ 60 là khoảng trắng thì phải trim trước khi nối "..."
	long := strings.Repeat("b", autoTitleLength-1) + " tail tail tail"
	got := AutoTitle(long)
	if strings.Contains(got, " ...") {
		t.Errorf("không được có khoảng trắng trước dấu ba chấm: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("tiêu đề bị cắt phải kết thúc bằng ..., có %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("tiếng Việt", 5); got != "tiếng" {
		t.Errorf("truncateRunes phải cắt theo rune, có %q", got)
	}
	if got := truncateRunes("ngắn", 100); got != "ngắn" {
		t.Errorf("chuỗi ngắn hơn giới hạn phải giữ nguyên, có %q", got)
	}
}
