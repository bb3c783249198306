// Package chatsvc - Test cắt preview theo rune và filter dọn reaction rỗng.
package chatsvc

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTruncatePreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"ngắn hơn giới hạn giữ nguyên", "xin chào", 100, "xin chào"},
		{"đúng giới hạn giữ nguyên", "abcde", 5, "abcde"},
		{"dài hơn giới hạn cắt và thêm dấu ba chấm", "abcdef", 5, "abcde…"},
		{"trim khoảng trắng trước khi đo", "  hello  ", 100, "hello"},
		{"cắt theo rune không vỡ ký tự tiếng Việt", "tiếng Việt có dấu", 9, "tiếng Việ…"},
		{"chuỗi rỗng", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePreview(tt.content, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncatePreview(%q, %d) = %q, muốn %q", tt.content, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestEmptyReactionFilter_GuardsConcurrentAdd(t *testing.T) {
	messageID := primitive.NewObjectID()
	filter := emptyReactionFilter(messageID, "👍")

	if got, ok := filter["_id"].(primitive.ObjectID); !ok || got != messageID {
		t.Errorf("filter phải khớp đúng message, _id = %v", filter["_id"])
	}

	// Điều kiện $size 0 để unset không xóa reaction vừa được thêm đồng thời
	guard, ok := filter["reactions.👍"].(bson.M)
	if !ok {
		t.Fatalf("filter phải có điều kiện trên reactions.👍, có %v", filter["reactions.👍"])
	}
	if size, ok := guard["$size"].(int); !ok || size != 0 {
		t.Errorf("điều kiện unset phải là $size 0, có %v", guard)
	}
}

func TestTruncatePreview_LongContentStaysWithinLimit(t *testing.T) {
	long := strings.Repeat("ký tự ", 100)
	got := TruncatePreview(long, messagePreviewLength)
	runes := []rune(got)
	// maxLen rune nội dung + 1 rune dấu ba chấm
	if len(runes) != messagePreviewLength+1 {
		t.Errorf("preview phải có đúng %d rune, có %d", messagePreviewLength+1, len(runes))
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("preview bị cắt phải kết thúc bằng dấu ba chấm")
	}
}
