// Package aisvc - Test dựng prompt và tham số sinh theo chế độ.
package aisvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/models"
)

func TestConfigForMode(t *testing.T) {
	tests := []struct {
		mode            string
		wantTemperature float64
		wantMaxTokens   int
	}{
		{models.ModeChat, 0.7, 2048},
		{models.ModeResearch, 0.4, 4096},
		{models.ModeDeep, 0.3, 8192},
		{"không tồn tại", 0.7, 2048}, // chế độ lạ rơi về chat
		{"", 0.7, 2048},
	}

	for _, tt := range tests {
		cfg := ConfigForMode(tt.mode)
		assert.Equal(t, tt.wantTemperature, cfg.Temperature, "temperature của mode %q", tt.mode)
		assert.Equal(t, tt.wantMaxTokens, cfg.MaxOutputTokens, "maxOutputTokens của mode %q", tt.mode)
	}
}

func TestBuildPrompt_ModePrefixes(t *testing.T) {
	question := "EB-2 visa requirements?"

	chat := BuildPrompt(question, models.ModeChat, nil)
	if !strings.HasSuffix(chat, "USER: "+question) {
		t.Error("prompt chế độ chat phải kết thúc bằng USER: + câu hỏi")
	}

	research := BuildPrompt(question, models.ModeResearch, nil)
	if !strings.Contains(research, "RESEARCH REQUEST: "+question) {
		t.Error("prompt chế độ research phải chứa RESEARCH REQUEST")
	}

	deep := BuildPrompt(question, models.ModeDeep, nil)
	if !strings.Contains(deep, "DEEP RESEARCH REPORT REQUEST: "+question) {
		t.Error("prompt chế độ deep phải chứa DEEP RESEARCH REPORT REQUEST")
	}

	// Chế độ lạ rơi về system prompt của chat
	unknown := BuildPrompt(question, "banana", nil)
	if !strings.Contains(unknown, "MODE: Chat") {
		t.Error("chế độ lạ phải dùng system prompt của chat")
	}
}

func TestBuildPrompt_HistoryWindow(t *testing.T) {
	// 15 lượt, chỉ 10 lượt cuối được đưa vào ngữ cảnh
	var history []HistoryTurn
	for i := 0; i < 15; i++ {
		history = append(history, HistoryTurn{
			Role:    models.RoleUser,
			Content: "câu hỏi số " + string(rune('a'+i)),
		})
	}

	prompt := BuildPrompt("hỏi tiếp", models.ModeChat, history)
	if strings.Contains(prompt, "câu hỏi số a") {
		t.Error("lượt cũ hơn cửa sổ 10 không được xuất hiện trong prompt")
	}
	if !strings.Contains(prompt, "câu hỏi số "+string(rune('a'+14))) {
		t.Error("lượt gần nhất phải xuất hiện trong prompt")
	}
	if !strings.Contains(prompt, "--- CONVERSATION HISTORY ---") {
		t.Error("có history thì prompt phải có khối ngữ cảnh")
	}
}

func TestBuildPrompt_NoHistoryBlock(t *testing.T) {
	prompt := BuildPrompt("hello", models.ModeChat, nil)
	if strings.Contains(prompt, "--- CONVERSATION HISTORY ---") {
		t.Error("không có history thì không được chèn khối ngữ cảnh")
	}
}

func TestBuildPrompt_AssistantTruncated(t *testing.T) {
	long := strings.Repeat("x", historyAssistantTruncate+100)
	history := []HistoryTurn{
		{Role: models.RoleAssistant, Content: long},
	}

	prompt := BuildPrompt("hỏi tiếp", models.ModeChat, history)
	truncated := "ASSISTANT: " + strings.Repeat("x", historyAssistantTruncate) + "..."
	if !strings.Contains(prompt, truncated) {
		t.Error("câu trả lời assistant trong ngữ cảnh phải bị cắt còn 500 ký tự")
	}
	if strings.Contains(prompt, strings.Repeat("x", historyAssistantTruncate+1)) {
		t.Error("nội dung assistant vượt giới hạn không được giữ nguyên")
	}
}
