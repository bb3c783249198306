// Package aisvc - service cho domain ai: proxy Gemini và kho hội thoại.
package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
)

// historyContextSize là số lượt hội thoại gần nhất đưa vào prompt làm ngữ cảnh.
const historyContextSize = 10

// historyAssistantTruncate là độ dài tối đa của câu trả lời assistant trong phần ngữ cảnh.
const historyAssistantTruncate = 500

const systemBase = `You are Solis AI, the intelligent assistant for the Law Office of Manuel Solis (Solis Center).
You are a highly capable AI assistant specialized in law office operations, immigration law, legal research, business management, and general knowledge.
You work for a law firm that handles immigration cases primarily. The team includes Marketing, Openers (lead intake), Closers (case conversion), and Dirección (management).

IMPORTANT RULES:
- Always respond in the same language the user writes in (Spanish or English)
- Be thorough, detailed, and professional
- Use markdown formatting for better readability (headers, bold, lists, tables when appropriate)
- When discussing legal topics, note this is general information, not legal advice
- Be helpful, precise, and give complete answers
- If asked about something you don't know, say so clearly
`

// modePrompts là system prompt theo từng chế độ trả lời.
var modePrompts = map[string]string{
	models.ModeChat: systemBase + `
MODE: Chat — Quick, conversational responses. Be concise but complete. Answer directly.
Keep responses focused and practical. Use short paragraphs.`,

	models.ModeResearch: systemBase + `
MODE: Research — You are in RESEARCH MODE. The user wants you to investigate a topic thoroughly.
Your task is to provide a comprehensive, well-researched response as if you had access to the latest information.

RESEARCH FORMAT:
- Start with a brief overview/summary
- Provide detailed findings organized by subtopic
- Include relevant data points, statistics, or examples
- Cite sources conceptually (e.g., "According to USCIS guidelines...", "Per the Immigration and Nationality Act...")
- End with key takeaways or recommendations
- Use headers (##), bullet points, bold for important terms
- Be VERY thorough — aim for 500-1500 words
- Include practical implications for a law office context when relevant`,

	models.ModeDeep: systemBase + `
MODE: Deep Search — You are generating a COMPREHENSIVE RESEARCH REPORT. This should be publication-quality.

REPORT STRUCTURE (always follow this):
# [Report Title]

## Executive Summary
Brief 2-3 paragraph overview of findings.

## Table of Contents
List all sections.

## 1. Introduction / Background
Context and why this topic matters.

## 2. Detailed Analysis
The core research broken into logical subsections with ### headers.
Include data, examples, case studies, statistics.
Cover multiple perspectives.

## 3. Key Findings
Numbered list of the most important discoveries.

## 4. Implications & Impact
What this means for the law office / legal industry / relevant stakeholders.

## 5. Recommendations
Specific, actionable recommendations based on findings.

## 6. Conclusion
Summary and forward-looking statement.

## Sources & References
List conceptual sources (legal codes, government agencies, industry reports).

---

GUIDELINES:
- This should be 1500-3000+ words
- Be EXHAUSTIVE — cover every angle
- Use tables for comparing data
- Use > blockquotes for important callouts
- Include relevant legal citations
- Make it suitable for printing as a professional report
- Write as if presenting to the managing partner of the firm`,
}

// GenerationConfig là tham số sinh câu trả lời của Gemini theo chế độ.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// modeConfigs là tham số sinh theo từng chế độ, chế độ lạ rơi về chat.
var modeConfigs = map[string]GenerationConfig{
	models.ModeChat:     {Temperature: 0.7, TopP: 0.9, MaxOutputTokens: 2048},
	models.ModeResearch: {Temperature: 0.4, TopP: 0.95, MaxOutputTokens: 4096},
	models.ModeDeep:     {Temperature: 0.3, TopP: 0.95, MaxOutputTokens: 8192},
}

// ConfigForMode trả về tham số sinh cho một chế độ.
func ConfigForMode(mode string) GenerationConfig {
	if config, ok := modeConfigs[mode]; ok {
		return config
	}
	return modeConfigs[models.ModeChat]
}

// HistoryTurn là một lượt hội thoại đưa vào ngữ cảnh prompt.
type HistoryTurn struct {
	Role    string
	Content string
}

// AskResult là câu trả lời của assistant.
type AskResult struct {
	Answer string `json:"answer"`
	Mode   string `json:"mode"`
	Tokens int64  `json:"tokens"`
}

// GeminiClient gọi Gemini generateContent API qua HTTP.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGeminiClient tạo GeminiClient mới.
func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		// Chế độ deep sinh báo cáo dài, timeout phải đủ rộng
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
	}
}

// BuildPrompt ghép system prompt, ngữ cảnh hội thoại và câu hỏi thành prompt hoàn chỉnh.
// Chỉ lấy tối đa 10 lượt gần nhất, câu trả lời assistant bị cắt còn 500 ký tự.
func BuildPrompt(question, mode string, history []HistoryTurn) string {
	systemPrompt, ok := modePrompts[mode]
	if !ok {
		systemPrompt = modePrompts[models.ModeChat]
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	recent := history
	if len(recent) > historyContextSize {
		recent = recent[len(recent)-historyContextSize:]
	}
	if len(recent) > 0 {
		b.WriteString("--- CONVERSATION HISTORY ---\n")
		for _, turn := range recent {
			if turn.Role == models.RoleUser {
				b.WriteString("USER: " + turn.Content + "\n")
			} else {
				content := turn.Content
				if len([]rune(content)) > historyAssistantTruncate {
					content = string([]rune(content)[:historyAssistantTruncate])
				}
				b.WriteString("ASSISTANT: " + content + "...\n")
			}
		}
		b.WriteString("--- END HISTORY ---\n\n")
	}

	switch mode {
	case models.ModeResearch:
		b.WriteString("RESEARCH REQUEST: " + question + "\n\nPlease provide a thorough, well-structured research response:")
	case models.ModeDeep:
		b.WriteString("DEEP RESEARCH REPORT REQUEST: " + question + "\n\nGenerate a comprehensive, publication-quality research report following the structure specified above:")
	default:
		b.WriteString("USER: " + question)
	}
	return b.String()
}

// geminiPart, geminiContent, geminiRequest là body của generateContent API.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// geminiResponse là phần cần đọc từ response của generateContent API.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Ask gửi câu hỏi tới Gemini và trả về câu trả lời.
// GEMINI_API_KEY chưa cấu hình là lỗi runtime 500, không phải lỗi khởi động.
func (g *GeminiClient) Ask(ctx context.Context, question, mode string, history []HistoryTurn) (*AskResult, error) {
	log := logger.GetAppLogger()

	apiKey := global.ServerConfig.GeminiAPIKey
	if apiKey == "" {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Gemini API key chưa được cấu hình. Thêm GEMINI_API_KEY vào file env.",
			common.StatusInternalServerError,
			nil,
		)
	}

	if mode == "" {
		mode = models.ModeChat
	}
	if _, ok := modeConfigs[mode]; !ok {
		mode = models.ModeChat
	}

	prompt := BuildPrompt(question, mode, history)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: ConfigForMode(mode),
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, global.ServerConfig.GeminiModel, apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(logrus.Fields{
		"mode":          mode,
		"model":         global.ServerConfig.GeminiModel,
		"prompt_length": len(prompt),
	}).Info("🤖 [AI] Gọi Gemini generateContent")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("🤖 [AI] Lỗi khi gọi Gemini API")
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không gọi được Gemini API: "+err.Error(),
			common.StatusInternalServerError,
			nil,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Response của Gemini không đúng định dạng",
			common.StatusInternalServerError,
			nil,
		)
	}
	if parsed.Error != nil {
		log.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"code":    parsed.Error.Code,
			"message": parsed.Error.Message,
		}).Error("🤖 [AI] Gemini API trả lỗi")
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Gemini API trả lỗi: "+parsed.Error.Message,
			common.StatusInternalServerError,
			nil,
		)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			"Gemini không trả về câu trả lời nào",
			common.StatusInternalServerError,
			nil,
		)
	}

	answer := parsed.Candidates[0].Content.Parts[0].Text
	return &AskResult{
		Answer: answer,
		Mode:   mode,
		// Xấp xỉ theo độ dài text, API không trả usage chi tiết ở surface này
		Tokens: int64(len(answer)),
	}, nil
}
