// Package aidto - DTO cho domain ai.
package aidto

// HistoryEntry là một lượt hội thoại client gửi kèm làm ngữ cảnh.
type HistoryEntry struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// AskInput đầu vào hỏi assistant.
type AskInput struct {
	Question string         `json:"question" validate:"required" maxLength:"20000"`
	Mode     string         `json:"mode,omitempty" validate:"omitempty,oneof=chat research deep"`
	History  []HistoryEntry `json:"history,omitempty"`
}

// ConversationCreateInput đầu vào tạo hội thoại mới.
type ConversationCreateInput struct {
	Title string `json:"title,omitempty" maxLength:"200"`
	Mode  string `json:"mode,omitempty" validate:"omitempty,oneof=chat research deep"`
}

// ConversationUpdateInput đầu vào đổi tên hội thoại.
type ConversationUpdateInput struct {
	Title string `json:"title,omitempty" maxLength:"200"`
}

// MessageAddInput đầu vào ghi một lượt hỏi/đáp vào hội thoại.
type MessageAddInput struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
	Mode    string `json:"mode,omitempty" validate:"omitempty,oneof=chat research deep"`
	Tokens  int64  `json:"tokens,omitempty"`
}
