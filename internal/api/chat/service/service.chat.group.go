package chatsvc

import (
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
)

// messageGroupGapMillis là khoảng cách tối đa giữa hai message liên tiếp cùng một nhóm.
const messageGroupGapMillis = 300 * 1000

// MessageGroup gom các message liên tiếp của cùng một người gửi để render chung một khối avatar.
type MessageGroup struct {
	UserID      string           `json:"userId"`
	DisplayName string           `json:"displayName"`
	PhotoURL    string           `json:"photoUrl,omitempty"`
	Type        string           `json:"type"`
	StartedAt   int64            `json:"startedAt"`
	Messages    []models.Message `json:"messages"`
}

// GroupMessages gom danh sách message (đã sắp theo createdAt tăng dần) thành các nhóm hiển thị.
// Bắt đầu nhóm mới khi đổi người gửi, khi message là loại system (mỗi message system
// đứng một nhóm riêng), hoặc khi cách message trước quá 5 phút.
func GroupMessages(messages []models.Message) []*MessageGroup {
	groups := []*MessageGroup{}
	var current *MessageGroup
	var lastAt int64

	for _, msg := range messages {
		startNew := current == nil ||
			msg.Type == models.MessageTypeSystem ||
			current.Type == models.MessageTypeSystem ||
			current.UserID != msg.UserID.Hex() ||
			msg.CreatedAt-lastAt > messageGroupGapMillis

		if startNew {
			current = &MessageGroup{
				UserID:      msg.UserID.Hex(),
				DisplayName: msg.DisplayName,
				PhotoURL:    msg.PhotoURL,
				Type:        msg.Type,
				StartedAt:   msg.CreatedAt,
				Messages:    []models.Message{},
			}
			groups = append(groups, current)
		}
		current.Messages = append(current.Messages, msg)
		lastAt = msg.CreatedAt
	}
	return groups
}
