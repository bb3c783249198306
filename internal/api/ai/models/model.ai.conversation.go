// Package models - model hội thoại AI assistant.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các chế độ trả lời của assistant.
const (
	ModeChat     = "chat"
	ModeResearch = "research"
	ModeDeep     = "deep"
)

// Các vai trò trong hội thoại.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// AIConversation là một phiên hội thoại với assistant của một user.
// messageCount và lastMessage là metadata denormalized, cập nhật mỗi lần thêm message.
type AIConversation struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID string             `json:"organizationId" bson:"organizationId" index:"single:1"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`
	UserName       string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Mode           string             `json:"mode" bson:"mode" default:"chat"`
	MessageCount   int64              `json:"messageCount" bson:"messageCount"`
	LastMessage    string             `json:"lastMessage" bson:"lastMessage"`
	Starred        bool               `json:"starred" bson:"starred"`
	Archived       bool               `json:"archived" bson:"archived"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt" index:"single:-1"`
}

// AIMessage là một lượt hỏi/đáp trong hội thoại.
type AIMessage struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversationId" bson:"conversationId" index:"single:1"`
	Role           string             `json:"role" bson:"role"`
	Content        string             `json:"content" bson:"content"`
	Mode           string             `json:"mode" bson:"mode"`
	Tokens         int64              `json:"tokens" bson:"tokens"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
