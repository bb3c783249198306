// Package models - model tin nhắn (Message) thuộc domain chat.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại message.
const (
	MessageTypeText   = "text"
	MessageTypeSystem = "system"
	MessageTypeFile   = "file"
)

// ReplyRef tham chiếu tin nhắn được trả lời, kèm preview denormalized để render không cần fetch thêm.
type ReplyRef struct {
	MessageID   primitive.ObjectID `json:"messageId" bson:"messageId"`
	Preview     string             `json:"preview" bson:"preview"`
	DisplayName string             `json:"displayName" bson:"displayName"`
}

// Attachment file đính kèm của message.
type Attachment struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
	Size int64  `json:"size,omitempty" bson:"size,omitempty"`
	Mime string `json:"mime,omitempty" bson:"mime,omitempty"`
}

// Message định nghĩa một tin nhắn trong channel.
//
// Invariant:
//   - deleted=true thì content là placeholder cố định, nội dung gốc không khôi phục được.
//   - pinned=true thì id của message nằm trong pinnedMessages của channel cha (cập nhật trong transaction).
//   - reactions: map emoji -> tập user id, toggle bằng $addToSet/$pull, tập rỗng bị xóa khỏi map.
type Message struct {
	ID          primitive.ObjectID              `json:"id,omitempty" bson:"_id,omitempty"`
	ChannelID   primitive.ObjectID              `json:"channelId" bson:"channelId" index:"compound:channel_created"`
	Content     string                          `json:"content" bson:"content"`
	UserID      primitive.ObjectID              `json:"userId" bson:"userId" index:"single:1"`
	DisplayName string                          `json:"displayName" bson:"displayName"`
	PhotoURL    string                          `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Type        string                          `json:"type" bson:"type" default:"text"`
	ReplyTo     *ReplyRef                       `json:"replyTo,omitempty" bson:"replyTo,omitempty"`
	Reactions   map[string][]primitive.ObjectID `json:"reactions" bson:"reactions"`
	Pinned      bool                            `json:"pinned" bson:"pinned"`
	Edited      bool                            `json:"edited" bson:"edited"`
	Deleted     bool                            `json:"deleted" bson:"deleted"`
	Mentions    []primitive.ObjectID            `json:"mentions,omitempty" bson:"mentions,omitempty"`
	Attachments []Attachment                    `json:"attachments,omitempty" bson:"attachments,omitempty"`
	ReadBy      []primitive.ObjectID            `json:"readBy" bson:"readBy"`
	CreatedAt   int64                           `json:"createdAt" bson:"createdAt" index:"compound:channel_created"`
	UpdatedAt   int64                           `json:"updatedAt" bson:"updatedAt"`
}
