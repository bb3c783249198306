// Package models - model kênh chat (Channel) thuộc domain chat.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại channel.
const (
	ChannelTypePublic  = "public"
	ChannelTypePrivate = "private"
	ChannelTypeDM      = "dm"
)

// Channel định nghĩa một kênh chat (public, private hoặc direct-message).
//
// Invariant:
//   - Channel type=dm có đúng 2 thành viên khác nhau và duy nhất theo cặp (dmKey unique sparse).
//   - admins là tập con của members.
//   - pinnedMessages giữ id các message đang được ghim, đồng bộ với cờ pinned trên message.
//
// DMKey là khóa dedup cho DM: "min(userA,userB)_max(userA,userB)" theo hex, rỗng với channel thường.
// Upsert theo dmKey loại bỏ race hai user cùng bấm "nhắn tin" một lúc.
type Channel struct {
	ID                 primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	OrganizationID     string               `json:"organizationId" bson:"organizationId" index:"single:1"`
	Name               string               `json:"name" bson:"name"`
	Description        string               `json:"description,omitempty" bson:"description,omitempty"`
	Type               string               `json:"type" bson:"type" index:"single:1" default:"public"`
	TeamID             primitive.ObjectID   `json:"teamId,omitempty" bson:"teamId,omitempty"`
	CreatedBy          primitive.ObjectID   `json:"createdBy" bson:"createdBy" index:"single:1"`
	CreatedByName      string               `json:"createdByName,omitempty" bson:"createdByName,omitempty"`
	Members            []primitive.ObjectID `json:"members" bson:"members" index:"single:1"`
	Admins             []primitive.ObjectID `json:"admins" bson:"admins"`
	PinnedMessages     []primitive.ObjectID `json:"pinnedMessages" bson:"pinnedMessages"`
	Archived           bool                 `json:"archived" bson:"archived"`
	DMKey              string               `json:"dmKey,omitempty" bson:"dmKey,omitempty" index:"unique,sparse"`
	LastMessageAt      int64                `json:"lastMessageAt,omitempty" bson:"lastMessageAt,omitempty"`
	LastMessagePreview string               `json:"lastMessagePreview,omitempty" bson:"lastMessagePreview,omitempty"`
	LastMessageBy      string               `json:"lastMessageBy,omitempty" bson:"lastMessageBy,omitempty"`
	CreatedAt          int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64                `json:"updatedAt" bson:"updatedAt"`
}

// BuildDMKey tạo khóa dedup cho DM từ cặp user id, không phụ thuộc thứ tự tham số.
func BuildDMKey(userA, userB primitive.ObjectID) string {
	a, b := userA.Hex(), userB.Hex()
	if a > b {
		a, b = b, a
	}
	return a + "_" + b
}
