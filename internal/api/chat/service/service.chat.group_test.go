// Package chatsvc - Test gom nhóm message hiển thị.
package chatsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
)

func msgAt(userID primitive.ObjectID, name, msgType string, createdAt int64) models.Message {
	return models.Message{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		DisplayName: name,
		Type:        msgType,
		CreatedAt:   createdAt,
	}
}

func TestGroupMessages(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	tests := []struct {
		name       string
		messages   []models.Message
		wantGroups int
		wantSizes  []int
	}{
		{
			name:       "danh sách rỗng trả về 0 nhóm",
			messages:   []models.Message{},
			wantGroups: 0,
		},
		{
			name: "cùng người gửi trong 5 phút gom một nhóm",
			messages: []models.Message{
				msgAt(alice, "Alice", models.MessageTypeText, 1000),
				msgAt(alice, "Alice", models.MessageTypeText, 2000),
				msgAt(alice, "Alice", models.MessageTypeText, 3000),
			},
			wantGroups: 1,
			wantSizes:  []int{3},
		},
		{
			name: "đổi người gửi bắt đầu nhóm mới",
			messages: []models.Message{
				msgAt(alice, "Alice", models.MessageTypeText, 1000),
				msgAt(bob, "Bob", models.MessageTypeText, 2000),
				msgAt(alice, "Alice", models.MessageTypeText, 3000),
			},
			wantGroups: 3,
			wantSizes:  []int{1, 1, 1},
		},
		{
			name: "cách nhau quá 5 phút bắt đầu nhóm mới",
			messages: []models.Message{
				msgAt(alice, "Alice", models.MessageTypeText, 1000),
				msgAt(alice, "Alice", models.MessageTypeText, 1000+messageGroupGapMillis+1),
			},
			wantGroups: 2,
			wantSizes:  []int{1, 1},
		},
		{
			name: "cách nhau đúng 5 phút vẫn chung nhóm",
			messages: []models.Message{
				msgAt(alice, "Alice", models.MessageTypeText, 1000),
				msgAt(alice, "Alice", models.MessageTypeText, 1000+messageGroupGapMillis),
			},
			wantGroups: 1,
			wantSizes:  []int{2},
		},
		{
			name: "message system đứng nhóm riêng dù cùng người gửi",
			messages: []models.Message{
				msgAt(alice, "Alice", models.MessageTypeText, 1000),
				msgAt(alice, "Alice", models.MessageTypeSystem, 2000),
				msgAt(alice, "Alice", models.MessageTypeText, 3000),
			},
			wantGroups: 3,
			wantSizes:  []int{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupMessages(tt.messages)
			assert.Len(t, groups, tt.wantGroups, "số nhóm không khớp")
			for i, size := range tt.wantSizes {
				assert.Len(t, groups[i].Messages, size, "số message trong nhóm %d không khớp", i)
			}
		})
	}
}

func TestGroupMessages_GroupMetadata(t *testing.T) {
	alice := primitive.NewObjectID()
	messages := []models.Message{
		msgAt(alice, "Alice", models.MessageTypeText, 1000),
		msgAt(alice, "Alice", models.MessageTypeText, 2000),
	}

	groups := GroupMessages(messages)
	if len(groups) != 1 {
		t.Fatalf("muốn 1 nhóm, có %d", len(groups))
	}
	g := groups[0]
	if g.UserID != alice.Hex() {
		t.Errorf("UserID của nhóm phải là hex của người gửi, có %s", g.UserID)
	}
	if g.StartedAt != 1000 {
		t.Errorf("StartedAt phải lấy từ message đầu nhóm, có %d", g.StartedAt)
	}
	if g.DisplayName != "Alice" {
		t.Errorf("DisplayName không khớp, có %s", g.DisplayName)
	}
}
