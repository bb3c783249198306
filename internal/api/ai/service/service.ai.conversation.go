package aisvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/models"
	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// lastMessagePreviewLength là độ dài preview tin nhắn cuối trên metadata hội thoại.
const lastMessagePreviewLength = 100

// autoTitleLength là độ dài tối đa của tiêu đề tự sinh từ câu hỏi đầu tiên.
const autoTitleLength = 60

// AIConversationService quản lý hội thoại AI và message bên trong.
type AIConversationService struct {
	*basesvc.BaseServiceMongoImpl[models.AIConversation]
	messageService *basesvc.BaseServiceMongoImpl[models.AIMessage]
}

// NewAIConversationService tạo AIConversationService mới.
func NewAIConversationService() (*AIConversationService, error) {
	convColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AIConversations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AIConversations, common.ErrNotFound)
	}
	msgColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AIMessages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.AIMessages, common.ErrNotFound)
	}
	return &AIConversationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AIConversation](convColl),
		messageService:       basesvc.NewBaseServiceMongo[models.AIMessage](msgColl),
	}, nil
}

// ListForUser trả về hội thoại của user: starred trước, trong mỗi nhóm mới nhất lên đầu.
func (s *AIConversationService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.AIConversation, error) {
	filter := bson.M{"userId": userID, "archived": false}
	opts := mongoopts.Find().SetSort(bson.D{
		{Key: "starred", Value: -1},
		{Key: "updatedAt", Value: -1},
	})
	conversations, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if conversations == nil {
		conversations = []models.AIConversation{}
	}
	return conversations, nil
}

// CreateConversation tạo hội thoại mới cho user.
func (s *AIConversationService) CreateConversation(ctx context.Context, userID primitive.ObjectID, userName, title, mode string) (*models.AIConversation, error) {
	if title == "" {
		title = "Hội thoại mới"
	}
	conversation := models.AIConversation{
		OrganizationID: global.ServerConfig.DefaultOrgID,
		UserID:         userID,
		UserName:       userName,
		Title:          title,
		Mode:           mode,
		MessageCount:   0,
		LastMessage:    "",
	}
	created, err := s.InsertOne(ctx, conversation)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Rename đổi tên hội thoại.
func (s *AIConversationService) Rename(ctx context.Context, id primitive.ObjectID, title string) (*models.AIConversation, error) {
	conversation, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"title": title},
	})
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Star đánh dấu/bỏ đánh dấu sao hội thoại.
func (s *AIConversationService) Star(ctx context.Context, id primitive.ObjectID, starred bool) (*models.AIConversation, error) {
	conversation, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"starred": starred},
	})
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetMessages trả về message của hội thoại theo thứ tự thời gian tăng dần.
func (s *AIConversationService) GetMessages(ctx context.Context, conversationID primitive.ObjectID) ([]models.AIMessage, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	messages, err := s.messageService.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.AIMessage{}
	}
	return messages, nil
}

// AddMessage ghi một lượt hỏi/đáp và cập nhật metadata hội thoại.
// Message user đầu tiên tự sinh tiêu đề cho hội thoại từ nội dung câu hỏi.
func (s *AIConversationService) AddMessage(ctx context.Context, conversationID primitive.ObjectID, role, content, mode string, tokens int64) (*models.AIMessage, error) {
	conversation, err := s.FindOneById(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	message := models.AIMessage{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Mode:           mode,
		Tokens:         tokens,
	}
	created, err := s.messageService.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{
		"messageCount": conversation.MessageCount + 1,
		"lastMessage":  truncateRunes(content, lastMessagePreviewLength),
	}
	if role == models.RoleUser && conversation.MessageCount == 0 {
		set["title"] = AutoTitle(content)
	}
	if _, err := s.UpdateById(ctx, conversationID, &basesvc.UpdateData{Set: set}); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCascade xóa hội thoại cùng toàn bộ message bên trong.
// Xóa message trước để lỗi giữa chừng không để message mồ côi không truy cập được.
func (s *AIConversationService) DeleteCascade(ctx context.Context, conversationID primitive.ObjectID) error {
	if _, err := s.messageService.Collection().DeleteMany(ctx, bson.M{"conversationId": conversationID}); err != nil {
		return common.ConvertMongoError(err)
	}
	return s.DeleteById(ctx, conversationID)
}

// AutoTitle sinh tiêu đề hội thoại từ câu hỏi đầu tiên: gộp xuống một dòng,
// cắt còn 60 ký tự, câu dài hơn được nối "...".
func AutoTitle(firstMessage string) string {
	title := strings.ReplaceAll(firstMessage, "\n", " ")
	title = strings.TrimSpace(title)
	runes := []rune(title)
	if len(runes) > autoTitleLength {
		return strings.TrimSpace(string(runes[:autoTitleLength])) + "..."
	}
	return title
}

func truncateRunes(content string, maxLen int) string {
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen])
}
