package chatsvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/service"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/database"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/global"
)

// messagePreviewLength là độ dài tối đa của preview tin nhắn denormalized trên channel.
const messagePreviewLength = 100

// MessageService xử lý tin nhắn: gửi, sửa, xóa mềm, reaction, pin, read receipt.
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.Message]
	channelService *ChannelService
}

// NewMessageService tạo MessageService mới.
func NewMessageService(channelService *ChannelService) (*MessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Messages, common.ErrNotFound)
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Message](coll),
		channelService:       channelService,
	}, nil
}

// SendMessage gửi message vào channel và cập nhật summary tin nhắn cuối trên channel.
// Channel đã archive không nhận message mới.
// Summary là ghi thứ hai best-effort: lỗi summary không làm hỏng message đã gửi.
func (s *MessageService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	channel, err := s.channelService.FindOneById(ctx, message.ChannelID)
	if err != nil {
		return nil, err
	}
	if channel.Archived {
		return nil, common.ErrChannelArchived
	}
	if !CanUserReadChannel(&channel, message.UserID) && message.Type != models.MessageTypeSystem {
		return nil, common.ErrNotChannelMember
	}

	if message.Type == "" {
		message.Type = models.MessageTypeText
	}
	if message.Reactions == nil {
		message.Reactions = map[string][]primitive.ObjectID{}
	}
	// Người gửi mặc định đã đọc message của chính mình
	if !message.UserID.IsZero() && !containsID(message.ReadBy, message.UserID) {
		message.ReadBy = append(message.ReadBy, message.UserID)
	}
	message.Pinned = false
	message.Edited = false
	message.Deleted = false

	// Denormalize preview cho tin nhắn được trả lời
	if message.ReplyTo != nil && !message.ReplyTo.MessageID.IsZero() && message.ReplyTo.Preview == "" {
		if target, err := s.FindOneById(ctx, message.ReplyTo.MessageID); err == nil {
			message.ReplyTo.Preview = TruncatePreview(target.Content, messagePreviewLength)
			message.ReplyTo.DisplayName = target.DisplayName
		}
	}

	created, err := s.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}

	_, err = s.channelService.UpdateById(ctx, message.ChannelID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastMessageAt":      created.CreatedAt,
			"lastMessagePreview": TruncatePreview(created.Content, messagePreviewLength),
			"lastMessageBy":      created.DisplayName,
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": message.ChannelID.Hex(),
			"message_id": created.ID.Hex(),
			"error":      err.Error(),
		}).Warn("SendMessage: Không cập nhật được summary tin nhắn cuối của channel")
	}

	return &created, nil
}

// GetMessages trả về message của channel theo thứ tự thời gian tăng dần.
// before > 0 thì chỉ lấy message cũ hơn mốc đó (phân trang lùi về quá khứ).
func (s *MessageService) GetMessages(ctx context.Context, channelID primitive.ObjectID, before int64, limit int64) ([]models.Message, error) {
	filter := bson.M{"channelId": channelID}
	if before > 0 {
		filter["createdAt"] = bson.M{"$lt": before}
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	messages, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	// Query sort desc để limit lấy đúng trang mới nhất, đảo lại cho client render tăng dần
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// EditMessage sửa nội dung message. Chỉ tác giả sửa được, message đã xóa không sửa được.
func (s *MessageService) EditMessage(ctx context.Context, messageID, userID primitive.ObjectID, content string) (*models.Message, error) {
	message, err := s.FindOneById(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.Deleted {
		return nil, common.ErrMessageDeleted
	}
	if message.UserID != userID {
		return nil, common.ErrRoleInsufficient
	}

	updated, err := s.UpdateById(ctx, messageID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content": content,
			"edited":  true,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMessage xóa mềm message: thay content bằng placeholder, nội dung gốc mất vĩnh viễn.
// Document vẫn giữ nguyên vị trí trong lịch sử channel.
func (s *MessageService) DeleteMessage(ctx context.Context, messageID primitive.ObjectID) (*models.Message, error) {
	message, err := s.FindOneById(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.Deleted {
		return &message, nil
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"content": common.MessageDeletedPlaceholder,
			"deleted": true,
		},
		Unset: map[string]interface{}{
			"attachments": "",
			"mentions":    "",
		},
	}
	updated, err := s.UpdateById(ctx, messageID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddReaction thêm reaction của user cho một emoji ($addToSet, bấm lại không nhân đôi).
func (s *MessageService) AddReaction(ctx context.Context, messageID primitive.ObjectID, emoji string, userID primitive.ObjectID) (*models.Message, error) {
	message, err := s.FindOneById(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.Deleted {
		return nil, common.ErrMessageDeleted
	}

	updated, err := s.UpdateById(ctx, messageID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"reactions." + emoji: userID,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveReaction gỡ reaction của user. Emoji không còn ai react thì xóa hẳn key khỏi map
// để client không render emoji rỗng.
func (s *MessageService) RemoveReaction(ctx context.Context, messageID primitive.ObjectID, emoji string, userID primitive.ObjectID) (*models.Message, error) {
	updated, err := s.UpdateById(ctx, messageID, &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"reactions." + emoji: userID,
		},
	})
	if err != nil {
		return nil, err
	}

	if users, ok := updated.Reactions[emoji]; ok && len(users) == 0 {
		// Unset có điều kiện $size 0: reaction vừa được user khác thêm vào
		// giữa hai bước thì filter không khớp và không bị xóa oan
		_, err := s.Collection().UpdateOne(ctx,
			emptyReactionFilter(messageID, emoji),
			bson.M{"$unset": bson.M{"reactions." + emoji: ""}},
		)
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		refreshed, err := s.FindOneById(ctx, messageID)
		if err != nil {
			return nil, err
		}
		return &refreshed, nil
	}
	return &updated, nil
}

// emptyReactionFilter chỉ khớp message khi danh sách reaction của emoji đang rỗng.
func emptyReactionFilter(messageID primitive.ObjectID, emoji string) bson.M {
	return bson.M{
		"_id":                messageID,
		"reactions." + emoji: bson.M{"$size": 0},
	}
}

// MarkRead đánh dấu user đã đọc message ($addToSet readBy).
func (s *MessageService) MarkRead(ctx context.Context, messageID, userID primitive.ObjectID) (*models.Message, error) {
	updated, err := s.UpdateById(ctx, messageID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"readBy": userID,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PinMessage ghim message: set cờ pinned và thêm id vào pinnedMessages của channel.
// Hai ghi chạy trong transaction để cờ và danh sách không lệch nhau;
// MongoDB standalone không hỗ trợ transaction thì fallback ghi tuần tự.
func (s *MessageService) PinMessage(ctx context.Context, messageID primitive.ObjectID) (*models.Message, error) {
	return s.setPinState(ctx, messageID, true)
}

// UnpinMessage bỏ ghim message, gỡ id khỏi pinnedMessages của channel.
func (s *MessageService) UnpinMessage(ctx context.Context, messageID primitive.ObjectID) (*models.Message, error) {
	return s.setPinState(ctx, messageID, false)
}

func (s *MessageService) setPinState(ctx context.Context, messageID primitive.ObjectID, pinned bool) (*models.Message, error) {
	message, err := s.FindOneById(ctx, messageID)
	if err != nil {
		return nil, common.ErrPinTargetMissing
	}
	if message.Deleted {
		return nil, common.ErrMessageDeleted
	}

	channelUpdate := bson.M{"$addToSet": bson.M{"pinnedMessages": message.ID}}
	if !pinned {
		channelUpdate = bson.M{"$pull": bson.M{"pinnedMessages": message.ID}}
	}

	_, err = database.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := s.Collection().UpdateOne(sessCtx, bson.M{"_id": message.ID}, bson.M{"$set": bson.M{"pinned": pinned}}); err != nil {
			return nil, err
		}
		if _, err := s.channelService.Collection().UpdateOne(sessCtx, bson.M{"_id": message.ChannelID}, channelUpdate); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"message_id": messageID.Hex(),
			"error":      err.Error(),
		}).Warn("setPinState: Transaction thất bại, fallback ghi tuần tự")

		if _, err := s.UpdateById(ctx, messageID, &basesvc.UpdateData{
			Set: map[string]interface{}{"pinned": pinned},
		}); err != nil {
			return nil, err
		}
		channelData := &basesvc.UpdateData{AddToSet: map[string]interface{}{"pinnedMessages": message.ID}}
		if !pinned {
			channelData = &basesvc.UpdateData{Pull: map[string]interface{}{"pinnedMessages": message.ID}}
		}
		if _, err := s.channelService.UpdateById(ctx, message.ChannelID, channelData); err != nil {
			return nil, err
		}
	}

	updated, err := s.FindOneById(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// TruncatePreview cắt nội dung làm preview, tính theo rune để không vỡ ký tự tiếng Việt.
func TruncatePreview(content string, maxLen int) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	return string(runes[:maxLen]) + "…"
}
