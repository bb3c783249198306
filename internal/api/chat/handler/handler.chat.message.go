package chathdl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/auth/models"
	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	chatdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	chatsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// streamKeepAliveInterval là khoảng gửi comment keepalive để proxy không cắt kết nối SSE.
const streamKeepAliveInterval = 25 * time.Second

// streamSnapshotLimit là cửa sổ message mới nhất gửi trong mỗi snapshot của stream.
const streamSnapshotLimit = 200

// streamSnapshotTimeout chặn một lần fetch snapshot treo quá lâu làm nghẽn stream.
const streamSnapshotTimeout = 10 * time.Second

// MessageHandler xử lý các request về tin nhắn trong channel.
type MessageHandler struct {
	*basehdl.BaseHandler[models.Message, chatdto.MessageSendInput, chatdto.MessageEditInput]
	messageService *chatsvc.MessageService
	channelService *chatsvc.ChannelService
}

// NewMessageHandler tạo instance mới của MessageHandler.
func NewMessageHandler(messageService *chatsvc.MessageService, channelService *chatsvc.ChannelService) *MessageHandler {
	baseHandler := basehdl.NewBaseHandler[models.Message, chatdto.MessageSendInput, chatdto.MessageEditInput](messageService)
	return &MessageHandler{
		BaseHandler:    baseHandler,
		messageService: messageService,
		channelService: channelService,
	}
}

// requireChannelAccess kiểm tra user đọc được channel trong path param :id.
func (h *MessageHandler) requireChannelAccess(c fiber.Ctx, userID primitive.ObjectID) (*models.Channel, error) {
	channelID := utility.String2ObjectID(c.Params("id"))
	if channelID.IsZero() {
		return nil, common.ErrInvalidInput
	}
	channel, err := h.channelService.FindOneById(c.Context(), channelID)
	if err != nil {
		return nil, err
	}
	if !chatsvc.CanUserReadChannel(&channel, userID) {
		return nil, common.ErrNotChannelMember
	}
	return &channel, nil
}

// HandleSendMessage gửi message mới vào channel :id.
func (h *MessageHandler) HandleSendMessage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		session, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channel, err := h.requireChannelAccess(c, userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input chatdto.MessageSendInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		message := models.Message{
			ChannelID:   channel.ID,
			Content:     input.Content,
			Type:        input.Type,
			UserID:      userID,
			DisplayName: session.DisplayName,
		}
		if user, ok := c.Locals("user").(authmodels.User); ok {
			message.PhotoURL = user.AvatarURL
		}
		if input.ReplyTo != "" {
			replyID := utility.String2ObjectID(input.ReplyTo)
			if replyID.IsZero() {
				h.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}
			message.ReplyTo = &models.ReplyRef{MessageID: replyID}
		}
		for _, m := range input.Mentions {
			if id := utility.String2ObjectID(m); !id.IsZero() {
				message.Mentions = append(message.Mentions, id)
			}
		}
		for _, a := range input.Attachments {
			message.Attachments = append(message.Attachments, models.Attachment{
				Name: a.Name,
				URL:  a.URL,
				Size: a.Size,
				Mime: a.Mime,
			})
		}

		created, err := h.messageService.SendMessage(c.Context(), message)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleGetMessages trả về lịch sử message của channel :id.
// Query: before (mốc createdAt, phân trang lùi), limit, grouped=true để gom nhóm hiển thị.
func (h *MessageHandler) HandleGetMessages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channel, err := h.requireChannelAccess(c, userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, _ := strconv.ParseInt(c.Query("before", "0"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		if limit <= 0 || limit > 200 {
			limit = 50
		}

		messages, err := h.messageService.GetMessages(c.Context(), channel.ID, before, limit)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if c.Query("grouped") == "true" {
			h.HandleResponse(c, chatsvc.GroupMessages(messages), nil)
			return nil
		}
		h.HandleResponse(c, messages, nil)
		return nil
	})
}

// messageAction parse message id từ path param :messageId rồi gọi action.
func (h *MessageHandler) messageAction(c fiber.Ctx, action func(messageID, userID primitive.ObjectID) (interface{}, error)) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		messageID := utility.String2ObjectID(c.Params("messageId"))
		if messageID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		result, err := action(messageID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleEditMessage sửa nội dung message, chỉ tác giả sửa được.
func (h *MessageHandler) HandleEditMessage(c fiber.Ctx) error {
	var input chatdto.MessageEditInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidFormat)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.EditMessage(c.Context(), messageID, userID, input.Content)
	})
}

// HandleDeleteMessage xóa mềm message. Tác giả hoặc người quản trị channel xóa được.
func (h *MessageHandler) HandleDeleteMessage(c fiber.Ctx) error {
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		message, err := h.messageService.FindOneById(c.Context(), messageID)
		if err != nil {
			return nil, err
		}
		if message.UserID != userID {
			channel, err := h.channelService.FindOneById(c.Context(), message.ChannelID)
			if err != nil {
				return nil, err
			}
			if !canManageChannel(c, &channel, userID) {
				return nil, common.ErrRoleInsufficient
			}
		}
		deleted, err := h.messageService.DeleteMessage(c.Context(), messageID)
		if err == nil {
			logger.LogChat("message_delete", message.ChannelID.Hex(), c, map[string]interface{}{"message_id": messageID.Hex()})
		}
		return deleted, err
	})
}

// HandleAddReaction thêm reaction của user hiện tại cho message.
func (h *MessageHandler) HandleAddReaction(c fiber.Ctx) error {
	var input chatdto.ReactionInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidFormat)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.AddReaction(c.Context(), messageID, input.Emoji, userID)
	})
}

// HandleRemoveReaction gỡ reaction của user hiện tại.
func (h *MessageHandler) HandleRemoveReaction(c fiber.Ctx) error {
	var input chatdto.ReactionInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidFormat)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.RemoveReaction(c.Context(), messageID, input.Emoji, userID)
	})
}

// HandlePinMessage ghim message lên channel.
func (h *MessageHandler) HandlePinMessage(c fiber.Ctx) error {
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.PinMessage(c.Context(), messageID)
	})
}

// HandleUnpinMessage bỏ ghim message.
func (h *MessageHandler) HandleUnpinMessage(c fiber.Ctx) error {
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.UnpinMessage(c.Context(), messageID)
	})
}

// HandleMarkRead đánh dấu user hiện tại đã đọc message.
func (h *MessageHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.messageAction(c, func(messageID, userID primitive.ObjectID) (interface{}, error) {
		return h.messageService.MarkRead(c.Context(), messageID, userID)
	})
}

// HandleStream mở kết nối SSE nhận sự kiện message realtime của channel :id.
// Mỗi sự kiện là một dòng "data: <json>", kèm comment keepalive định kỳ.
func (h *MessageHandler) HandleStream(c fiber.Ctx) error {
	_, userID, err := requireSession(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	channel, err := h.requireChannelAccess(c, userID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	eventsCh, unsubscribe := chatsvc.GetHub().Subscribe(channel.ID)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	channelID := channel.ID

	c.RequestCtx().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsubscribe()

		ticker := time.NewTicker(streamKeepAliveInterval)
		defer ticker.Stop()

		// Báo client kết nối thành công trước khi có snapshot đầu tiên
		fmt.Fprintf(w, "event: connected\ndata: {\"channelId\":%q}\n\n", channelID.Hex())
		if err := w.Flush(); err != nil {
			return
		}

		// Snapshot hiện tại ngay khi kết nối, sau đó mỗi thay đổi đẩy lại snapshot mới
		if !h.writeSnapshot(w, channelID, "init") {
			return
		}

		for {
			select {
			case event, ok := <-eventsCh:
				if !ok {
					return
				}
				if !h.writeSnapshot(w, channelID, event.Operation) {
					// Client ngắt kết nối
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

// writeSnapshot fetch cửa sổ message mới nhất của channel, gom nhóm rồi ghi xuống stream.
// Trả về false khi client đã ngắt kết nối. Stream writer chạy sau khi handler trả về
// nên không được đụng vào fiber.Ctx, phải dùng context riêng cho mỗi lần fetch.
func (h *MessageHandler) writeSnapshot(w *bufio.Writer, channelID primitive.ObjectID, operation string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), streamSnapshotTimeout)
	defer cancel()

	messages, err := h.messageService.GetMessages(ctx, channelID, 0, streamSnapshotLimit)
	if err != nil {
		// Lỗi đọc tạm thời thì giữ kết nối, snapshot kế tiếp sẽ bù lại
		return true
	}
	payload, err := json.Marshal(map[string]interface{}{
		"operation": operation,
		"groups":    chatsvc.GroupMessages(messages),
	})
	if err != nil {
		return true
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	return w.Flush() == nil
}
