// Package chathdl - handler cho domain chat (Channel, Message).
package chathdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	chatdto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/models"
	chatsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/logger"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// ChannelHandler xử lý các request quản lý channel chat.
type ChannelHandler struct {
	*basehdl.BaseHandler[models.Channel, chatdto.ChannelCreateInput, chatdto.ChannelUpdateInput]
	channelService *chatsvc.ChannelService
}

// NewChannelHandler tạo instance mới của ChannelHandler.
func NewChannelHandler(channelService *chatsvc.ChannelService) *ChannelHandler {
	baseHandler := basehdl.NewBaseHandler[models.Channel, chatdto.ChannelCreateInput, chatdto.ChannelUpdateInput](channelService)
	return &ChannelHandler{
		BaseHandler:    baseHandler,
		channelService: channelService,
	}
}

// requireSession lấy session từ context, lỗi nếu middleware auth chưa chạy.
func requireSession(c fiber.Ctx) (middleware.Session, primitive.ObjectID, error) {
	session, ok := c.Locals("session").(middleware.Session)
	if !ok || session.UserID == "" {
		return middleware.Session{}, primitive.NilObjectID, common.ErrTokenMissing
	}
	userID := utility.String2ObjectID(session.UserID)
	if userID.IsZero() {
		return middleware.Session{}, primitive.NilObjectID, common.ErrTokenInvalid
	}
	return session, userID, nil
}

// HandleCreateChannel tạo channel mới, người tạo lấy từ session.
func (h *ChannelHandler) HandleCreateChannel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		session, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input chatdto.ChannelCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model.CreatedBy = userID
		model.CreatedByName = session.DisplayName
		h.SetOrganizationID(model, h.GetActiveOrganizationID(c))

		channel, err := h.channelService.CreateChannel(c.Context(), *model)
		h.HandleResponse(c, channel, err)
		return nil
	})
}

// HandleGetMyChannels trả về các channel mà user hiện tại thấy được.
func (h *ChannelHandler) HandleGetMyChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		channels, err := h.channelService.GetAllUserChannels(c.Context(), userID)
		h.HandleResponse(c, channels, err)
		return nil
	})
}

// HandleFindOrCreateDM tìm hoặc tạo channel DM giữa user hiện tại và một user khác.
func (h *ChannelHandler) HandleFindOrCreateDM(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		session, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input chatdto.FindOrCreateDMInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		otherID := utility.String2ObjectID(input.UserB)
		if otherID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		channel, err := h.channelService.FindOrCreateDM(c.Context(), userID, session.DisplayName, otherID, input.NameB)
		h.HandleResponse(c, channel, err)
		return nil
	})
}

// channelMemberAction parse channel id từ path và user id từ body rồi gọi action tương ứng.
// Thay đổi membership yêu cầu quyền quản trị channel, giống archive và delete.
func (h *ChannelHandler) channelMemberAction(c fiber.Ctx, action func(channelID, userID primitive.ObjectID) (*models.Channel, error)) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID := utility.String2ObjectID(c.Params("id"))
		if channelID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		channel, err := h.channelService.FindOneById(c.Context(), channelID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !canManageChannel(c, &channel, userID) {
			h.HandleResponse(c, nil, common.ErrRoleInsufficient)
			return nil
		}

		var input chatdto.ChannelMemberInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID := utility.String2ObjectID(input.UserID)
		if targetID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		updated, err := action(channelID, targetID)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleAddMember thêm thành viên vào channel.
func (h *ChannelHandler) HandleAddMember(c fiber.Ctx) error {
	return h.channelMemberAction(c, func(channelID, userID primitive.ObjectID) (*models.Channel, error) {
		return h.channelService.AddChannelMember(c.Context(), channelID, userID)
	})
}

// HandleRemoveMember gỡ thành viên khỏi channel.
func (h *ChannelHandler) HandleRemoveMember(c fiber.Ctx) error {
	return h.channelMemberAction(c, func(channelID, userID primitive.ObjectID) (*models.Channel, error) {
		return h.channelService.RemoveChannelMember(c.Context(), channelID, userID)
	})
}

// HandleAddAdmin thêm admin cho channel (phải là thành viên trước).
func (h *ChannelHandler) HandleAddAdmin(c fiber.Ctx) error {
	return h.channelMemberAction(c, func(channelID, userID primitive.ObjectID) (*models.Channel, error) {
		return h.channelService.AddChannelAdmin(c.Context(), channelID, userID)
	})
}

// HandleRemoveAdmin gỡ quyền admin channel.
func (h *ChannelHandler) HandleRemoveAdmin(c fiber.Ctx) error {
	return h.channelMemberAction(c, func(channelID, userID primitive.ObjectID) (*models.Channel, error) {
		return h.channelService.RemoveChannelAdmin(c.Context(), channelID, userID)
	})
}

// canManageChannel kiểm tra quyền quản trị channel: admin của channel, người tạo,
// hoặc role workspace từ manager trở lên.
func canManageChannel(c fiber.Ctx, channel *models.Channel, userID primitive.ObjectID) bool {
	if channel == nil {
		return false
	}
	if channel.CreatedBy == userID {
		return true
	}
	for _, admin := range channel.Admins {
		if admin == userID {
			return true
		}
	}
	if member, ok := c.Locals("member").(orgmodels.Member); ok {
		return orgmodels.RoleRank(member.Role) >= orgmodels.RoleRank(orgmodels.RoleManager)
	}
	return false
}

// channelManageAction chạy action yêu cầu quyền quản trị channel.
func (h *ChannelHandler) channelManageAction(c fiber.Ctx, action func(channelID primitive.ObjectID) (interface{}, error)) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID := utility.String2ObjectID(c.Params("id"))
		if channelID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		channel, err := h.channelService.FindOneById(c.Context(), channelID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !canManageChannel(c, &channel, userID) {
			h.HandleResponse(c, nil, common.ErrRoleInsufficient)
			return nil
		}

		result, err := action(channelID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUpdateChannel cập nhật name, description, teamId của channel (field merge).
func (h *ChannelHandler) HandleUpdateChannel(c fiber.Ctx) error {
	return h.channelManageAction(c, func(channelID primitive.ObjectID) (interface{}, error) {
		var input chatdto.ChannelUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return nil, common.ErrInvalidFormat
		}
		if err := h.ValidateInput(&input); err != nil {
			return nil, err
		}
		return h.channelService.UpdateChannelInfo(c.Context(), channelID, &input)
	})
}

// HandleArchive lưu trữ channel.
func (h *ChannelHandler) HandleArchive(c fiber.Ctx) error {
	return h.channelManageAction(c, func(channelID primitive.ObjectID) (interface{}, error) {
		return h.channelService.ArchiveChannel(c.Context(), channelID)
	})
}

// HandleUnarchive mở lại channel đã lưu trữ.
func (h *ChannelHandler) HandleUnarchive(c fiber.Ctx) error {
	return h.channelManageAction(c, func(channelID primitive.ObjectID) (interface{}, error) {
		return h.channelService.UnarchiveChannel(c.Context(), channelID)
	})
}

// HandleDeleteCascade xóa cứng channel cùng toàn bộ message.
func (h *ChannelHandler) HandleDeleteCascade(c fiber.Ctx) error {
	return h.channelManageAction(c, func(channelID primitive.ObjectID) (interface{}, error) {
		err := h.channelService.DeleteChannelCascade(c.Context(), channelID)
		if err != nil {
			return nil, err
		}
		logger.LogChat("channel_delete", channelID.Hex(), c, nil)
		return fiber.Map{"deleted": true, "channelId": channelID.Hex()}, nil
	})
}
