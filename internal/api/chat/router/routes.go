// Package router đăng ký các route thuộc domain chat: Channel, Message, stream realtime.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chathdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/handler"
	chatsvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/chat/service"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	apirouter "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/router"
)

// Register đăng ký tất cả route chat lên v1.
// Quyền đọc/ghi theo channel (membership, visibility) được kiểm tra trong handler,
// middleware chỉ yêu cầu đã đăng nhập và có hồ sơ thành viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	channelService, err := chatsvc.NewChannelService()
	if err != nil {
		return fmt.Errorf("failed to create channel service: %w", err)
	}
	messageService, err := chatsvc.NewMessageService(channelService)
	if err != nil {
		return fmt.Errorf("failed to create message service: %w", err)
	}

	channelHandler := chathdl.NewChannelHandler(channelService)
	messageHandler := chathdl.NewMessageHandler(messageService, channelService)

	memberAuth := []fiber.Handler{
		middleware.AuthMiddleware(orgmodels.RoleMember),
		middleware.OrganizationContextMiddleware(),
	}

	// Channel
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/", memberAuth, channelHandler.HandleCreateChannel)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "GET", "/my", memberAuth, channelHandler.HandleGetMyChannels)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/dm", memberAuth, channelHandler.HandleFindOrCreateDM)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "PUT", "/:id", memberAuth, channelHandler.HandleUpdateChannel)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/:id/member", memberAuth, channelHandler.HandleAddMember)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "DELETE", "/:id/member", memberAuth, channelHandler.HandleRemoveMember)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/:id/admin", memberAuth, channelHandler.HandleAddAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "DELETE", "/:id/admin", memberAuth, channelHandler.HandleRemoveAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/:id/archive", memberAuth, channelHandler.HandleArchive)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/:id/unarchive", memberAuth, channelHandler.HandleUnarchive)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "DELETE", "/:id", memberAuth, channelHandler.HandleDeleteCascade)

	// Message trong channel
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "POST", "/:id/message", memberAuth, messageHandler.HandleSendMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "GET", "/:id/messages", memberAuth, messageHandler.HandleGetMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "GET", "/:id/stream", memberAuth, messageHandler.HandleStream)

	// Thao tác trên một message
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "PUT", "/:messageId", memberAuth, messageHandler.HandleEditMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "DELETE", "/:messageId", memberAuth, messageHandler.HandleDeleteMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "POST", "/:messageId/reaction", memberAuth, messageHandler.HandleAddReaction)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "DELETE", "/:messageId/reaction", memberAuth, messageHandler.HandleRemoveReaction)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "POST", "/:messageId/pin", memberAuth, messageHandler.HandlePinMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "POST", "/:messageId/unpin", memberAuth, messageHandler.HandleUnpinMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "POST", "/:messageId/read", memberAuth, messageHandler.HandleMarkRead)

	return nil
}
