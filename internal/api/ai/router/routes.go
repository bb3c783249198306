// Package router đăng ký các route thuộc domain ai: proxy Gemini và kho hội thoại.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/handler"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	orgmodels "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
	apirouter "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/router"
)

// Register đăng ký tất cả route ai lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	aiHandler, err := aihdl.NewAIHandler()
	if err != nil {
		return fmt.Errorf("failed to create ai handler: %w", err)
	}

	memberAuth := []fiber.Handler{
		middleware.AuthMiddleware(orgmodels.RoleMember),
		middleware.OrganizationContextMiddleware(),
	}

	// Hỏi assistant (stateless, client tự gửi history)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/", memberAuth, aiHandler.HandleAsk)

	// Kho hội thoại theo user
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "GET", "/conversations", memberAuth, aiHandler.HandleListConversations)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/conversations", memberAuth, aiHandler.HandleCreateConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "PUT", "/conversations/:id", memberAuth, aiHandler.HandleRenameConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/conversations/:id/star", memberAuth, aiHandler.HandleStarConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/conversations/:id/unstar", memberAuth, aiHandler.HandleUnstarConversation)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "GET", "/conversations/:id/messages", memberAuth, aiHandler.HandleGetConversationMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/conversations/:id/messages", memberAuth, aiHandler.HandleAddConversationMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "DELETE", "/conversations/:id", memberAuth, aiHandler.HandleDeleteConversation)

	return nil
}
