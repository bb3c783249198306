// Package aihdl - handler cho domain ai.
package aihdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	aidto "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/dto"
	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/models"
	aisvc "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/ai/service"
	basehdl "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/base/handler"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/middleware"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/common"
	"github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/utility"
)

// AIHandler xử lý các request hỏi assistant và quản lý hội thoại.
type AIHandler struct {
	*basehdl.BaseHandler[models.AIConversation, aidto.ConversationCreateInput, aidto.ConversationUpdateInput]
	gemini              *aisvc.GeminiClient
	conversationService *aisvc.AIConversationService
}

// NewAIHandler tạo instance mới của AIHandler.
func NewAIHandler() (*AIHandler, error) {
	conversationService, err := aisvc.NewAIConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create ai conversation service: %v", err)
	}
	return &AIHandler{
		BaseHandler:         basehdl.NewBaseHandler[models.AIConversation, aidto.ConversationCreateInput, aidto.ConversationUpdateInput](conversationService),
		gemini:              aisvc.NewGeminiClient(),
		conversationService: conversationService,
	}, nil
}

func (h *AIHandler) requireSession(c fiber.Ctx) (middleware.Session, primitive.ObjectID, error) {
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

// HandleAsk hỏi assistant, trả về {answer, mode, tokens}.
func (h *AIHandler) HandleAsk(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.AskInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		history := make([]aisvc.HistoryTurn, 0, len(input.History))
		for _, entry := range input.History {
			history = append(history, aisvc.HistoryTurn{Role: entry.Role, Content: entry.Content})
		}

		result, err := h.gemini.Ask(c.Context(), input.Question, input.Mode, history)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleListConversations liệt kê hội thoại của user hiện tại.
func (h *AIHandler) HandleListConversations(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := h.requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		conversations, err := h.conversationService.ListForUser(c.Context(), userID)
		h.HandleResponse(c, conversations, err)
		return nil
	})
}

// HandleCreateConversation tạo hội thoại mới cho user hiện tại.
func (h *AIHandler) HandleCreateConversation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		session, userID, err := h.requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input aidto.ConversationCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		conversation, err := h.conversationService.CreateConversation(c.Context(), userID, session.DisplayName, input.Title, input.Mode)
		h.HandleResponse(c, conversation, err)
		return nil
	})
}

// conversationAction parse id hội thoại và kiểm tra quyền sở hữu của user hiện tại.
func (h *AIHandler) conversationAction(c fiber.Ctx, action func(conversationID primitive.ObjectID) (interface{}, error)) error {
	return h.SafeHandler(c, func() error {
		_, userID, err := h.requireSession(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		conversationID := utility.String2ObjectID(c.Params("id"))
		if conversationID.IsZero() {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		conversation, err := h.conversationService.FindOneById(c.Context(), conversationID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		// Hội thoại AI là riêng tư theo user
		if conversation.UserID != userID {
			h.HandleResponse(c, nil, common.ErrRoleInsufficient)
			return nil
		}
		result, err := action(conversationID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleRenameConversation đổi tên hội thoại.
func (h *AIHandler) HandleRenameConversation(c fiber.Ctx) error {
	var input aidto.ConversationUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidFormat)
		return nil
	}
	if input.Title == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		return h.conversationService.Rename(c.Context(), conversationID, input.Title)
	})
}

// HandleStarConversation đánh dấu sao hội thoại.
func (h *AIHandler) HandleStarConversation(c fiber.Ctx) error {
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		return h.conversationService.Star(c.Context(), conversationID, true)
	})
}

// HandleUnstarConversation bỏ đánh dấu sao hội thoại.
func (h *AIHandler) HandleUnstarConversation(c fiber.Ctx) error {
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		return h.conversationService.Star(c.Context(), conversationID, false)
	})
}

// HandleGetConversationMessages trả về message của hội thoại.
func (h *AIHandler) HandleGetConversationMessages(c fiber.Ctx) error {
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		return h.conversationService.GetMessages(c.Context(), conversationID)
	})
}

// HandleAddConversationMessage ghi một lượt hỏi/đáp vào hội thoại.
func (h *AIHandler) HandleAddConversationMessage(c fiber.Ctx) error {
	var input aidto.MessageAddInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidFormat)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		return h.conversationService.AddMessage(c.Context(), conversationID, input.Role, input.Content, input.Mode, input.Tokens)
	})
}

// HandleDeleteConversation xóa hội thoại cùng toàn bộ message.
func (h *AIHandler) HandleDeleteConversation(c fiber.Ctx) error {
	return h.conversationAction(c, func(conversationID primitive.ObjectID) (interface{}, error) {
		if err := h.conversationService.DeleteCascade(c.Context(), conversationID); err != nil {
			return nil, err
		}
		return fiber.Map{"deleted": true, "conversationId": conversationID.Hex()}, nil
	})
}
