package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/readyreserve/chatbot-be/internal/services"
	"github.com/readyreserve/chatbot-be/internal/shared/utils"
)

// chatTimeout bounds the completion-provider round trip per request.
const chatTimeout = 30 * time.Second

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents request body for the chat endpoint
type ChatRequest struct {
	Messages []services.ChatMessage `json:"messages"`
	UserID   string                 `json:"user_id,omitempty" example:"visitor-42"`
}

// Chat godoc
// @Summary Chat with the Ready Assistant
// @Description Answers a conversation using the website knowledge base and the configured completion provider
// @Tags Chat
// @Accept json
// @Produce json
// @Param data body ChatRequest true "Conversation history"
// @Success 200 {object} services.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	requestID := uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	defer cancel()

	resp, err := h.chatService.HandleChat(ctx, req.Messages)
	if err != nil {
		utils.LogError("chat completion failed", err, map[string]interface{}{
			"request_id": requestID,
			"user_id":    req.UserID,
			"turns":      len(req.Messages),
		})

		var provErr *services.ProviderError
		if errors.As(err, &provErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": provErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "chat failed",
		})
	}

	utils.LogInfo("chat completed", map[string]interface{}{
		"request_id":  requestID,
		"user_id":     req.UserID,
		"faq_matches": len(resp.FAQMatches),
	})

	return c.JSON(resp)
}
