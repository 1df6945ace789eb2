package handler

import (
	"github.com/labstack/echo/v4"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/usecase"
	"artisanmarket/pkg/response"
	"artisanmarket/pkg/utils"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

type startConversationRequest struct {
	SellerID       string `json:"seller_id" validate:"required"`
	ProductID      string `json:"product_id"`
	InitialMessage string `json:"initial_message"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

// StartConversation opens (or reuses) a thread from the caller to a seller
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	conversation, err := h.conversationUseCase.StartConversation(c.Request().Context(), userID, usecase.StartConversationInput{
		SellerID:       req.SellerID,
		ProductID:      req.ProductID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

// ListConversations returns the caller's threads under the claimed role
// (?role=customer|seller, customer by default)
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	role := entity.Role(c.QueryParam("role"))
	if role == "" {
		role = entity.RoleCustomer
	}

	pagination := utils.GetPaginationParams(c)

	conversations, total, err := h.conversationUseCase.ListConversations(c.Request().Context(), userID, role, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, pagination.Page, pagination.PageSize)
}

func (h *ConversationHandler) GetConversation(c echo.Context) error {
	userID := c.Get("uid").(string)
	conversationID := c.Param("id")

	conversation, err := h.conversationUseCase.GetConversation(c.Request().Context(), userID, conversationID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

func (h *ConversationHandler) ListMessages(c echo.Context) error {
	userID := c.Get("uid").(string)
	conversationID := c.Param("id")

	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.conversationUseCase.ListMessages(c.Request().Context(), userID, conversationID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, pagination.Page, pagination.PageSize)
}

func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	conversationID := c.Param("id")

	message, err := h.conversationUseCase.SendMessage(c.Request().Context(), userID, conversationID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
