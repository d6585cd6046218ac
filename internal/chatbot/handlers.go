package chatbot

import (
	"net/http"
	"strings"
	"time"

	"NutriScan_Backend/internal/utility"
	"github.com/labstack/echo/v4"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// ChatRequest is the body of POST /chat. Context defaults to "general".
type ChatRequest struct {
	Message             string        `json:"message"`
	Context             string        `json:"context,omitempty"`
	ConversationHistory []HistoryTurn `json:"conversationHistory,omitempty"`
}

// NutritionQuestionRequest is the body of POST /nutrition-question.
type NutritionQuestionRequest struct {
	Question    string       `json:"question"`
	ProductData *ProductData `json:"productData,omitempty"`
}

// ChatResponse is returned for every non-validation outcome of /chat.
type ChatResponse struct {
	Success    bool   `json:"success"`
	Response   string `json:"response"`
	Context    string `json:"context,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	IsFallback bool   `json:"isFallback,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NutritionQuestionResponse is returned for every non-validation outcome of
// /nutrition-question.
type NutritionQuestionResponse struct {
	Success    bool   `json:"success"`
	Response   string `json:"response"`
	Type       string `json:"type,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	IsFallback bool   `json:"isFallback,omitempty"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

const fallbackErrorDescription = "AI service temporarily unavailable"

/*=================================================================================
									HANDLERS
=================================================================================*/

// Handler exposes the chatbot Service over HTTP.
type Handler struct {
	svc *Service
	now func() time.Time
}

// NewHandler returns a Handler backed by svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

// ChatHandler handles POST /chat.
// Downstream failures are answered with 200 and a fallback message.
func (h *Handler) ChatHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		utility.GetLogger(c).Error().Err(err).Msg("Failed to get user ID from context")
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
	}

	tag := ParseContextTag(req.Context)
	reply := h.svc.Chat(ctx, ChatInput{
		UserID:  userID,
		Message: message,
		Context: tag,
		History: req.ConversationHistory,
	})

	if reply.IsFallback {
		return c.JSON(http.StatusOK, ChatResponse{
			Success:    true,
			Response:   reply.Text,
			IsFallback: true,
			Error:      fallbackErrorDescription,
		})
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Success:   true,
		Response:  reply.Text,
		Context:   string(tag),
		Timestamp: h.timestamp(),
	})
}

// NutritionQuestionHandler handles POST /nutrition-question.
func (h *Handler) NutritionQuestionHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		utility.GetLogger(c).Error().Err(err).Msg("Failed to get user ID from context")
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}

	var req NutritionQuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Question is required"})
	}

	reply := h.svc.NutritionQuestion(ctx, NutritionQuestionInput{
		UserID:   userID,
		Question: question,
		Product:  req.ProductData,
	})

	if reply.IsFallback {
		return c.JSON(http.StatusOK, NutritionQuestionResponse{
			Success:    true,
			Response:   reply.Text,
			IsFallback: true,
		})
	}

	return c.JSON(http.StatusOK, NutritionQuestionResponse{
		Success:   true,
		Response:  reply.Text,
		Type:      "nutrition_advice",
		Timestamp: h.timestamp(),
	})
}

// timestamp formats the current time like JavaScript's toISOString.
func (h *Handler) timestamp() string {
	return h.now().UTC().Format("2006-01-02T15:04:05.000Z")
}
