package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-pos/backend/internal/application/usecase/assistant"
	"github.com/campus-pos/backend/internal/integration/entrypoint/dto"
)

// AssistantController handles the admin store-assistant endpoint.
type AssistantController struct {
	askUseCase *assistant.AskUseCase
}

// NewAssistantController creates a new assistant controller instance.
func NewAssistantController(askUseCase *assistant.AskUseCase) *AssistantController {
	return &AssistantController{askUseCase: askUseCase}
}

// Ask handles POST /assistant/ask requests (admin only).
func (c *AssistantController) Ask(ctx *gin.Context) {
	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Question is required",
		})
		return
	}

	output, err := c.askUseCase.Execute(ctx.Request.Context(), assistant.AskInput{
		Question: req.Question,
	})
	if err != nil {
		// The model backend is an external dependency; treat its failures
		// as an upstream error rather than an internal one.
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "Assistant is unavailable right now",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AskResponse{
		Answer: output.Answer,
	})
}
