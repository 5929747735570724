package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marketpulse-ai/marketpulse/internal/assistant"
	"github.com/marketpulse-ai/marketpulse/internal/assistant/core"
)

// AssistantHandler exposes the catalog, router and composer over HTTP.
type AssistantHandler struct {
	Assistant      *assistant.Assistant
	MaxQueryLength int
	Logger         *log.Logger
}

// Register mounts the assistant routes on the given group.
func (h *AssistantHandler) Register(g *echo.Group) {
	g.GET("/agents", h.listAgents)
	g.POST("/assistant/route", h.route)
	g.POST("/assistant/prompt", h.prompt)
}

func (h *AssistantHandler) listAgents(c echo.Context) error {
	agents := h.Assistant.Catalog().All()
	out := make([]agentSummary, 0, len(agents))
	for _, a := range agents {
		out = append(out, agentSummary{
			ID:           a.ID,
			DisplayName:  a.DisplayName,
			Emoji:        a.Emoji,
			Description:  a.Description,
			Capabilities: a.Capabilities,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssistantHandler) route(c echo.Context) error {
	ctx, err := h.bindContext(c)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	decision := h.Assistant.Route(ctx)
	h.Logger.Printf("route %s -> %s (%.2f)", requestID, decision.PrimaryAgent.ID, decision.Confidence)
	return c.JSON(http.StatusOK, routeResponse{RequestID: requestID, Decision: decision})
}

func (h *AssistantHandler) prompt(c echo.Context) error {
	ctx, err := h.bindContext(c)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	decision, prompt := h.Assistant.BuildInstruction(ctx)
	h.Logger.Printf("prompt %s -> %s (%d bytes)", requestID, decision.PrimaryAgent.ID, len(prompt))
	return c.JSON(http.StatusOK, promptResponse{RequestID: requestID, Decision: decision, Prompt: prompt})
}

func (h *AssistantHandler) bindContext(c echo.Context) (*core.AgentContext, error) {
	var ctx core.AgentContext
	if err := c.Bind(&ctx); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if ctx.Query == "" && !ctx.Mode.IsTutoring() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	if h.MaxQueryLength > 0 && len(ctx.Query) > h.MaxQueryLength {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "query exceeds maximum length")
	}
	if ctx.Mode == "" {
		ctx.Mode = core.ModeBusiness
	}
	return &ctx, nil
}
