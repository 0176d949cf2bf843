package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/polish/internal/config"
	"github.com/hpungsan/polish/internal/errors"
	"github.com/hpungsan/polish/internal/ops"
	"github.com/hpungsan/polish/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store *store.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(s *store.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: s, cfg: cfg}
}

// EnhanceRequest represents the arguments for prompt_enhance and prompt_preview.
type EnhanceRequest struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

// ListRequest represents the arguments for prompt_history and prompt_favorites.
type ListRequest struct {
	Type   string `json:"type,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// IDRequest represents the arguments for prompt_fetch and prompt_toggle_favorite.
type IDRequest struct {
	ID string `json:"id"`
}

// ExportRequest represents the arguments for prompt_export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// HandleEnhance handles the prompt_enhance tool call.
func (h *Handlers) HandleEnhance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EnhanceRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Enhance(ctx, h.store, h.cfg, ops.EnhanceInput{
		Text:     input.Text,
		Category: input.Type,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandlePreview handles the prompt_preview tool call.
func (h *Handlers) HandlePreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EnhanceRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Preview(ctx, ops.PreviewInput{
		Text:     input.Text,
		Category: input.Type,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHistory handles the prompt_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.History(ctx, h.store, ops.ListInput{
		Category: input.Type,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFavorites handles the prompt_favorites tool call.
func (h *Handlers) HandleFavorites(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Favorites(ctx, h.store, ops.ListInput{
		Category: input.Type,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the prompt_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.store, ops.FetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleToggleFavorite handles the prompt_toggle_favorite tool call.
func (h *Handlers) HandleToggleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ToggleFavorite(ctx, h.store, ops.ToggleFavoriteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleClearHistory handles the prompt_clear_history tool call.
func (h *Handlers) HandleClearHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ClearHistory(ctx, h.store)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the prompt_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(ctx, h.store, h.cfg, ops.ExportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// INTERNAL errors and unstructured errors never expose details.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var pe *errors.PolishError
	if stderrors.As(err, &pe) {
		message := pe.Message
		switch {
		case pe.Code == errors.ErrInternal:
			message = "an internal error occurred"
		case err != error(pe):
			// keep wrapper context, e.g. "export: <message>"
			message = strings.Replace(err.Error(), pe.Error(), pe.Message, 1)
		}
		errorObj := map[string]any{
			"code":    pe.Code,
			"message": message,
			"status":  pe.Status,
		}
		if pe.Code != errors.ErrInternal && pe.Details != nil {
			errorObj["details"] = pe.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
