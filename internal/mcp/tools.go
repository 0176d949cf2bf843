package mcp

import "github.com/mark3labs/mcp-go/mcp"

var categoryOption = []mcp.PropertyOption{
	mcp.Description("Prompt type: text, image or video (default: text)"),
	mcp.Enum("text", "image", "video"),
}

var enhanceToolDef = mcp.NewTool("prompt_enhance",
	mcp.WithDescription("Enhance a prompt and record it in history. Text prompts get a structured template; image and video prompts get descriptive clauses for aspects the prompt does not already mention."),
	mcp.WithString("text", mcp.Required(), mcp.Description("The prompt to enhance")),
	mcp.WithString("type", categoryOption...),
)

var previewToolDef = mcp.NewTool("prompt_preview",
	mcp.WithDescription("Enhance a prompt without recording it. Reports the text classification or the clauses that were added."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("text", mcp.Description("The prompt to enhance")),
	mcp.WithString("type", categoryOption...),
)

var historyToolDef = mcp.NewTool("prompt_history",
	mcp.WithDescription("List recent enhancements, newest first. History keeps the most recent records only."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("type", mcp.Description("Only return records of this prompt type")),
	mcp.WithNumber("limit", mcp.Description("Maximum records to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Records to skip")),
)

var favoritesToolDef = mcp.NewTool("prompt_favorites",
	mcp.WithDescription("List favorite enhancements, most recently favorited first. Favorites are kept after history eviction or clearing."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("type", mcp.Description("Only return records of this prompt type")),
	mcp.WithNumber("limit", mcp.Description("Maximum records to return (default 20, max 100)")),
	mcp.WithNumber("offset", mcp.Description("Records to skip")),
)

var fetchToolDef = mcp.NewTool("prompt_fetch",
	mcp.WithDescription("Fetch one record by id from history or favorites."),
	mcp.WithReadOnlyHintAnnotation(true),
	mcp.WithString("id", mcp.Required(), mcp.Description("Record id")),
)

var toggleFavoriteToolDef = mcp.NewTool("prompt_toggle_favorite",
	mcp.WithDescription("Toggle the favorite flag of a history record. Returns the new state; ids not in history return false."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Record id")),
)

var clearHistoryToolDef = mcp.NewTool("prompt_clear_history",
	mcp.WithDescription("Delete all history records. Favorites are kept."),
	mcp.WithDestructiveHintAnnotation(true),
)

var exportToolDef = mcp.NewTool("prompt_export",
	mcp.WithDescription("Export history and favorites to a JSONL file. Default path: ~/.polish/exports/polish-<timestamp>.jsonl"),
	mcp.WithString("path", mcp.Description("Destination .jsonl file")),
)
