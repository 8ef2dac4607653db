package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/apresai/repost/internal/observability"
	"github.com/apresai/repost/internal/persona"
	"github.com/apresai/repost/internal/pipeline"
	"github.com/apresai/repost/internal/platform"
	"github.com/apresai/repost/internal/prompt"
)

var tracer = otel.Tracer("repost-mcp")

// ToolDefs returns the MCP tool definitions.
func ToolDefs() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "generate_post",
			Description: "Generate platform-specific content from a URL, RSS feed, file, or raw text, optionally in the voice of one or more trained personas.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"input": map[string]any{
						"type":        "string",
						"description": "Source content: an article URL, RSS feed URL, or raw text",
					},
					"platform": map[string]any{
						"type":        "string",
						"description": "Target platform: " + strings.Join(platform.IDs(), ", "),
					},
					"kind": map[string]any{
						"type":        "string",
						"description": "Content kind: post, blog, summary, diagram",
						"default":     "post",
					},
					"personas": map[string]any{
						"type":        "string",
						"description": "Comma-separated persona names with optional weights, e.g. \"casey\" or \"casey:0.7,sam:0.3\"",
					},
					"keywords": map[string]any{
						"type":        "string",
						"description": "Comma-separated keywords to work into the content",
					},
					"attribute_source": map[string]any{
						"type":        "boolean",
						"description": "Close the content with a source attribution line",
						"default":     false,
					},
				},
				Required: []string{"input"},
			},
		},
		{
			Name:        "analyze_style",
			Description: "Analyze the writing style of a text: tone, structure, sentiment, readability, topics, and stylistic fingerprint.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The text to analyze",
					},
				},
				Required: []string{"text"},
			},
		},
		{
			Name:        "train_persona",
			Description: "Train a persona from writing samples. The persona's style profile is computed from the samples and can be used by generate_post.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Persona name (case-insensitive, must not collide with built-ins)",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Writing samples the persona should learn from",
					},
					"content_type": map[string]any{
						"type":        "string",
						"description": "What the samples are: posts, blogs, mixed",
						"default":     "mixed",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "Short description of the persona",
					},
					"domains": map[string]any{
						"type":        "string",
						"description": "Comma-separated domain tags",
					},
					"instructions": map[string]any{
						"type":        "string",
						"description": "Special instructions always applied when this persona writes",
					},
				},
				Required: []string{"name", "content"},
			},
		},
		{
			Name:        "get_persona",
			Description: "Get a persona's profile including its computed style metrics.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Persona name",
					},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "list_personas",
			Description: "List all trained personas with their descriptions and content types.",
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]any{},
			},
		},
		{
			Name:        "delete_persona",
			Description: "Delete a trained persona by name.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Persona name",
					},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "export_persona",
			Description: "Export a persona as a portable JSON backup. When the server has an S3 bucket configured the backup is also uploaded there.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Persona name",
					},
				},
				Required: []string{"name"},
			},
		},
		{
			Name:        "list_generations",
			Description: "List past generations, newest first.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results (default 20)",
						"default":     20,
					},
					"cursor": map[string]any{
						"type":        "string",
						"description": "Pagination cursor from a previous list_generations call",
					},
				},
			},
		},
		{
			Name:        "get_generation",
			Description: "Get a past generation's full content by ID.",
			InputSchema: mcp.ToolInputSchema{
				Type: "object",
				Properties: map[string]any{
					"generation_id": map[string]any{
						"type":        "string",
						"description": "The generation ID returned from generate_post or list_generations",
					},
				},
				Required: []string{"generation_id"},
			},
		},
	}
}

// Handlers contains tool handler implementations.
type Handlers struct {
	pipe    *pipeline.Pipeline
	store   persona.Store
	builder *persona.Builder
	history *History
	storage *Storage
	model   string
	log     *slog.Logger
}

// NewHandlers creates tool handlers. storage may be nil when no S3
// bucket is configured.
func NewHandlers(pipe *pipeline.Pipeline, store persona.Store, builder *persona.Builder, history *History, storage *Storage, model string, logger *slog.Logger) *Handlers {
	return &Handlers{
		pipe:    pipe,
		store:   store,
		builder: builder,
		history: history,
		storage: storage,
		model:   model,
		log:     logger,
	}
}

// HandleGeneratePost runs the full generation pipeline.
func (h *Handlers) HandleGeneratePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.generate_post")
	defer span.End()

	input := mcp.ParseString(req, "input", "")
	if input == "" {
		span.SetStatus(codes.Error, "missing input")
		return mcp.NewToolResultError("input is required"), nil
	}

	kind := prompt.Kind(mcp.ParseString(req, "kind", "post"))
	platformID := mcp.ParseString(req, "platform", "")
	if platformID == "" && (kind == prompt.KindPost || kind == prompt.KindBlog) {
		span.SetStatus(codes.Error, "missing platform")
		return mcp.NewToolResultError("platform is required for post and blog kinds"), nil
	}

	refs, err := parsePersonaRefs(mcp.ParseString(req, "personas", ""))
	if err != nil {
		span.SetStatus(codes.Error, "bad personas")
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := pipeline.Options{
		Input:           input,
		Platform:        platformID,
		Kind:            kind,
		Personas:        refs,
		Keywords:        splitList(mcp.ParseString(req, "keywords", "")),
		AttributeSource: parseBoolParam(req, "attribute_source", false),
	}

	span.SetAttributes(
		attribute.String("platform", platformID),
		attribute.String("kind", string(kind)),
		attribute.Int("persona_count", len(refs)),
	)

	result, err := h.pipe.Run(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pipeline failed")
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	id, err := NewGenerationID()
	if err != nil {
		span.RecordError(err)
		return mcp.NewToolResultError(fmt.Sprintf("generate id: %v", err)), nil
	}

	item := GenerationItem{
		GenerationID: id,
		Platform:     result.Platform,
		Kind:         string(kind),
		Title:        result.Title,
		Source:       result.Source,
		Personas:     personaNames(refs),
		Content:      result.Content,
		WordCount:    result.WordCount,
		Model:        h.model,
	}
	// Record on a detached context: the content was already produced,
	// so a cancelled tool call must not abort the history write, and
	// losing the row is not worth failing the call over.
	recordCtx, recordCancel := context.WithTimeout(observability.DetachTraceContext(ctx), 5*time.Second)
	defer recordCancel()
	if err := h.history.Record(recordCtx, item); err != nil {
		h.log.WarnContext(ctx, "Failed to record generation", "generation_id", id, "error", err)
	}

	span.SetAttributes(attribute.String("generation_id", id))
	h.log.InfoContext(ctx, "Content generated",
		"generation_id", id, "platform", result.Platform, "kind", string(kind), "words", result.WordCount)

	return jsonResult(map[string]any{
		"generation_id": id,
		"platform":      result.Platform,
		"kind":          string(kind),
		"title":         result.Title,
		"content":       result.Content,
		"word_count":    result.WordCount,
	})
}

// HandleAnalyzeStyle returns the full style metrics for a text.
func (h *Handlers) HandleAnalyzeStyle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.analyze_style")
	defer span.End()

	text := mcp.ParseString(req, "text", "")
	if strings.TrimSpace(text) == "" {
		span.SetStatus(codes.Error, "missing text")
		return mcp.NewToolResultError("text is required"), nil
	}

	metrics := h.builder.Analyzer().Analyze(text)
	span.SetAttributes(attribute.Int("word_count", metrics.WordCount))
	h.log.InfoContext(ctx, "Style analyzed", "words", metrics.WordCount)

	return jsonResult(metrics)
}

// HandleTrainPersona builds and stores a persona.
func (h *Handlers) HandleTrainPersona(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.train_persona")
	defer span.End()

	name := mcp.ParseString(req, "name", "")
	content := mcp.ParseString(req, "content", "")
	if name == "" || strings.TrimSpace(content) == "" {
		span.SetStatus(codes.Error, "missing name or content")
		return mcp.NewToolResultError("name and content are required"), nil
	}

	contentType := persona.ContentType(mcp.ParseString(req, "content_type", string(persona.ContentMixed)))
	meta := &persona.Metadata{
		Description:  mcp.ParseString(req, "description", ""),
		DomainTags:   splitList(mcp.ParseString(req, "domains", "")),
		Instructions: mcp.ParseString(req, "instructions", ""),
	}

	profile := h.builder.Build(name, content, contentType, meta)
	if err := h.store.Save(ctx, profile); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to save persona: %v", err)), nil
	}

	span.SetAttributes(attribute.String("persona", name))
	h.log.InfoContext(ctx, "Persona trained", "persona", name, "words", profile.Metrics.WordCount)

	return jsonResult(map[string]any{
		"name":         profile.Name,
		"content_type": string(profile.ContentType),
		"word_count":   profile.Metrics.WordCount,
		"tone":         profile.Metrics.Tone,
		"message":      "Persona trained. Use generate_post with personas=\"" + profile.Name + "\" to write in this voice.",
	})
}

// HandleGetPersona returns a persona's profile.
func (h *Handlers) HandleGetPersona(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.get_persona")
	defer span.End()

	name := mcp.ParseString(req, "name", "")
	if name == "" {
		span.SetStatus(codes.Error, "missing name")
		return mcp.NewToolResultError("name is required"), nil
	}
	span.SetAttributes(attribute.String("persona", name))

	profile, err := h.store.Get(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get persona: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"name":         profile.Name,
		"description":  profile.Description,
		"domains":      profile.DomainTags,
		"instructions": profile.Instructions,
		"content_type": string(profile.ContentType),
		"built_in":     profile.BuiltIn,
		"created_at":   profile.CreatedAt,
		"metrics":      profile.Metrics,
	})
}

// HandleListPersonas lists all stored personas.
func (h *Handlers) HandleListPersonas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.list_personas")
	defer span.End()

	profiles, err := h.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list personas: %v", err)), nil
	}
	span.SetAttributes(attribute.Int("result_count", len(profiles)))

	personas := make([]map[string]any, 0, len(profiles))
	for _, p := range profiles {
		entry := map[string]any{
			"name":         p.Name,
			"content_type": string(p.ContentType),
			"created_at":   p.CreatedAt,
		}
		if p.Description != "" {
			entry["description"] = p.Description
		}
		if p.BuiltIn {
			entry["built_in"] = true
		}
		personas = append(personas, entry)
	}

	return jsonResult(map[string]any{
		"personas": personas,
		"count":    len(personas),
	})
}

// HandleDeletePersona removes a persona.
func (h *Handlers) HandleDeletePersona(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.delete_persona")
	defer span.End()

	name := mcp.ParseString(req, "name", "")
	if name == "" {
		span.SetStatus(codes.Error, "missing name")
		return mcp.NewToolResultError("name is required"), nil
	}
	span.SetAttributes(attribute.String("persona", name))

	removed, err := h.store.Remove(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "remove failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete persona: %v", err)), nil
	}
	if !removed {
		return mcp.NewToolResultError(fmt.Sprintf("persona %q not found", name)), nil
	}

	h.log.InfoContext(ctx, "Persona deleted", "persona", name)
	return jsonResult(map[string]any{"deleted": name})
}

// HandleExportPersona returns a persona backup, uploading it to S3
// when storage is configured.
func (h *Handlers) HandleExportPersona(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.export_persona")
	defer span.End()

	name := mcp.ParseString(req, "name", "")
	if name == "" {
		span.SetStatus(codes.Error, "missing name")
		return mcp.NewToolResultError("name is required"), nil
	}
	span.SetAttributes(attribute.String("persona", name))

	profile, err := h.store.Get(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get persona: %v", err)), nil
	}

	data, err := persona.Export(profile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to export persona: %v", err)), nil
	}

	result := map[string]any{
		"name":   profile.Name,
		"backup": json.RawMessage(data),
	}

	if h.storage != nil {
		key, err := h.storage.UploadBackup(ctx, profile.Name, data)
		if err != nil {
			h.log.WarnContext(ctx, "Failed to upload backup", "persona", profile.Name, "error", err)
		} else {
			result["s3_key"] = key
		}
	}

	return jsonResult(result)
}

// HandleListGenerations returns a paginated generation history.
func (h *Handlers) HandleListGenerations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.list_generations")
	defer span.End()

	limit := parseIntParam(req, "limit", 20)
	cursor := mcp.ParseString(req, "cursor", "")

	span.SetAttributes(
		attribute.Int("limit", limit),
		attribute.String("cursor", cursor),
	)

	items, nextCursor, err := h.history.List(ctx, limit, cursor)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list generations failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list generations: %v", err)), nil
	}
	span.SetAttributes(attribute.Int("result_count", len(items)))

	generations := make([]map[string]any, 0, len(items))
	for _, item := range items {
		g := map[string]any{
			"generation_id": item.GenerationID,
			"platform":      item.Platform,
			"kind":          item.Kind,
			"created_at":    item.CreatedAt,
		}
		if item.Title != "" {
			g["title"] = item.Title
		}
		if item.Personas != "" {
			g["personas"] = item.Personas
		}
		if item.WordCount > 0 {
			g["word_count"] = item.WordCount
		}
		generations = append(generations, g)
	}

	result := map[string]any{
		"generations": generations,
		"count":       len(generations),
	}
	if nextCursor != "" {
		result["next_cursor"] = nextCursor
	}

	return jsonResult(result)
}

// HandleGetGeneration returns a single generation's full content.
func (h *Handlers) HandleGetGeneration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx, span := tracer.Start(ctx, "tool.get_generation")
	defer span.End()

	id := mcp.ParseString(req, "generation_id", "")
	if id == "" {
		span.SetStatus(codes.Error, "missing generation_id")
		return mcp.NewToolResultError("generation_id is required"), nil
	}
	span.SetAttributes(attribute.String("generation_id", id))

	item, err := h.history.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get generation failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get generation: %v", err)), nil
	}
	if item == nil {
		span.SetStatus(codes.Error, "not found")
		return mcp.NewToolResultError(fmt.Sprintf("generation %s not found", id)), nil
	}

	return jsonResult(map[string]any{
		"generation_id": item.GenerationID,
		"platform":      item.Platform,
		"kind":          item.Kind,
		"title":         item.Title,
		"source":        item.Source,
		"personas":      item.Personas,
		"content":       item.Content,
		"word_count":    item.WordCount,
		"model":         item.Model,
		"created_at":    item.CreatedAt,
	})
}

// parsePersonaRefs parses "casey" or "casey:0.7,sam:0.3" into persona
// references. A name without a weight gets weight 1.
func parsePersonaRefs(s string) ([]pipeline.PersonaRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var refs []pipeline.PersonaRef
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, weightStr, hasWeight := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid persona reference %q", part)
		}
		weight := 1.0
		if hasWeight {
			w, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight in persona reference %q", part)
			}
			weight = w
		}
		refs = append(refs, pipeline.PersonaRef{Name: name, Weight: weight})
	}
	return refs, nil
}

func personaNames(refs []pipeline.PersonaRef) string {
	if len(refs) == 0 {
		return ""
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return strings.Join(names, ",")
}

// splitList splits a comma-separated parameter, dropping empty parts.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func parseIntParam(req mcp.CallToolRequest, key string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	raw, ok := args[key]
	if !ok {
		return defaultVal
	}
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return defaultVal
	}
}

func parseBoolParam(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	if v, ok := args[key].(bool); ok {
		return v
	}
	return defaultVal
}
