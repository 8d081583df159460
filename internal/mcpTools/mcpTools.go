package mcpTools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/adapter"
	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/internal/pipeline"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ExtractToolName   = "extract_pdf_text"
	SummarizeToolName = "summarize_pdf"
)

type extractReq struct {
	Path     string `json:"caminho_pdf"`
	Strategy string `json:"strategy,omitempty"`
}

type summarizeReq struct {
	Path     string `json:"caminho_pdf"`
	Provider string `json:"provider,omitempty"`
}

type tools struct {
	service pipeline.Service
	logger  *logger_i.Logger
}

// NewServer exposes the extraction and summary pipelines as MCP tools.
func NewServer(service pipeline.Service) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: config.McpServerName, Version: config.McpServerVersion}, nil)
	t := &tools{service: service, logger: logger_i.NewLogger("mcpTools")}
	t.registerExtractTool(srv)
	t.registerSummarizeTool(srv)
	return srv
}

// Handler serves srv over streamable HTTP. Every session shares the same server.
func Handler(srv *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func (t *tools) registerExtractTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        ExtractToolName,
		Description: "Extract the text of a PDF or office document already on the server's filesystem.",
		InputSchema: inputSchema(map[string]any{
			"caminho_pdf": map[string]any{"type": "string", "description": "Path to the document"},
			"strategy": map[string]any{
				"type":        "string",
				"description": "Extraction backend, text_layer when omitted",
				"enum":        strategyNames(),
			},
		}, []string{"caminho_pdf"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r extractReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
		strategy, ok := pipelineModel.ParseStrategy(r.Strategy)
		if !ok {
			return toolError(fmt.Errorf("strategy '%s' is not one of %s", r.Strategy, strings.Join(strategyNames(), ", "))), nil
		}

		text, err := t.service.ConvertText(ctx, strategy, strings.TrimSpace(r.Path))
		if err != nil {
			t.logger.FromContext(ctx).Warn("extract tool failed", "kind", commonModels.KindOf(err))
			return toolError(err), nil
		}
		return jsonResult(adapter.ToTextResponse(text))
	})
}

func (t *tools) registerSummarizeTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        SummarizeToolName,
		Description: "Summarize a PDF already on the server's filesystem with one of the configured LLM providers.",
		InputSchema: inputSchema(map[string]any{
			"caminho_pdf": map[string]any{"type": "string", "description": "Path to the PDF file"},
			"provider": map[string]any{
				"type":        "string",
				"description": "LLM provider, openai when omitted",
				"enum":        []string{string(commonModels.ProviderGroq), string(commonModels.ProviderOpenAI), string(commonModels.ProviderGemini)},
			},
		}, []string{"caminho_pdf"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r summarizeReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
		provider := commonModels.ProviderName(r.Provider)
		if provider == "" {
			provider = commonModels.ProviderOpenAI
		}
		summary, ok := pipeline.SummaryFor(provider)
		if !ok {
			return toolError(fmt.Errorf("provider '%s' is not supported", r.Provider)), nil
		}

		result, err := t.service.Summarize(ctx, summary, strings.TrimSpace(r.Path))
		if err != nil {
			t.logger.FromContext(ctx).Warn("summarize tool failed", "kind", commonModels.KindOf(err))
			return toolError(err), nil
		}
		return jsonResult(adapter.ToSummaryResponse(result))
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("marshal: %w", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

// toolError reports failures inside the result so the calling model can read them.
func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(errors.New(string(commonModels.KindOf(err)) + ": " + commonModels.PublicMessage(err)))
	return &res
}

func strategyNames() []string {
	strategies := pipelineModel.Strategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = string(s)
	}
	return names
}
