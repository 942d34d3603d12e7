package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vinsol-ai/parley/core"
	"github.com/vinsol-ai/parley/core/insight"
	"github.com/vinsol-ai/parley/internal/bank"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	embedder contract.Embedder
}

func (h *toolHandler) handleAnalyzeResponse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question := request.GetString("question", "")
	answer := request.GetString("answer", "")
	if question == "" {
		return mcp.NewToolResultError("question must not be empty"), nil
	}

	analyzer := core.NewAnalyzer(h.baseCfg.Clone(), h.embedder, nil)
	record, err := analyzer.AnalyzeResponse(ctx, question, answer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSessionReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exchangesJSON := request.GetString("exchanges", "")

	var exchanges []schema.ExchangePair
	if err := json.Unmarshal([]byte(exchangesJSON), &exchanges); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid exchanges payload: %v", err)), nil
	}
	if len(exchanges) == 0 {
		return mcp.NewToolResultError("exchanges must contain at least one question/answer pair"), nil
	}

	analyzer := core.NewAnalyzer(h.baseCfg.Clone(), h.embedder, nil)
	records, err := analyzer.AnalyzeSession(ctx, exchanges)
	if err != nil && len(records) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("session analysis failed: %v", err)), nil
	}

	report, err := insight.Compute(records)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report computation failed: %v", err)), nil
	}

	payload := struct {
		Responses []schema.ResponseRecord `json:"responses"`
		*insight.Report
	}{Responses: records, Report: report}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSampleQuestions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	role := request.GetString("role", "")
	count := request.GetInt("count", h.baseCfg.QuestionCount)
	seed := request.GetInt("seed", 0)
	if count <= 0 {
		return mcp.NewToolResultError(fmt.Sprintf("count must be positive, got %d", count)), nil
	}

	b, err := bank.Load(h.baseCfg.QuestionBankPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load question bank: %v", err)), nil
	}

	questions, err := b.Sample(role, count, int64(seed), seed != 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sampling failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(map[string]any{"role": role, "questions": questions}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
