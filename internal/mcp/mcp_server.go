// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vinsol-ai/parley/internal/contract"
)

// NewMCPServer initializes and configures the Parley MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, embedder contract.Embedder) *server.MCPServer {
	s := server.NewMCPServer(
		"Parley Interview Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		embedder: embedder,
	}

	// --- 1. Tool: analyze_response ---
	s.AddTool(mcp.NewTool("analyze_response",
		mcp.WithDescription("Score an interview answer against its question: relevance, confidence, clarity, overall score and feedback."),
		mcp.WithString("question", mcp.Description("The interview question that was asked."), mcp.Required()),
		mcp.WithString("answer", mcp.Description("The transcribed answer to score."), mcp.Required()),
	), h.handleAnalyzeResponse)

	// --- 2. Tool: session_report ---
	s.AddTool(mcp.NewTool("session_report",
		mcp.WithDescription("Score a full set of question/answer pairs and produce session statistics, strengths, weaknesses, recommendations and a summary."),
		mcp.WithString("exchanges", mcp.Description("JSON array of {question, answer} objects in session order."), mcp.Required()),
	), h.handleSessionReport)

	// --- 3. Tool: sample_questions ---
	s.AddTool(mcp.NewTool("sample_questions",
		mcp.WithDescription("Sample interview questions for a role from the question bank."),
		mcp.WithString("role", mcp.Description("Interview role (e.g. 'Software Engineer')."), mcp.Required()),
		mcp.WithNumber("count", mcp.Description("Number of questions to sample. Defaults to the configured count.")),
		mcp.WithNumber("seed", mcp.Description("Random seed for reproducible sampling.")),
	), h.handleSampleQuestions)

	return s
}

// StartMCPServer starts the Parley MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, embedder contract.Embedder) error {
	s := NewMCPServer(baseCfg, embedder)
	return server.ServeStdio(s)
}
