package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
	"github.com/codelens/codelens/internal/adapters/outbound/gitinfo"
	"github.com/codelens/codelens/internal/adapters/outbound/history"
	"github.com/codelens/codelens/internal/adapters/outbound/loader"
	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

// registerTools registers all CodeLens MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. codelens_analyze
	s.AddTool(
		mcplib.NewTool("codelens_analyze",
			mcplib.WithDescription("Analyze source code and return the full quality report as JSON"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Source code to analyze"),
			),
			mcplib.WithString("language",
				mcplib.Description("Language id (javascript, python, cpp, java, sql); defaults to generic"),
			),
			mcplib.WithString("filename",
				mcplib.Description("Original filename, used for language inference when language is omitted"),
			),
		),
		handleAnalyze(),
	)

	// 2. codelens_refactor
	s.AddTool(
		mcplib.NewTool("codelens_refactor",
			mcplib.WithDescription("Apply the language's refactoring rules to source code and return the rewritten code with an improvement summary"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Source code to refactor"),
			),
			mcplib.WithString("language",
				mcplib.Description("Language id (javascript, python, cpp, java, sql); defaults to generic"),
			),
			mcplib.WithString("filename",
				mcplib.Description("Original filename, used for language inference when language is omitted"),
			),
			mcplib.WithBoolean("aggressive_sql",
				mcplib.Description("Enable subquery splitting and index advisories for SQL"),
			),
		),
		handleRefactor(),
	)

	// 3. codelens_scan
	s.AddTool(
		mcplib.NewTool("codelens_scan",
			mcplib.WithDescription("Analyze every recognized source file under the project root and return the aggregated report"),
		),
		handleScan(projectPath),
	)

	// 4. codelens_languages
	s.AddTool(
		mcplib.NewTool("codelens_languages",
			mcplib.WithDescription("List supported languages and the refactoring rules each applies, in order"),
		),
		handleLanguages(),
	)
}

func resolveLanguage(request mcplib.CallToolRequest) domain.Language {
	args := request.GetArguments()
	if langStr, ok := args["language"].(string); ok && langStr != "" {
		return domain.NormalizeLanguage(langStr)
	}
	if filename, ok := args["filename"].(string); ok && filename != "" {
		return domain.LanguageFromFilename(filename)
	}
	return domain.LangGeneric
}

func handleAnalyze() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewAnalyzeService(loader.New(), config.New(), gitinfo.New(), history.New())
		unit := domain.SourceUnit{Text: code, Language: resolveLanguage(request)}
		result := svc.AnalyzeSource(unit, domain.DefaultConfig())
		return jsonResult(result)
	}
}

func handleRefactor() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg := domain.DefaultConfig()
		if aggressive, ok := request.GetArguments()["aggressive_sql"].(bool); ok {
			cfg.AggressiveSQL = aggressive
		}

		svc := application.NewRefactorService(loader.New(), config.New())
		unit := domain.SourceUnit{Text: code, Language: resolveLanguage(request)}
		result := svc.RefactorSource(unit, cfg)
		return jsonResult(result)
	}
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewAnalyzeService(loader.New(), config.New(), gitinfo.New(), history.New())
		report, err := svc.ScanTree(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLanguages() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		type langInfo struct {
			Language string   `json:"language"`
			Rules    []string `json:"rules"`
		}
		var infos []langInfo
		for _, lang := range rules.SupportedLanguages() {
			infos = append(infos, langInfo{Language: string(lang), Rules: rules.RuleNames(lang)})
		}
		infos = append(infos, langInfo{Language: string(domain.LangGeneric), Rules: rules.RuleNames(domain.LangGeneric)})
		return jsonResult(infos)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
