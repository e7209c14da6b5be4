// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generate

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/generate/templates"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/version"
)

const serverTemplateName = "server.go.tmpl"

// Result reports where Generate wrote its artifacts.
type Result struct {
	ServerPath string `json:"serverPath"`
	ConfigPath string `json:"configPath"`
	ToolCount  int    `json:"toolCount"`
}

// Generator renders tools into a server file and a client config block.
type Generator struct {
	OutputDir string
	Templates templates.EmbedFS

	log logger.Logger
}

// New builds a Generator writing into outputDir (the working directory when
// empty), reading templates from the embedded filesystem.
func New(outputDir string, log logger.Logger) *Generator {
	if log == nil {
		log = logger.NewCLILogger()
	}
	if outputDir == "" {
		outputDir = "."
	}
	return &Generator{
		OutputDir: outputDir,
		Templates: templates.MagicEmbed,
		log:       log,
	}
}

// Generate writes <sdk>_mcp_server.go and <sdk>_mcp_config.json, replacing
// whatever a previous run left behind. Schemas are validated first; the
// server source is gofmt-formatted when possible and written as-is with a
// warning when formatting fails, so a template regression never loses output.
func (g *Generator) Generate(sdkName string, tools []analyze.Tool) (Result, error) {
	if len(tools) == 0 {
		return Result{}, fmt.Errorf("generate: no tools to generate for %s", sdkName)
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("generate: creating output directory: %w", err)
	}

	tools = ValidateSchemas(tools, g.log)
	base := sanitizeName(sdkName)

	serverPath := filepath.Join(g.OutputDir, base+"_mcp_server.go")
	if err := g.writeServer(serverPath, sdkName, tools); err != nil {
		return Result{}, err
	}

	configPath := filepath.Join(g.OutputDir, base+"_mcp_config.json")
	if err := g.writeConfig(configPath, sdkName, serverPath, tools); err != nil {
		return Result{}, err
	}

	g.log.Printf("Generated %s and %s (%d tools)", serverPath, configPath, len(tools))
	return Result{ServerPath: serverPath, ConfigPath: configPath, ToolCount: len(tools)}, nil
}

// serverData is the root context for the server template.
type serverData struct {
	Command    string
	SDKName    string
	ServerName string
	Version    string
	Tools      []toolData
}

type toolData struct {
	Name          string
	Description   string
	Schema        string
	HandlerSuffix string
	SDKCall       string
	Required      []string
}

func (g *Generator) writeServer(path, sdkName string, tools []analyze.Tool) error {
	src, err := g.Templates.ReadFile(serverTemplateName)
	if err != nil {
		return fmt.Errorf("generate: loading server template: %w", err)
	}
	tmpl, err := template.New(serverTemplateName).Parse(string(src))
	if err != nil {
		return fmt.Errorf("generate: parsing server template: %w", err)
	}

	data := serverData{
		Command:    posix.GetExecutableName(),
		SDKName:    sdkName,
		ServerName: sdkName + "-mcp-server",
		Version:    version.Version,
		Tools:      make([]toolData, 0, len(tools)),
	}
	for _, t := range tools {
		data.Tools = append(data.Tools, toolData{
			Name:          t.Name,
			Description:   t.Description,
			Schema:        string(t.SchemaJSON()),
			HandlerSuffix: handlerSuffix(t.Name),
			SDKCall:       sdkCall(t),
			Required:      requiredArgs(t),
		})
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	if err := tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("generate: executing server template: %w", err)
	}

	out := buf.Bytes()
	if formatted, err := format.Source(out); err != nil {
		g.log.Printf("Warning: generated server does not gofmt cleanly (%v), writing unformatted source", err)
	} else {
		out = formatted
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("generate: writing %s: %w", path, err)
	}
	return nil
}

func sdkCall(t analyze.Tool) string {
	switch {
	case t.SDKMethod == "":
		return t.Name
	case t.SDKReceiver != "":
		return t.SDKReceiver + "." + t.SDKMethod
	}
	return t.SDKMethod
}

// requiredArgs pulls the schema's required list so the template can emit
// presence checks. Entries of unexpected types are ignored.
func requiredArgs(t analyze.Tool) []string {
	if t.InputSchema == nil {
		return nil
	}
	var out []string
	switch req := t.InputSchema["required"].(type) {
	case []string:
		out = req
	case []any:
		for _, v := range req {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// titleCaser capitalizes identifier segments without touching the rest of the
// word, so acronyms produced by the analyzer survive as-is.
var titleCaser = cases.Title(language.English, cases.NoLower)

// handlerSuffix turns a snake_case tool name into a CamelCase Go identifier
// suffix, so create_pod yields handleCreatePod in the emitted server.
func handlerSuffix(toolName string) string {
	segments := strings.FieldsFunc(toolName, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(segments) == 0 {
		return "Tool"
	}

	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(titleCaser.String(seg))
	}
	return sb.String()
}

// sanitizeName maps an SDK name (possibly a full import path) to a safe file
// name stem: example.com/acme/sdk becomes example_com_acme_sdk.
func sanitizeName(sdkName string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, sdkName)
	mapped = strings.Trim(mapped, "_")
	if mapped == "" {
		return "sdk"
	}
	return mapped
}
