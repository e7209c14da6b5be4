// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
)

// Tool is one MCP tool definition produced from an SDK method.
//
// InputSchema holds a JSON Schema object describing the tool arguments.
// SDKMethod and SDKReceiver record provenance so the generator can emit
// dispatch stubs and users can trace a tool back to the method it wraps.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Category    string         `json:"category,omitempty"`
	SDKMethod   string         `json:"sdkMethod,omitempty"`
	SDKReceiver string         `json:"sdkReceiver,omitempty"`
}

// SchemaJSON marshals the tool's input schema, substituting a permissive
// empty-object schema when none was set.
func (t Tool) SchemaJSON() json.RawMessage {
	schema := t.InputSchema
	if schema == nil {
		schema = map[string]any{"type": "object", "properties": map[string]any{}}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

// Defaults mirror the limits the converter has always shipped with: a hard cap
// keeps huge SDKs affordable, and tiny batches keep each prompt focused enough
// for the model to produce clean schemas.
const (
	DefaultMaxMethods = 100
	DefaultBatchSize  = 3
)

// Analyzer converts methods to tools, preferring the model and falling back
// to heuristics per batch.
type Analyzer struct {
	MaxMethods int
	BatchSize  int

	model Model
	log   logger.Logger
}

// New builds an Analyzer. A nil model disables LLM analysis entirely and
// every method goes through the heuristic path.
func New(model Model, log logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NewCLILogger()
	}
	return &Analyzer{
		MaxMethods: DefaultMaxMethods,
		BatchSize:  DefaultBatchSize,
		model:      model,
		log:        log,
	}
}

// Analyze converts the given methods (assumed already prioritized) into tool
// definitions. Batches are sent serially; a failed batch is converted
// heuristically rather than aborting the run. Tool names are deduplicated so
// the emitted server never registers the same name twice.
func (a *Analyzer) Analyze(ctx context.Context, sdkName string, methods []inspect.Method) ([]Tool, error) {
	if len(methods) == 0 {
		return nil, fmt.Errorf("analyze: no methods to analyze for %s", sdkName)
	}
	maxMethods := a.MaxMethods
	if maxMethods <= 0 {
		maxMethods = DefaultMaxMethods
	}
	if len(methods) > maxMethods {
		a.log.Printf("Capping analysis at %d of %d methods", maxMethods, len(methods))
		methods = methods[:maxMethods]
	}

	batchSize := a.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	tools := make([]Tool, 0, len(methods))
	for start := 0; start < len(methods); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analyze: canceled after %d tools: %w", len(tools), err)
		}
		end := min(start+batchSize, len(methods))
		batch := methods[start:end]
		tools = append(tools, a.analyzeBatch(ctx, sdkName, batch)...)
	}
	return dedupe(tools), nil
}

func (a *Analyzer) analyzeBatch(ctx context.Context, sdkName string, batch []inspect.Method) []Tool {
	if a.model == nil {
		return fallbackBatch(sdkName, batch)
	}

	prompt := BuildPrompt(sdkName, batch)
	raw, err := a.model.Generate(ctx, prompt)
	if err != nil {
		a.log.Printf("Model call failed (%v), converting %d methods heuristically", err, len(batch))
		return fallbackBatch(sdkName, batch)
	}

	tools, err := ParseTools(raw, batch)
	if err != nil {
		a.log.Printf("Unusable model response (%v), converting %d methods heuristically", err, len(batch))
		return fallbackBatch(sdkName, batch)
	}
	return tools
}

func fallbackBatch(sdkName string, batch []inspect.Method) []Tool {
	tools := make([]Tool, 0, len(batch))
	for _, m := range batch {
		tools = append(tools, FallbackTool(sdkName, m))
	}
	return tools
}

// dedupe keeps the first tool for each name and renames later collisions
// with the first free numeric suffix. Suffixed names count as taken too, so
// a rename can never collide with a name appearing further down the list.
func dedupe(tools []Tool) []Tool {
	taken := make(map[string]bool, len(tools))
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		name := t.Name
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", t.Name, n)
		}
		taken[name] = true
		t.Name = name
		out = append(out, t)
	}
	return out
}

// ParseTools extracts the outermost JSON array from a model response and
// decodes it. Models occasionally wrap output in code fences or commentary
// even when asked not to, so anything before the first '[' and after the
// last ']' is ignored. The batch provides provenance for positional matching
// when the model omits it.
func ParseTools(raw string, batch []inspect.Method) ([]Tool, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("analyze: response contains no JSON array")
	}

	var decoded []Tool
	if err := json.Unmarshal([]byte(raw[start:end+1]), &decoded); err != nil {
		return nil, fmt.Errorf("analyze: decoding tool array: %w", err)
	}

	tools := make([]Tool, 0, len(decoded))
	for i, t := range decoded {
		if t.Name == "" || t.Description == "" {
			continue
		}
		t.Name = SnakeCase(t.Name)
		if t.Category == "" {
			t.Category = Categorize(t.Name)
		}
		if t.InputSchema == nil {
			t.InputSchema = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		if t.SDKMethod == "" && i < len(batch) {
			t.SDKMethod = batch[i].Name
			t.SDKReceiver = batch[i].Receiver
		}
		tools = append(tools, t)
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("analyze: response array held no valid tools")
	}
	return tools, nil
}
