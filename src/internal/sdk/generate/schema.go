// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generate

import (
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
	"github.com/xeipuuv/gojsonschema"
)

// permissiveSchema accepts any argument object. Tools demoted to it still
// work; they just stop validating input client-side.
var permissiveSchema = map[string]any{
	"type":       "object",
	"properties": map[string]any{},
}

// ValidateSchemas compiles every tool's input schema as JSON Schema and
// replaces the ones that fail with a permissive object schema. Model output
// is the usual culprit; discarding the whole tool over a bad schema would
// throw away a good name and description.
func ValidateSchemas(tools []analyze.Tool, log logger.Logger) []analyze.Tool {
	out := make([]analyze.Tool, len(tools))
	for i, t := range tools {
		if err := compileSchema(t); err != nil {
			log.Printf("Warning: tool %s has an invalid input schema (%v), using a permissive one", t.Name, err)
			t.InputSchema = permissiveSchema
		}
		out[i] = t
	}
	return out
}

func compileSchema(t analyze.Tool) error {
	loader := gojsonschema.NewBytesLoader(t.SchemaJSON())
	_, err := gojsonschema.NewSchema(loader)
	return err
}
