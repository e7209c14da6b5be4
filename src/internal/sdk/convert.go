// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sdk

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/generate"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
)

// DefaultOutputDir is where generated artifacts land unless overridden.
const DefaultOutputDir = "generated_mcp_servers"

// Options configures one conversion run. Zero values select the documented
// defaults; a nil Model runs the offline heuristic path.
type Options struct {
	SDKName    string
	SourceDir  string
	OutputDir  string
	MaxMethods int
	BatchSize  int
	MaxDepth   int
	Model      analyze.Model
	Log        logger.Logger
}

// Outcome carries the intermediate and final products of a run so callers
// can report on each phase.
type Outcome struct {
	Methods []inspect.Method
	Tools   []analyze.Tool
	Result  generate.Result
}

// Convert runs discovery, analysis, and generation end to end.
func Convert(ctx context.Context, opts Options) (*Outcome, error) {
	if opts.SDKName == "" {
		return nil, fmt.Errorf("sdk: no SDK name given")
	}
	log := opts.Log
	if log == nil {
		log = logger.NewCLILogger()
	}

	methods, err := Discover(opts)
	if err != nil {
		return nil, err
	}

	tools, err := Analyze(ctx, opts, methods)
	if err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	result, err := generate.New(outputDir, log).Generate(opts.SDKName, tools)
	if err != nil {
		return nil, err
	}

	return &Outcome{Methods: methods, Tools: tools, Result: result}, nil
}

// Discover runs only the introspection phase.
func Discover(opts Options) ([]inspect.Method, error) {
	in := inspect.New(opts.SDKName, opts.Log)
	in.SourceDir = opts.SourceDir
	if opts.MaxDepth > 0 {
		in.MaxDepth = opts.MaxDepth
	}
	return in.Discover()
}

// Analyze runs only the analysis phase over already-discovered methods.
func Analyze(ctx context.Context, opts Options, methods []inspect.Method) ([]analyze.Tool, error) {
	a := analyze.New(opts.Model, opts.Log)
	if opts.MaxMethods > 0 {
		a.MaxMethods = opts.MaxMethods
	}
	if opts.BatchSize > 0 {
		a.BatchSize = opts.BatchSize
	}
	return a.Analyze(ctx, opts.SDKName, methods)
}
