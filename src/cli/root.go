// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
	"github.com/spf13/cobra"
)

var (
	outputDir  string
	sourceDir  string
	maxMethods int
	batchSize  int
	maxDepth   int
	noLLM      bool
	showTable  bool
	modelName  string
)

// ErrSDKNameRequired is returned when the command runs without an SDK name.
var ErrSDKNameRequired = errors.New("cli: sdk name required (e.g. kubernetes, github, azure, or an import path)")

// apiKeyEnv is where the analyzer looks for Gemini credentials.
const apiKeyEnv = "GEMINI_API_KEY"

// Execute runs the root command and returns any execution error; callers
// decide how to report it.
func Execute(ctx context.Context, version string) error {
	rootCmd := &cobra.Command{
		Use:     posix.GetExecutableName() + " <sdk-name>",
		Short:   "Convert a Go SDK into a runnable MCP server",
		Long: `Discovers the callable surface of an installed Go SDK, asks a language model
to shape each method into an MCP tool definition (with an offline heuristic
fallback), and writes a standalone MCP server source file plus a client
configuration block.

Known SDK names: kubernetes, github, azure. Anything else is treated as a Go
import path resolved from --source, ./vendor, or the module cache.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          execCli,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", sdk.DefaultOutputDir, "directory for the generated server and config")
	rootCmd.Flags().StringVarP(&sourceDir, "source", "s", "", "explicit SDK source directory (skips vendor/module cache lookup)")
	rootCmd.Flags().IntVar(&maxMethods, "max-methods", analyze.DefaultMaxMethods, "cap on methods sent to analysis")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", analyze.DefaultBatchSize, "methods per model request")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "package walk depth below the SDK root (0 = default)")
	rootCmd.Flags().BoolVar(&noLLM, "no-llm", false, "skip the language model and convert heuristically")
	rootCmd.Flags().BoolVarP(&showTable, "table", "t", false, "print a markdown table of discovered methods")
	rootCmd.Flags().StringVar(&modelName, "model", analyze.DefaultModelName, "Gemini model used for analysis")

	return rootCmd.ExecuteContext(ctx)
}

// execCli runs the conversion pipeline for the named SDK: resolve the model
// (or fall back to heuristics), discover, analyze, generate, then report the
// written artifacts.
func execCli(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrSDKNameRequired
	}
	sdkName := args[0]
	log := logger.NewCLILogger()

	// Pick the analysis model
	var model analyze.Model
	switch {
	case noLLM:
		log.Println("LLM analysis disabled, converting heuristically")
	case os.Getenv(apiKeyEnv) == "":
		log.Printf("%s is not set, converting heuristically", apiKeyEnv)
	default:
		m, err := analyze.NewGeminiModel(cmd.Context(), os.Getenv(apiKeyEnv), modelName)
		if err != nil {
			return fmt.Errorf("configuring model: %w", err)
		}
		model = m
	}

	// Run the pipeline
	outcome, err := sdk.Convert(cmd.Context(), sdk.Options{
		SDKName:    sdkName,
		SourceDir:  sourceDir,
		OutputDir:  outputDir,
		MaxMethods: maxMethods,
		BatchSize:  batchSize,
		MaxDepth:   maxDepth,
		Model:      model,
		Log:        log,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", sdkName, err)
	}

	// Report the result
	out := cmd.OutOrStdout()
	if showTable {
		fmt.Fprintln(out, RenderMethodTable(outcome.Methods))
	}
	fmt.Fprintf(out, "Converted %d methods into %d tools\n", len(outcome.Methods), len(outcome.Tools))
	fmt.Fprintf(out, "Server: %s\n", outcome.Result.ServerPath)
	fmt.Fprintf(out, "Config: %s\n", outcome.Result.ConfigPath)
	return nil
}
