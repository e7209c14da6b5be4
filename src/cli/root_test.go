// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/cli"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

func TestExecute_NoSDKName(t *testing.T) {
	os.Args = []string{"cmd"}
	err := cli.Execute(context.Background(), version)
	if !errors.Is(err, cli.ErrSDKNameRequired) {
		t.Errorf("expected ErrSDKNameRequired, got %v", err)
	}
}

func TestExecute_MissingSource(t *testing.T) {
	os.Args = []string{"cmd", "example.com/ghost", "--no-llm", "-s", filepath.Join(t.TempDir(), "missing")}
	err := cli.Execute(context.Background(), version)
	require.Error(t, err, "expected error for a nonexistent source directory")
}

func TestExecute_OfflineConversion(t *testing.T) {
	srcDir := t.TempDir()
	src := `package tiny

import "context"

// CreateItem stores a new item under the given key.
func CreateItem(ctx context.Context, key, value string) error { return nil }
`
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "tiny.go"), []byte(src), 0o644))
	outDir := t.TempDir()

	os.Args = []string{"cmd", "example.com/tiny", "--no-llm", "-s", srcDir, "-o", outDir, "-t"}
	err := cli.Execute(context.Background(), version)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "example_com_tiny_mcp_server.go"))
	assert.FileExists(t, filepath.Join(outDir, "example_com_tiny_mcp_config.json"))
}

func TestRenderMethodTable(t *testing.T) {
	methods := []inspect.Method{
		{
			Name:     "CreatePod",
			Receiver: "PodInterface",
			Package:  "k8s.io/client-go/kubernetes/typed/core/v1",
			Doc:      "CreatePod submits a pod to the API server.",
			Params:   []inspect.Param{{Name: "name", Type: "string"}},
		},
	}

	out := cli.RenderMethodTable(methods)
	assert.Contains(t, out, "PodInterface")
	assert.Contains(t, out, "CreatePod")
	assert.Contains(t, out, "|", "output is a markdown table")

	assert.Equal(t, "No methods to display", cli.RenderMethodTable(nil))
}
