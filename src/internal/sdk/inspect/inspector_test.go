// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientSource = `// Package widgets is a fake SDK used to exercise discovery.
package widgets

import "context"

// Client talks to the widget service.
type Client struct{}

// CreateWidget provisions a widget and returns its assigned identifier.
// The call blocks until the service acknowledges the widget.
func (c *Client) CreateWidget(ctx context.Context, name string, size int) (string, error) {
	return "", nil
}

// DeleteWidget removes a widget by identifier.
func (c *Client) DeleteWidget(ctx context.Context, id string) error { return nil }

// MarshalJSON implements json.Marshaler.
func (c *Client) MarshalJSON() ([]byte, error) { return nil, nil }

// unexportedHelper never shows up in discovery.
func (c *Client) unexportedHelper(n int) {}

// StoreInterface is the persistence surface behind the client.
type StoreInterface interface {
	// GetWidget fetches a widget by identifier.
	GetWidget(ctx context.Context, id string) (string, error)
	// ListWidgets enumerates widgets matching the given label selector.
	ListWidgets(ctx context.Context, selector string) ([]string, error)
}

// ApplyDefaults fills zero-valued fields on the given spec.
func ApplyDefaults(spec *Client, strict bool) error { return nil }
`

const nestedSource = `package nested

import "context"

// Scaler resizes widget fleets.
type Scaler struct{}

// ScaleFleet changes the replica count for a fleet.
func (s *Scaler) ScaleFleet(ctx context.Context, fleet string, replicas int32) error { return nil }
`

func writeFakeSDK(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "client.go"), []byte(clientSource), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "scaler.go"), []byte(nestedSource), 0o644))
	// Directories discovery must refuse to enter.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "internal", "x.go"), []byte("package x\nfunc CreateHidden(n int) {}\n"), 0o644))
	return dir
}

func TestDiscoverFakeSDK(t *testing.T) {
	in := inspect.New("example.com/widgets", nil)
	in.SourceDir = writeFakeSDK(t)

	methods, err := in.Discover()
	require.NoError(t, err, "discovery over a valid tree must succeed")

	byName := make(map[string]inspect.Method, len(methods))
	for _, m := range methods {
		byName[m.Name] = m
	}

	assert.Contains(t, byName, "CreateWidget", "receiver methods are discovered")
	assert.Contains(t, byName, "GetWidget", "interface operations are discovered")
	assert.Contains(t, byName, "ListWidgets")
	assert.Contains(t, byName, "ScaleFleet", "nested packages are walked")
	assert.NotContains(t, byName, "MarshalJSON", "serialization plumbing is filtered out")
	assert.NotContains(t, byName, "unexportedHelper")
	assert.NotContains(t, byName, "CreateHidden", "internal directories are skipped")

	create := byName["CreateWidget"]
	assert.Equal(t, "Client", create.Receiver)
	require.Len(t, create.Params, 3)
	assert.Equal(t, inspect.Param{Name: "ctx", Type: "context.Context"}, create.Params[0])
	assert.Equal(t, inspect.Param{Name: "size", Type: "int"}, create.Params[2])
	assert.Contains(t, create.Doc, "provisions a widget")
	assert.Equal(t, "CreateWidget provisions a widget and returns its assigned identifier.", create.Summary())

	get := byName["GetWidget"]
	assert.Equal(t, "StoreInterface", get.Receiver)
	require.Len(t, get.Results, 2)
	assert.Equal(t, "error", get.Results[1].Type)

	assert.Equal(t, "CreateWidget", methods[0].Name, "highest-scored action verb sorts first")
}

func TestDiscoverMissingSource(t *testing.T) {
	in := inspect.New("kubernetes", nil)
	in.SourceDir = filepath.Join(t.TempDir(), "nope")

	_, err := in.Discover()
	require.ErrorIs(t, err, inspect.ErrSDKNotFound)
}

func TestDiscoverNothingUseful(t *testing.T) {
	dir := t.TempDir()
	src := "package dull\n\n// String implements fmt.Stringer.\nfunc String(v int) string { return \"\" }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dull.go"), []byte(src), 0o644))

	in := inspect.New("example.com/dull", nil)
	in.SourceDir = dir

	_, err := in.Discover()
	require.ErrorIs(t, err, inspect.ErrNoUsefulMethods)
}

func TestMappingFor(t *testing.T) {
	k8s := inspect.MappingFor("Kubernetes")
	assert.Equal(t, "k8s.io/client-go", k8s.ModulePath, "lookup is case-insensitive")
	assert.NotEmpty(t, k8s.MainTypes)

	custom := inspect.MappingFor("example.com/acme/sdk")
	assert.Equal(t, "example.com/acme/sdk", custom.ImportName, "unknown names pass through as import paths")
	assert.Contains(t, custom.InstallCmd, "go get example.com/acme/sdk")
}
