// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analyze_test

import (
	"context"
	"errors"
	"testing"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/analyze"
	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/sdk/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel replays canned responses and records the prompts it saw.
type fakeModel struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "[]", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func sampleMethods() []inspect.Method {
	return []inspect.Method{
		{
			Name:     "CreatePod",
			Receiver: "PodInterface",
			Package:  "k8s.io/client-go/kubernetes/typed/core/v1",
			Doc:      "CreatePod submits a pod to the API server.",
			Params: []inspect.Param{
				{Name: "ctx", Type: "context.Context"},
				{Name: "pod", Type: "*v1.Pod"},
				{Name: "opts", Type: "metav1.CreateOptions"},
			},
		},
		{
			Name:     "DeletePod",
			Receiver: "PodInterface",
			Package:  "k8s.io/client-go/kubernetes/typed/core/v1",
			Params: []inspect.Param{
				{Name: "ctx", Type: "context.Context"},
				{Name: "name", Type: "string"},
				{Name: "opts", Type: "*metav1.DeleteOptions"},
			},
		},
	}
}

func TestAnalyzeWithModel(t *testing.T) {
	model := &fakeModel{responses: []string{
		`Here are your tools:
[
  {"name": "CreatePod", "description": "Create a pod in the cluster.",
   "inputSchema": {"type": "object", "properties": {"manifest": {"type": "object"}}, "required": ["manifest"]}},
  {"name": "delete_pod", "description": "Delete a pod by name.",
   "inputSchema": {"type": "object", "properties": {"name": {"type": "string"}}, "required": ["name"]}}
]`,
	}}

	a := analyze.New(model, nil)
	tools, err := a.Analyze(context.Background(), "kubernetes", sampleMethods())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.Equal(t, "create_pod", tools[0].Name, "model-chosen names are normalized to snake_case")
	assert.Equal(t, "Create a pod in the cluster.", tools[0].Description)
	assert.Equal(t, "CreatePod", tools[0].SDKMethod, "provenance is filled positionally when the model omits it")
	assert.Equal(t, "PodInterface", tools[0].SDKReceiver)
	assert.Equal(t, "delete_pod", tools[1].Name)

	require.Len(t, model.prompts, 1, "two methods fit one default batch")
	assert.Contains(t, model.prompts[0], "PodInterface.CreatePod(ctx context.Context, pod *v1.Pod, opts metav1.CreateOptions)")
	assert.Contains(t, model.prompts[0], "kubernetes SDK methods")
}

func TestAnalyzeFallsBackOnModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exhausted")}

	a := analyze.New(model, nil)
	tools, err := a.Analyze(context.Background(), "kubernetes", sampleMethods())
	require.NoError(t, err, "model failure must not abort the run")
	require.Len(t, tools, 2)

	assert.Equal(t, "pod_interface_create_pod", tools[0].Name)
	assert.Equal(t, "CreatePod submits a pod to the API server.", tools[0].Description)
}

func TestAnalyzeFallsBackOnGarbageResponse(t *testing.T) {
	model := &fakeModel{responses: []string{"I cannot help with that."}}

	a := analyze.New(model, nil)
	tools, err := a.Analyze(context.Background(), "kubernetes", sampleMethods())
	require.NoError(t, err)
	require.Len(t, tools, 2, "heuristic conversion covers the failed batch")
}

func TestAnalyzeBatching(t *testing.T) {
	methods := make([]inspect.Method, 7)
	for i := range methods {
		methods[i] = inspect.Method{
			Name:    "CreateThing" + string(rune('A'+i)),
			Package: "example.com/sdk",
			Params:  []inspect.Param{{Name: "name", Type: "string"}},
		}
	}
	model := &fakeModel{err: errors.New("offline")}

	a := analyze.New(model, nil)
	a.BatchSize = 3
	tools, err := a.Analyze(context.Background(), "example", methods)
	require.NoError(t, err)

	assert.Len(t, tools, 7)
	assert.Len(t, model.prompts, 3, "7 methods at batch size 3 means 3 serial calls")
}

func TestAnalyzeCapsMethods(t *testing.T) {
	methods := make([]inspect.Method, 12)
	for i := range methods {
		methods[i] = inspect.Method{
			Name:    "CreateRes" + string(rune('A'+i)),
			Package: "example.com/sdk",
			Params:  []inspect.Param{{Name: "name", Type: "string"}},
		}
	}

	a := analyze.New(nil, nil)
	a.MaxMethods = 5
	tools, err := a.Analyze(context.Background(), "example", methods)
	require.NoError(t, err)
	assert.Len(t, tools, 5, "method cap bounds the output")
}

func TestAnalyzeNilModelUsesHeuristics(t *testing.T) {
	a := analyze.New(nil, nil)
	tools, err := a.Analyze(context.Background(), "kubernetes", sampleMethods())
	require.NoError(t, err)
	require.Len(t, tools, 2)

	schema := tools[1].InputSchema
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "opts")
	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"name"}, required, "pointer options params are optional, context is dropped")
}

func TestAnalyzeDeduplicatesNames(t *testing.T) {
	methods := []inspect.Method{
		{Name: "Create", Receiver: "Pods", Package: "p", Params: []inspect.Param{{Name: "n", Type: "string"}}},
		{Name: "Create", Receiver: "Pods", Package: "q", Params: []inspect.Param{{Name: "n", Type: "string"}}},
	}

	a := analyze.New(nil, nil)
	tools, err := a.Analyze(context.Background(), "example", methods)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "pods_create", tools[0].Name)
	assert.Equal(t, "pods_create_2", tools[1].Name)
}

func TestAnalyzeDedupeSkipsTakenSuffixes(t *testing.T) {
	// A renamed collision must not land on a name the model already used
	// further down the list.
	model := &fakeModel{responses: []string{
		`[
  {"name": "scale", "description": "Scale a fleet.",
   "inputSchema": {"type": "object", "properties": {}}},
  {"name": "scale", "description": "Scale a node pool.",
   "inputSchema": {"type": "object", "properties": {}}},
  {"name": "scale_2", "description": "Scale a second cluster.",
   "inputSchema": {"type": "object", "properties": {}}}
]`,
	}}
	methods := []inspect.Method{
		{Name: "ScaleFleet", Package: "p", Params: []inspect.Param{{Name: "n", Type: "string"}}},
		{Name: "ScalePool", Package: "p", Params: []inspect.Param{{Name: "n", Type: "string"}}},
		{Name: "ScaleCluster", Package: "p", Params: []inspect.Param{{Name: "n", Type: "string"}}},
	}

	a := analyze.New(model, nil)
	tools, err := a.Analyze(context.Background(), "example", methods)
	require.NoError(t, err)
	require.Len(t, tools, 3)

	names := make(map[string]int, len(tools))
	for _, tool := range tools {
		names[tool.Name]++
	}
	for name, count := range names {
		assert.Equal(t, 1, count, "tool name %q must be unique", name)
	}
	assert.Equal(t, "scale", tools[0].Name)
	assert.Equal(t, "scale_2", tools[1].Name)
	assert.Equal(t, "scale_2_2", tools[2].Name, "literal scale_2 finds the next free suffix")
}
