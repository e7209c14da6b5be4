// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import "fmt"

// getParams extracts parameters from a normalized JSON-RPC request.
func getParams(req map[string]any, method string) (map[string]any, error) {
	p, ok := req["params"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid %s params", method)
	}
	return p, nil
}

// getStringParam extracts a required string parameter from a params map.
func getStringParam(params map[string]any, method, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok {
		return "", fmt.Errorf("invalid params: %s requires string %q", method, key)
	}
	return v, nil
}

// getOptionalStringParam extracts an optional string parameter, returning an
// empty string when absent and an error only on a type mismatch.
func getOptionalStringParam(params map[string]any, method, key string) (string, error) {
	v, present := params[key]
	if !present {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid params: %s expects string %q", method, key)
	}
	return s, nil
}

// getMapParam extracts an object parameter, tolerating absence by returning
// an empty map so tool calls without arguments still work.
func getMapParam(params map[string]any, method, key string) (map[string]any, error) {
	v, present := params[key]
	if !present {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid params: %s expects object %q", method, key)
	}
	return m, nil
}
