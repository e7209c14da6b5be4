// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc_test

import (
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/internal/helper/gc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPool(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "GetReturnsUsableBuffer",
			testFunc: func(t *testing.T) {
				buf := gc.Default.Get()
				defer func() {
					buf.Reset()
					gc.Default.Put(buf)
				}()

				n, err := buf.WriteString("package main")
				require.NoError(t, err, "WriteString should not fail")
				assert.Equal(t, len("package main"), n, "expected full write")
				assert.Equal(t, "package main", string(buf.Bytes()), "buffer content mismatch")
			},
		},
		{
			name: "ResetClearsContent",
			testFunc: func(t *testing.T) {
				buf := gc.Default.Get()
				defer gc.Default.Put(buf)

				_, err := buf.WriteString("stale data")
				require.NoError(t, err)
				buf.Reset()

				assert.Empty(t, buf.Bytes(), "reset buffer must be empty")
			},
		},
		{
			name: "ReadFrom",
			testFunc: func(t *testing.T) {
				buf := gc.Default.Get()
				defer func() {
					buf.Reset()
					gc.Default.Put(buf)
				}()

				n, err := buf.ReadFrom(strings.NewReader("tool definitions"))
				require.NoError(t, err, "ReadFrom should not fail")
				assert.Equal(t, int64(len("tool definitions")), n, "expected full read")
				assert.Equal(t, "tool definitions", string(buf.Bytes()), "buffer content mismatch")
			},
		},
		{
			name: "ReuseAfterPut",
			testFunc: func(t *testing.T) {
				buf := gc.Default.Get()
				_, err := buf.WriteString("first use")
				require.NoError(t, err)
				buf.Reset()
				gc.Default.Put(buf)

				// A fresh Get must hand out an empty buffer, whether or not
				// it is the same underlying object.
				buf2 := gc.Default.Get()
				defer gc.Default.Put(buf2)
				assert.Empty(t, buf2.Bytes(), "pooled buffer must come back empty")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
