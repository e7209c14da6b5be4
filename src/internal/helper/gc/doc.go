// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides buffer pooling helpers that reduce allocation overhead
// during code generation and LLM response handling.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// reusable byte buffers without exposing the third-party types directly.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
