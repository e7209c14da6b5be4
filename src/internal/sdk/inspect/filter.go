// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"sort"
	"strings"
)

// actionVerbs are method-name prefixes that strongly indicate a callable
// operation rather than plumbing. These score highest.
var actionVerbs = []string{
	"create", "delete", "update", "list", "get", "patch", "replace",
	"scale", "deploy", "apply", "exec", "logs", "watch",
}

// mediumVerbs indicate operations that are useful but less central.
var mediumVerbs = []string{
	"read", "write", "send", "fetch", "pull", "push", "start", "stop",
	"restart", "enable", "disable", "add", "remove", "set",
}

// resourceWords mark methods that operate on infrastructure resources.
var resourceWords = []string{
	"pod", "service", "deployment", "namespace", "node", "secret",
	"configmap", "ingress", "job", "cronjob", "daemonset", "statefulset",
	"replicaset", "volume", "cluster", "container", "machine", "disk",
	"repository", "issue", "release", "workflow",
}

// skipPatterns mark serialization, lifecycle, and other plumbing that never
// makes a sensible tool.
var skipPatterns = []string{
	"marshal", "unmarshal", "serialize", "deserialize", "encode", "decode",
	"string", "error", "close", "clone", "copy", "deepcopy", "hash",
	"validate", "sanitize", "convert", "parse", "format",
}

// IsUseful reports whether a discovered method is worth analyzing. It skips
// serialization and utility plumbing, then keeps anything that looks like an
// action, touches a known resource kind, or carries a substantial doc comment.
func IsUseful(m Method) bool {
	name := strings.ToLower(m.Name)

	for _, p := range skipPatterns {
		if strings.Contains(name, p) {
			return false
		}
	}
	// Methods whose only argument is a context are accessors or lifecycle
	// hooks, not operations a tool caller can parameterize.
	if countRealParams(m) == 0 {
		return false
	}

	for _, v := range actionVerbs {
		if strings.HasPrefix(name, v) {
			return true
		}
	}
	for _, w := range resourceWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return len(m.Doc) > 100
}

// Score assigns the ordering weight later used by Prioritize. Strong action
// verbs dominate, resource-oriented names and good docs add a little, and
// absurdly long names lose points.
func Score(m Method) int {
	name := strings.ToLower(m.Name)
	score := 0
	for _, v := range actionVerbs {
		if strings.HasPrefix(name, v) {
			score += 10
			break
		}
	}
	for _, v := range mediumVerbs {
		if strings.HasPrefix(name, v) {
			score += 5
			break
		}
	}
	for _, w := range resourceWords {
		if strings.Contains(name, w) {
			score += 3
			break
		}
	}
	if len(m.Doc) > 100 {
		score += 2
	}
	if len(m.Name) > 50 {
		score -= 2
	}
	return score
}

// Filter returns the methods that pass IsUseful, preserving order.
func Filter(methods []Method) []Method {
	useful := make([]Method, 0, len(methods))
	for _, m := range methods {
		if IsUseful(m) {
			useful = append(useful, m)
		}
	}
	return useful
}

// Prioritize sorts methods in place by descending score; ties break on name
// so output stays deterministic across runs.
func Prioritize(methods []Method) {
	for i := range methods {
		methods[i].score = Score(methods[i])
	}
	sort.SliceStable(methods, func(i, j int) bool {
		if methods[i].score != methods[j].score {
			return methods[i].score > methods[j].score
		}
		return methods[i].Name < methods[j].Name
	})
}

// countRealParams counts parameters that a tool caller would actually supply,
// excluding the context argument Go SDKs conventionally take first.
func countRealParams(m Method) int {
	n := 0
	for _, p := range m.Params {
		if p.Type == "context.Context" {
			continue
		}
		n++
	}
	return n
}
