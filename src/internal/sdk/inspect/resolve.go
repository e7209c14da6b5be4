// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// resolveSourceDir locates the SDK source tree, in order of preference:
// an explicit SourceDir, a vendor directory under the working directory,
// then the newest matching entry in the Go module cache.
func (in *Introspector) resolveSourceDir() (string, error) {
	if in.SourceDir != "" {
		if info, err := os.Stat(in.SourceDir); err == nil && info.IsDir() {
			return in.SourceDir, nil
		}
		return "", fmt.Errorf("%w: source directory %s does not exist", ErrSDKNotFound, in.SourceDir)
	}

	if dir := filepath.Join("vendor", filepath.FromSlash(in.Mapping.ImportName)); dirExists(dir) {
		return dir, nil
	}

	if dir, ok := in.moduleCacheDir(); ok {
		return dir, nil
	}
	return "", fmt.Errorf("%w: %s is not installed (try: %s)", ErrSDKNotFound, in.Mapping.ModulePath, in.Mapping.InstallCmd)
}

// moduleCacheDir searches $GOMODCACHE for the newest version of the mapped
// module and returns the subdirectory holding ImportName's package.
func (in *Introspector) moduleCacheDir() (string, bool) {
	cache := goModCache()
	if cache == "" {
		return "", false
	}
	escaped, err := escapeModulePath(in.Mapping.ModulePath)
	if err != nil {
		return "", false
	}
	matches, err := filepath.Glob(filepath.Join(cache, filepath.FromSlash(escaped)+"@*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	// Lexical order is good enough for picking "a" version when several are
	// cached; users who care pass --source or pin with go get.
	sort.Strings(matches)
	root := matches[len(matches)-1]

	rel := strings.TrimPrefix(in.Mapping.ImportName, in.Mapping.ModulePath)
	rel = strings.TrimPrefix(rel, "/")
	dir := root
	if rel != "" {
		dir = filepath.Join(root, filepath.FromSlash(rel))
	}
	if !dirExists(dir) {
		return "", false
	}
	return dir, true
}

func goModCache() string {
	if cache := os.Getenv("GOMODCACHE"); cache != "" {
		return cache
	}
	if out, err := exec.Command("go", "env", "GOMODCACHE").Output(); err == nil {
		if cache := strings.TrimSpace(string(out)); cache != "" {
			return cache
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "go", "pkg", "mod")
	}
	return ""
}

// escapeModulePath applies the module cache's case encoding: every uppercase
// letter becomes '!' followed by its lowercase form.
func escapeModulePath(modPath string) (string, error) {
	var sb strings.Builder
	for _, r := range modPath {
		if r == '!' {
			return "", fmt.Errorf("inspect: invalid module path %q", modPath)
		}
		if unicode.IsUpper(r) {
			sb.WriteByte('!')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
