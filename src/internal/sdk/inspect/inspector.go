// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"errors"
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/sdk-to-mcp/src/logger"
)

// Sentinel errors returned by Discover so callers can distinguish a missing
// SDK from an SDK with nothing worth converting.
var (
	ErrSDKNotFound     = errors.New("inspect: sdk source not found")
	ErrNoMethods       = errors.New("inspect: no exported methods found")
	ErrNoUsefulMethods = errors.New("inspect: no methods passed the usefulness filter")
)

// Param is a single parameter or result in a method signature.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Method is one discovered SDK operation: a method on a concrete type, an
// operation declared on an exported interface, or a package-level function
// (Receiver is empty for the latter).
type Method struct {
	Name     string  `json:"name"`
	Receiver string  `json:"receiver,omitempty"`
	Package  string  `json:"package"`
	Doc      string  `json:"doc,omitempty"`
	Params   []Param `json:"params,omitempty"`
	Results  []Param `json:"results,omitempty"`
	score    int
}

// Signature renders the method as it would appear in Go source, without the
// func keyword. Used in prompts and discovery tables.
func (m Method) Signature() string {
	var sb strings.Builder
	if m.Receiver != "" {
		sb.WriteString(m.Receiver)
		sb.WriteByte('.')
	}
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Name != "" {
			sb.WriteString(p.Name)
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Type)
	}
	sb.WriteByte(')')
	switch len(m.Results) {
	case 0:
	case 1:
		sb.WriteByte(' ')
		sb.WriteString(m.Results[0].Type)
	default:
		sb.WriteString(" (")
		for i, r := range m.Results {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.Type)
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// Summary returns the first sentence-ish line of the doc comment.
func (m Method) Summary() string {
	docText := strings.TrimSpace(m.Doc)
	if docText == "" {
		return ""
	}
	if idx := strings.IndexByte(docText, '\n'); idx >= 0 {
		docText = docText[:idx]
	}
	return strings.TrimSpace(docText)
}

// Introspector walks SDK source and produces a prioritized method list.
// The zero value is not usable; construct it with New.
type Introspector struct {
	SDK       string
	Mapping   Mapping
	SourceDir string // explicit source override, skips cache resolution
	MaxDepth  int    // subdirectory recursion bound below the root package

	log logger.Logger
}

// DefaultMaxDepth bounds the walk so large SDK trees stay tractable.
const DefaultMaxDepth = 3

// New builds an Introspector for the given SDK name.
func New(sdkName string, log logger.Logger) *Introspector {
	if log == nil {
		log = logger.NewCLILogger()
	}
	return &Introspector{
		SDK:      sdkName,
		Mapping:  MappingFor(sdkName),
		MaxDepth: DefaultMaxDepth,
		log:      log,
	}
}

// Discover resolves the SDK source, walks it, and returns the useful methods
// ordered by descending priority. Scoring favors action verbs (create, delete,
// list, ...), resource-oriented names, and methods with substantial doc
// comments, so the most tool-worthy operations survive any later cap.
func (in *Introspector) Discover() ([]Method, error) {
	dir, err := in.resolveSourceDir()
	if err != nil {
		return nil, err
	}
	in.log.Printf("Inspecting %s source at %s", in.SDK, dir)

	var all []Method
	if err := in.walkDir(dir, in.Mapping.ImportName, 0, &all); err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s (try: %s)", ErrNoMethods, dir, in.Mapping.InstallCmd)
	}
	in.log.Printf("Found %d exported methods, filtering for usefulness", len(all))

	useful := Filter(all)
	if len(useful) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoUsefulMethods, in.SDK)
	}
	Prioritize(useful)
	in.log.Printf("Kept %d useful methods", len(useful))
	return useful, nil
}

func (in *Introspector) walkDir(dir, importPath string, depth int, out *[]Method) error {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, sourceFileFilter, parser.ParseComments)
	if err != nil {
		// A directory with no buildable Go files is common in SDK trees
		// (docs, testdata siblings). Log and keep walking.
		in.log.Printf("Skipping %s: %v", dir, err)
	}
	for _, pkg := range pkgs {
		in.collectPackage(doc.New(pkg, importPath, doc.AllDecls), out)
	}

	if depth >= in.MaxDepth {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("inspect: reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || skipDir(entry.Name()) {
			continue
		}
		sub := filepath.Join(dir, entry.Name())
		if err := in.walkDir(sub, path.Join(importPath, entry.Name()), depth+1, out); err != nil {
			return err
		}
	}
	return nil
}

func sourceFileFilter(fi fs.FileInfo) bool {
	name := fi.Name()
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

func skipDir(name string) bool {
	switch name {
	case "internal", "testdata", "vendor", "fake", "scheme":
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// collectPackage gathers methods on exported concrete types, operations on
// exported interfaces, and package-level functions. When the mapping names
// MainTypes, only those types contribute; the focused walk is what keeps
// client-style SDKs (kubernetes, azure) from drowning the result in helpers.
func (in *Introspector) collectPackage(docPkg *doc.Package, out *[]Method) {
	focus := make(map[string]bool, len(in.Mapping.MainTypes))
	for _, t := range in.Mapping.MainTypes {
		focus[t] = true
	}

	for _, typ := range docPkg.Types {
		if !ast.IsExported(typ.Name) {
			continue
		}
		if len(focus) > 0 && !focus[typ.Name] {
			continue
		}
		for _, fn := range typ.Methods {
			if m, ok := methodFromFuncDecl(fn.Decl, fn.Doc, typ.Name, docPkg.ImportPath); ok {
				*out = append(*out, m)
			}
		}
		in.collectInterface(typ, docPkg.ImportPath, out)
	}

	if len(focus) == 0 {
		for _, fn := range docPkg.Funcs {
			if m, ok := methodFromFuncDecl(fn.Decl, fn.Doc, "", docPkg.ImportPath); ok {
				*out = append(*out, m)
			}
		}
	}
}

// collectInterface extracts operations declared on an exported interface type.
// Typed kubernetes clients expose their surface this way (PodInterface and
// friends), so plain receiver-method harvesting would miss them entirely.
func (in *Introspector) collectInterface(typ *doc.Type, importPath string, out *[]Method) {
	for _, spec := range typ.Decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok || ts.Name.Name != typ.Name {
			continue
		}
		iface, ok := ts.Type.(*ast.InterfaceType)
		if !ok || iface.Methods == nil {
			continue
		}
		for _, field := range iface.Methods.List {
			ft, ok := field.Type.(*ast.FuncType)
			if ok && len(field.Names) == 1 && ast.IsExported(field.Names[0].Name) {
				m := buildMethod(field.Names[0].Name, typ.Name, importPath, field.Doc.Text(), ft)
				*out = append(*out, m)
			}
		}
	}
}

func methodFromFuncDecl(decl *ast.FuncDecl, docText, receiver, importPath string) (Method, bool) {
	if decl == nil || !ast.IsExported(decl.Name.Name) {
		return Method{}, false
	}
	return buildMethod(decl.Name.Name, receiver, importPath, docText, decl.Type), true
}

func buildMethod(name, receiver, importPath, docText string, ft *ast.FuncType) Method {
	return Method{
		Name:     name,
		Receiver: receiver,
		Package:  importPath,
		Doc:      strings.TrimSpace(docText),
		Params:   fieldsToParams(ft.Params, "arg"),
		Results:  fieldsToParams(ft.Results, ""),
	}
}

// fieldsToParams flattens an ast field list, expanding grouped names
// (a, b string) into individual entries and synthesizing names for
// anonymous parameters.
func fieldsToParams(fl *ast.FieldList, anonPrefix string) []Param {
	if fl == nil || len(fl.List) == 0 {
		return nil
	}
	var params []Param
	for _, field := range fl.List {
		typeName := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			name := ""
			if anonPrefix != "" {
				name = fmt.Sprintf("%s%d", anonPrefix, len(params))
			}
			params = append(params, Param{Name: name, Type: typeName})
			continue
		}
		for _, ident := range field.Names {
			params = append(params, Param{Name: ident.Name, Type: typeName})
		}
	}
	return params
}
