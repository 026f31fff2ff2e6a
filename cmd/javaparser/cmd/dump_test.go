package cmd

import (
	"bytes"
	"testing"

	"github.com/cwbudde/go-javaparser/parser"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tidwall/gjson"
)

func TestJSONDumpQueryableWithGJSON(t *testing.T) {
	unit, err := parser.ParseSource([]byte("package a.b; class Greeter { void hi(){ System.out.println(1); } }"), "test.java")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}

	doc, err := jsonDump(unit)
	if err != nil {
		t.Fatalf("jsonDump: %v", err)
	}

	if !gjson.ValidBytes(doc) {
		t.Fatalf("jsonDump produced invalid JSON: %s", doc)
	}

	root := gjson.ParseBytes(doc)
	if kind := root.Get("kind").String(); kind != "CompilationUnit" {
		t.Errorf("kind = %q, want CompilationUnit", kind)
	}
	if pkgName := root.Get("Package.Name").String(); pkgName != "a.b" {
		t.Errorf("Package.Name = %q, want a.b", pkgName)
	}
	if className := root.Get("Types.0.Name").String(); className != "Greeter" {
		t.Errorf("Types.0.Name = %q, want Greeter", className)
	}
	if methodName := root.Get("Types.0.Members.0.Name").String(); methodName != "hi" {
		t.Errorf("Types.0.Members.0.Name = %q, want hi", methodName)
	}
}

func TestYAMLDumpIncludesNodeKind(t *testing.T) {
	unit, err := parser.ParseSource([]byte("class C {}"), "test.java")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	doc, err := yamlDump(unit)
	if err != nil {
		t.Fatalf("yamlDump: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("yamlDump produced no output")
	}
}

// TestTextDumpSnapshot pins the indented-tree rendering of a small, stable
// AST against a recorded snapshot, the same way the teacher package snapshots
// fixture output with go-snaps.
func TestTextDumpSnapshot(t *testing.T) {
	unit, err := parser.ParseSource([]byte("class Point { int x; int y; }"), "test.java")
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	var buf bytes.Buffer
	textDump(&buf, unit, 0)
	snaps.MatchSnapshot(t, buf.String())
}
