package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputPrecedence(t *testing.T) {
	t.Run("eval flag wins", func(t *testing.T) {
		src, name, err := readInput("class C {}", []string{"ignored.java"})
		if err != nil {
			t.Fatalf("readInput: %v", err)
		}
		if string(src) != "class C {}" || name != "<eval>" {
			t.Errorf("got (%q, %q), want (\"class C {}\", \"<eval>\")", src, name)
		}
	})

	t.Run("file argument", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "Sample.java")
		if err := os.WriteFile(path, []byte("class Sample {}"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		src, name, err := readInput("", []string{path})
		if err != nil {
			t.Fatalf("readInput: %v", err)
		}
		if string(src) != "class Sample {}" || name != path {
			t.Errorf("got (%q, %q)", src, name)
		}
	})
}

func TestRunParseRejectsNonJavaType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sample.java")
	if err := os.WriteFile(path, []byte("class Sample {}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldType, oldOut := parseType, parseOut
	defer func() { parseType, parseOut = oldType, oldOut }()

	parseType = "Kotlin"
	parseOut = "STDOUT"
	if err := runParse(parseCmd, []string{path}); err == nil {
		t.Fatal("expected an error for --type Kotlin")
	}
}

func TestRunParseWritesTextTreeToOutFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Sample.java")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(src, []byte("class Sample {}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldType, oldOut := parseType, parseOut
	defer func() { parseType, parseOut = oldType, oldOut }()
	parseType = "Java"
	parseOut = out

	if err := runParse(parseCmd, []string{src}); err != nil {
		t.Fatalf("runParse: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", out, err)
	}
	if !bytes.Contains(data, []byte("ClassDeclaration")) {
		t.Errorf("output = %q, want it to mention ClassDeclaration", data)
	}
}

func TestRunParseReportsSyntaxErrorOnStderr(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Bad.java")
	if err := os.WriteFile(src, []byte("class {"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	oldType, oldOut := parseType, parseOut
	defer func() { parseType, parseOut = oldType, oldOut }()
	parseType = "Java"
	parseOut = "NUL"

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	oldStderr := os.Stderr
	os.Stderr = w
	runErr := runParse(parseCmd, []string{src})
	os.Stderr = oldStderr
	w.Close()
	stderr, _ := io.ReadAll(r)

	if runErr == nil {
		t.Fatal("expected a syntax error for a class with no name")
	}
	if !bytes.Contains(stderr, []byte(src+":1:")) {
		t.Errorf("stderr = %q, want a %q-prefixed error line", stderr, src+":1:")
	}
}
