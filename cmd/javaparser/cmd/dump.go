package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"

	"github.com/cwbudde/go-javaparser/parser"
	goyaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Parse a Java source file and dump its AST as text, JSON, or YAML",
	Long: `dump is a debugging companion to parse: it renders the same AST through
one of three formats.

  --format text  an indented tree (the default, same shape as "parse")
  --format json  a JSON document built incrementally with tidwall/sjson
  --format yaml  a YAML document produced by goccy/go-yaml

json and yaml are both derived from one reflection-based summary of the
AST (buildSummary); text walks the AST by reflection directly. Neither
uses a hand-maintained type switch over the node kinds.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "text", "output format: text, json, or yaml")
}

func runDump(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	unit, perr := parser.ParseSource(src, filename)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		return perr
	}

	switch dumpFormat {
	case "text":
		textDump(os.Stdout, unit, 0)
	case "json":
		doc, err := jsonDump(unit)
		if err != nil {
			return err
		}
		fmt.Println(string(doc))
	case "yaml":
		doc, err := yamlDump(unit)
		if err != nil {
			return err
		}
		fmt.Print(string(doc))
	default:
		return fmt.Errorf("unknown --format %q: want text, json, or yaml", dumpFormat)
	}
	return nil
}

// --- text tree --------------------------------------------------------

// textDump prints node as an indented tree of its AST kind and exported
// fields, walking the tagged-union Node values by reflection (mirroring the
// standard library's go/ast.Fprint, adapted to this package's BaseNode/Node
// shape instead of go/ast's).
func textDump(w io.Writer, node any, indent int) {
	pad := func(n int) {
		for i := 0; i < n; i++ {
			fmt.Fprint(w, "  ")
		}
	}
	var walk func(v reflect.Value, indent int)
	walk = func(v reflect.Value, indent int) {
		for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return
			}
			v = v.Elem()
		}
		switch v.Kind() {
		case reflect.Struct:
			pad(indent)
			fmt.Fprintln(w, v.Type().Name())
			for i := 0; i < v.NumField(); i++ {
				f := v.Type().Field(i)
				if f.Anonymous || !f.IsExported() {
					continue
				}
				fv := v.Field(i)
				if isScalarField(fv) {
					pad(indent + 1)
					fmt.Fprintf(w, "%s: %v\n", f.Name, fv.Interface())
					continue
				}
				pad(indent + 1)
				fmt.Fprintf(w, "%s:\n", f.Name)
				walk(fv, indent+2)
			}
		case reflect.Slice, reflect.Array:
			if v.Len() == 0 {
				pad(indent)
				fmt.Fprintln(w, "(none)")
				return
			}
			for i := 0; i < v.Len(); i++ {
				walk(v.Index(i), indent)
			}
		default:
			pad(indent)
			fmt.Fprintf(w, "%v\n", v.Interface())
		}
	}
	walk(reflect.ValueOf(node), indent)
}

func isScalarField(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String, reflect.Bool, reflect.Int, reflect.Int64:
		return true
	default:
		return false
	}
}

// --- structured summary ------------------------------------------------

// buildSummary turns an AST value into plain map[string]any/[]any/scalar
// data, suitable for encoding as JSON or YAML. BaseNode position fields are
// omitted: they are noise for a debugging dump.
func buildSummary(v reflect.Value) any {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return nil
		}
		if v.Kind() == reflect.Interface && (v.IsNil() || !v.IsValid()) {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.Type().Name() == "BaseNode" {
			return nil
		}
		m := map[string]any{"kind": v.Type().Name()}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.Anonymous || !f.IsExported() {
				continue
			}
			m[f.Name] = buildSummary(v.Field(i))
		}
		return m
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, buildSummary(v.Index(i)))
		}
		return items
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int64, reflect.Int32:
		return v.Int()
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// jsonDump builds a JSON document for node by recursively setting each
// field onto a growing byte buffer with sjson, rather than a single
// encoding/json.Marshal call: this lets the dump subcommand's own tests
// query specific fields back out with tidwall/gjson without maintaining a
// parallel JSON schema (SPEC_FULL.md §2).
func jsonDump(node any) ([]byte, error) {
	return jsonFromValue(buildSummary(reflect.ValueOf(node)))
}

func jsonFromValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		doc := []byte("{}")
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			raw, err := jsonFromValue(val[k])
			if err != nil {
				return nil, err
			}
			doc, err = sjson.SetRawBytes(doc, k, raw)
			if err != nil {
				return nil, err
			}
		}
		return doc, nil
	case []any:
		doc := []byte("[]")
		for i, item := range val {
			raw, err := jsonFromValue(item)
			if err != nil {
				return nil, err
			}
			var err2 error
			doc, err2 = sjson.SetRawBytes(doc, strconv.Itoa(i), raw)
			if err2 != nil {
				return nil, err2
			}
		}
		return doc, nil
	default:
		return json.Marshal(val)
	}
}

// yamlDump marshals the same summary with goccy/go-yaml.
func yamlDump(node any) ([]byte, error) {
	return goyaml.Marshal(buildSummary(reflect.ValueOf(node)))
}
