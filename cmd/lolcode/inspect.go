package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/session"
)

func runTokens(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "lolcode tokens expects exactly one source file")
		return 1
	}
	source, err := readSource(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	tokens, err := driver.Tokenize(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.ErrorReport(err))
		return 1
	}
	for _, tok := range tokens {
		fmt.Fprintln(os.Stdout, tok.String())
	}
	return 0
}

func runAST(args []string) int {
	format := "json"
	var files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--format":
			value, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				fmt.Fprintf(os.Stderr, "lolcode ast: %v\n", err)
				return 1
			}
			format = value
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "lolcode ast: unknown flag %s\n", arg)
			return 1
		default:
			files = append(files, arg)
		}
	}
	if format != "json" && format != "yaml" {
		fmt.Fprintf(os.Stderr, "lolcode ast: unknown --format value '%s' (expected json or yaml)\n", format)
		return 1
	}
	if len(files) != 1 {
		fmt.Fprintln(os.Stderr, "lolcode ast expects exactly one source file")
		return 1
	}

	program, err := driver.LoadProgram(files[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.ErrorReport(err))
		return 1
	}
	data, err := json.MarshalIndent(program.AST, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lolcode ast: encode: %v\n", err)
		return 1
	}
	if format == "json" {
		fmt.Fprintln(os.Stdout, string(data))
		return 0
	}
	if err := writeJSONAsYAML(data); err != nil {
		fmt.Fprintf(os.Stderr, "lolcode ast: %v\n", err)
		return 1
	}
	return 0
}

// writeJSONAsYAML re-encodes a JSON document as block-style YAML, keeping the
// key order the JSON encoder produced.
func writeJSONAsYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("convert to yaml: %w", err)
	}
	clearStyle(&doc)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

func runInspect(args []string) int {
	var inputs []string
	var files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--input":
			// Inputs may legitimately be empty or start with a dash.
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "lolcode inspect: --input expects a value")
				return 1
			}
			inputs = append(inputs, nextArg(args, &i))
		case strings.HasPrefix(arg, "--input="):
			inputs = append(inputs, strings.TrimPrefix(arg, "--input="))
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "lolcode inspect: unknown flag %s\n", arg)
			return 1
		default:
			files = append(files, arg)
		}
	}
	if len(files) != 1 {
		fmt.Fprintln(os.Stderr, "lolcode inspect expects exactly one source file")
		return 1
	}
	source, err := readSource(files[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sess := session.New(source, inputs...)
	sess.Path = files[0]
	result := sess.Run()
	if err := result.WriteYAML(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "lolcode inspect: %v\n", err)
		return 1
	}
	if result.Err != nil {
		return 1
	}
	return 0
}

func readSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("failed to read %s: is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func nextArg(args []string, index *int) string {
	*index = *index + 1
	if *index >= len(args) {
		return ""
	}
	return args[*index]
}

func expectFlagValue(flag string, value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "-") {
		return "", fmt.Errorf("%s expects a value", flag)
	}
	return value, nil
}
