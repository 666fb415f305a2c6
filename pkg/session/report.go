package session

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/runtime"
)

// WriteYAML renders the result as a YAML document. Besides tokens, parse
// status and captured output it carries the final environment in declaration
// order, the number of unread inputs when there are any, and the error when
// the run failed. Environment values keep their YAML types (NOOB is null).
func (r *Result) WriteYAML(w io.Writer) error {
	doc := mappingNode()

	tokens := &yaml.Node{Kind: yaml.SequenceNode}
	for _, tok := range r.Tokens {
		var item yaml.Node
		if err := item.Encode(tok); err != nil {
			return fmt.Errorf("session: encode token: %w", err)
		}
		item.Style = yaml.FlowStyle
		tokens.Content = append(tokens.Content, &item)
	}
	addPair(doc, "tokens", tokens)
	addPair(doc, "parsed", scalarNode("!!bool", strconv.FormatBool(r.Parsed)))

	output := &yaml.Node{Kind: yaml.SequenceNode}
	for _, line := range r.Output {
		output.Content = append(output.Content, scalarNode("!!str", line))
	}
	addPair(doc, "output", output)

	env := mappingNode()
	for _, b := range r.Environment {
		addPair(env, b.Name, valueNode(b.raw))
	}
	addPair(doc, "environment", env)
	if r.UnusedInputs > 0 {
		addPair(doc, "unused_inputs", scalarNode("!!int", strconv.Itoa(r.UnusedInputs)))
	}

	if r.Err != nil {
		failure := mappingNode()
		addPair(failure, "stage", scalarNode("!!str", string(r.Stage)))
		addPair(failure, "message", scalarNode("!!str", r.Report()))
		addPair(doc, "error", failure)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("session: marshal report: %w", err)
	}
	return enc.Close()
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalarNode("!!str", key), value)
}

func valueNode(v runtime.Value) *yaml.Node {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return scalarNode("!!int", strconv.FormatInt(val.Val, 10))
	case runtime.FloatValue:
		switch {
		case math.IsNaN(val.Val):
			return scalarNode("!!float", ".nan")
		case math.IsInf(val.Val, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(val.Val, -1):
			return scalarNode("!!float", "-.inf")
		}
		return scalarNode("!!float", runtime.Format(val))
	case runtime.BoolValue:
		return scalarNode("!!bool", strconv.FormatBool(val.Val))
	case runtime.StringValue:
		return scalarNode("!!str", val.Val)
	default:
		return scalarNode("!!null", "null")
	}
}
