package cli

import (
	"strconv"

	"gopkg.in/yaml.v3"

	jsonquery "github.com/Lythenas/json-query"
)

// debugDump wraps the --debug output with a label ("document" or
// "selector") so each dump on the stderr stream is a YAML mapping keyed by
// what it holds rather than an unlabeled blob.
type debugDump struct {
	Label string
	Value interface{}
}

func (d debugDump) MarshalYAML() (interface{}, error) {
	var node *yaml.Node
	switch v := d.Value.(type) {
	case jsonquery.Document:
		node = documentNode(v)
	case *jsonquery.Program:
		node = programNode(v)
	default:
		node = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "<unknown>"}
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalarStr(d.Label), node},
	}, nil
}

func scalarStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// documentNode renders a Document as a yaml.Node tree, preserving object key
// order (unlike a plain map[string]interface{}, which gopkg.in/yaml.v3 would
// re-sort) and rendering numbers/strings using their stored lexeme verbatim
// rather than round-tripping through a decoded Go value.
func documentNode(doc jsonquery.Document) *yaml.Node {
	switch doc.Kind() {
	case jsonquery.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case jsonquery.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(doc.Bool())}
	case jsonquery.KindNumber:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: doc.Lexeme(), Style: 0}
	case jsonquery.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: doc.RawString(), Style: yaml.DoubleQuotedStyle}
	case jsonquery.KindArray:
		elems := doc.Elements()
		content := make([]*yaml.Node, len(elems))
		for i, e := range elems {
			content[i] = documentNode(e)
		}
		return &yaml.Node{Kind: yaml.SequenceNode, Content: content}
	case jsonquery.KindObject:
		pairs := doc.Pairs()
		content := make([]*yaml.Node, 0, len(pairs)*2)
		for _, p := range pairs {
			content = append(content, scalarStr(p.Key), documentNode(p.Value))
		}
		return &yaml.Node{Kind: yaml.MappingNode, Content: content}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// programNode renders a Program as a sequence of chains, each a sequence of
// steps described by Step.String(), so the dump reads like the selector
// grammar itself rather than a raw struct literal.
func programNode(prog *jsonquery.Program) *yaml.Node {
	chains := make([]*yaml.Node, len(prog.Chains))
	for i, chain := range prog.Chains {
		steps := make([]*yaml.Node, len(chain.Steps))
		for j, step := range chain.Steps {
			steps[j] = scalarStr(step.String())
		}
		chains[i] = &yaml.Node{Kind: yaml.SequenceNode, Content: steps}
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Content: chains}
}
