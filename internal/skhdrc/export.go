package skhdrc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Entry pairs a shortcut's display text with a value.
type Entry struct {
	Shortcut string
	Value    string
}

// OrderedMap is a string mapping that keeps binding order when encoded.
type OrderedMap []Entry

// MarshalYAML encodes m as a YAML mapping in order.
func (m OrderedMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Shortcut},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	return node, nil
}

// MarshalJSON encodes m as a JSON object in order.
func (m OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, e.Shortcut); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString writes s as a JSON string, leaving shell text such as
// "&&" and ">" unescaped.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return nil
}

// Document is the exported form of a table: comments and commands keyed by
// the shortcut's display text.
type Document struct {
	Comments OrderedMap `yaml:"comments" json:"comments"`
	Commands OrderedMap `yaml:"commands" json:"commands"`
}

// Document builds the exported form of t.
func (t *Table) Document() Document {
	var doc Document
	for _, b := range t.bindings {
		name := b.Shortcut.String()
		doc.Comments = append(doc.Comments, Entry{Shortcut: name, Value: b.Comment})
		doc.Commands = append(doc.Commands, Entry{Shortcut: name, Value: b.Command})
	}
	return doc
}

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes t's document to w in the given format.
func (t *Table) Export(w io.Writer, format string) error {
	doc := t.Document()
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
