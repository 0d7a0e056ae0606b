package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Column maps a row field to the header label shown in a table.
type Column struct {
	Field  string
	Header string
}

// Columns is an ordered field→label list. In YAML it is written as a
// mapping; the mapping order is the column order.
type Columns []Column

// Fields returns the field names in column order.
func (c Columns) Fields() []string {
	out := make([]string, len(c))
	for i, col := range c {
		out[i] = col.Field
	}
	return out
}

// UnmarshalYAML decodes a mapping node keeping key order. A null label
// falls back to the field name.
func (c *Columns) UnmarshalYAML(value *yaml.Node) error {
	pairs, err := orderedPairs(value)
	if err != nil {
		return err
	}
	cols := make(Columns, 0, len(pairs))
	for _, p := range pairs {
		label := p[1]
		if label == "" {
			label = p[0]
		}
		cols = append(cols, Column{Field: p[0], Header: label})
	}
	*c = cols
	return nil
}

// MarshalYAML encodes the columns back as an ordered mapping.
func (c Columns) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, col := range c {
		node.Content = append(node.Content, scalar(col.Field), scalar(col.Header))
	}
	return node, nil
}

// Replacement is one literal substring rewrite applied to cell values.
type Replacement struct {
	Old string
	New string
}

// Replacements keep their configured order; later entries see the output
// of earlier ones.
type Replacements []Replacement

// UnmarshalYAML decodes a mapping node keeping key order.
func (r *Replacements) UnmarshalYAML(value *yaml.Node) error {
	pairs, err := orderedPairs(value)
	if err != nil {
		return err
	}
	out := make(Replacements, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Replacement{Old: p[0], New: p[1]})
	}
	*r = out
	return nil
}

// MarshalYAML encodes the replacements back as an ordered mapping.
func (r Replacements) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, rep := range r {
		node.Content = append(node.Content, scalar(rep.Old), scalar(rep.New))
	}
	return node, nil
}

func orderedPairs(value *yaml.Node) ([][2]string, error) {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil, nil
	}
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", value.Line)
	}
	pairs := make([][2]string, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: expected scalar key and value", k.Line)
		}
		val := v.Value
		if v.Tag == "!!null" {
			val = ""
		}
		pairs = append(pairs, [2]string{k.Value, val})
	}
	return pairs, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
