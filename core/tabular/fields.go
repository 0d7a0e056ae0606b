package tabular

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fields is an ordered list of field names. In YAML it may be written as a
// sequence or as one whitespace-separated string.
type Fields []string

// UnmarshalYAML accepts both "a b c" and [a, b, c].
func (f *Fields) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*f = nil
			return nil
		}
		*f = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*f = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of field names", value.Line)
	}
}
