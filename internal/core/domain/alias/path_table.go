package alias

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PathEntry is one raw key of a path table with its target templates.
type PathEntry struct {
	Pattern string
	Targets []string
}

/*
PathTable is the raw, ordered "alias pattern -> target templates" table as it
appears in a compiler configuration. Key order is significant: it breaks ties
between mappings, so decoding keeps the order in which keys were written.
*/
type PathTable []PathEntry

// Set stores targets under pattern. An existing key keeps its position and
// has its targets replaced, the same way a repeated JSON key overrides.
func (t PathTable) Set(pattern string, targets []string) PathTable {
	for i := range t {
		if t[i].Pattern == pattern {
			t[i].Targets = targets
			return t
		}
	}
	return append(t, PathEntry{Pattern: pattern, Targets: targets})
}

// Clone returns a deep copy of the table.
func (t PathTable) Clone() PathTable {
	if t == nil {
		return nil
	}
	out := make(PathTable, len(t))
	for i, entry := range t {
		targets := make([]string, len(entry.Targets))
		copy(targets, entry.Targets)
		out[i] = PathEntry{Pattern: entry.Pattern, Targets: targets}
	}
	return out
}

// UnmarshalJSON decodes a JSON object while preserving member order.
func (t *PathTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading path table: %w", err)
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("path table must be an object, got %v", tok)
	}

	var table PathTable
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading path table key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("path table key must be a string, got %v", keyTok)
		}
		var targets []string
		if err := dec.Decode(&targets); err != nil {
			return fmt.Errorf("path pattern '%s' must map to an array of strings: %w", key, err)
		}
		table = table.Set(key, targets)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading end of path table: %w", err)
	}
	*t = table
	return nil
}

// UnmarshalYAML decodes a YAML mapping while preserving key order. A single
// scalar target is accepted as shorthand for a one-element list.
func (t *PathTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*t = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: path table must be a mapping", value.Line)
	}

	var table PathTable
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: path table key: %w", value.Content[i].Line, err)
		}
		targetNode := value.Content[i+1]
		var targets []string
		switch {
		case targetNode.Kind == yaml.ScalarNode && targetNode.ShortTag() == "!!null":
			// no targets
		case targetNode.Kind == yaml.ScalarNode:
			var single string
			if err := targetNode.Decode(&single); err != nil {
				return fmt.Errorf("line %d: path pattern '%s': %w", targetNode.Line, key, err)
			}
			targets = []string{single}
		default:
			if err := targetNode.Decode(&targets); err != nil {
				return fmt.Errorf("line %d: path pattern '%s' must map to a list of strings: %w", targetNode.Line, key, err)
			}
		}
		table = table.Set(key, targets)
	}
	*t = table
	return nil
}

// MarshalYAML encodes the table as an ordered mapping.
func (t PathTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range t {
		var targets yaml.Node
		if err := targets.Encode(entry.Targets); err != nil {
			return nil, fmt.Errorf("encoding targets of '%s': %w", entry.Pattern, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Pattern},
			&targets,
		)
	}
	return node, nil
}
