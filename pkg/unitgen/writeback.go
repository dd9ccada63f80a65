package unitgen

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WriteBack records the ids of assigned units in the catalog file at path.
// It edits the YAML node tree so comments and layout survive.
func WriteBack(path string, assigned []Unit) error {
	if len(assigned) == 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	out, err := setIDs(data, assigned)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat catalog: %w", err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

func setIDs(data []byte, assigned []Unit) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	units := mappingValue(doc.Content[0], "units")
	if units == nil || units.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("catalog has no units sequence")
	}

	ids := make(map[string]uint32, len(assigned))
	for _, u := range assigned {
		ids[u.Name] = u.ID
	}

	for _, item := range units.Content {
		name := mappingValue(item, "name")
		if name == nil {
			continue
		}
		id, ok := ids[name.Value]
		if !ok {
			continue
		}
		value := strconv.FormatUint(uint64(id), 10)
		if existing := mappingValue(item, "id"); existing != nil {
			existing.Value = value
		} else {
			item.Content = append(item.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "id"},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: value},
			)
		}
		delete(ids, name.Value)
	}
	if len(ids) > 0 {
		return nil, fmt.Errorf("units not found in catalog: %v", ids)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
