package vectorizer

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// normKey is the artifact field whose explicit null means "no normalization".
// An absent key keeps the l2 default.
const normKey = "norm"

// UnmarshalJSON decodes an artifact, mapping "norm": null to NormNone.
func (a *Artifact) UnmarshalJSON(data []byte) error {
	type plain Artifact
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields[normKey]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		p.Norm = NormNone
	}

	*a = Artifact(p)
	return nil
}

// UnmarshalYAML decodes an artifact, mapping "norm: null" (or "norm: ~") to NormNone.
func (a *Artifact) UnmarshalYAML(value *yaml.Node) error {
	type plain Artifact
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}

	node := value
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == normKey && node.Content[i+1].ShortTag() == "!!null" {
				p.Norm = NormNone
			}
		}
	}

	*a = Artifact(p)
	return nil
}
