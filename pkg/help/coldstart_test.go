package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAML(t *testing.T) {
	var guide map[string]interface{}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &guide); err != nil {
		t.Fatalf("coldstart guide is not valid YAML: %v", err)
	}
	for _, key := range []string{"artifacts", "commands", "error_behavior"} {
		if _, ok := guide[key]; !ok {
			t.Errorf("guide missing %q section", key)
		}
	}
}
