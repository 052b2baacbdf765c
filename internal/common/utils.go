package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldAliases maps short flag names to top-level outcome keys.
var fieldAliases = map[string]string{
	"pred":      "prediction",
	"insight":   "insights",
	"lang":      "language",
	"request":   "id",
	"sentiment": "insights",
}

// FilterFields keeps only the requested top-level keys of obj's JSON form.
// An empty fieldsStr keeps everything.
func FilterFields(obj interface{}, fieldsStr string) map[string]interface{} {
	fullMap := structToMap(obj)
	if strings.TrimSpace(fieldsStr) == "" {
		return fullMap
	}

	include := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if alias, ok := fieldAliases[field]; ok {
			field = alias
		}
		include[field] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range fullMap {
		if include[key] {
			filtered[key] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// Marshal renders v as indented JSON or YAML.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
