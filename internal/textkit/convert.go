package textkit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSONToYAML converts a JSON document to YAML. Object key order follows
// Go's map iteration after the round-trip, so output key order is not
// guaranteed to match the input.
func JSONToYAML(input string) (string, error) {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		return "", fmt.Errorf("parsing json: %w", err)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding yaml: %w", err)
	}
	return string(out), nil
}

// YAMLToJSON converts a YAML document to pretty-printed JSON.
func YAMLToJSON(input string) (string, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return "", fmt.Errorf("parsing yaml: %w", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(out), nil
}

// FormatJSON re-indents a JSON document, validating it in the process.
func FormatJSON(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(input), "", "  "); err != nil {
		return "", fmt.Errorf("parsing json: %w", err)
	}
	return buf.String(), nil
}
