package main

import (
	"encoding/json"
	"fmt"
	"io"

	"codeberg.org/mutker/mappederr/errors"
	"codeberg.org/mutker/mappederr/internal/config"
	"gopkg.in/yaml.v3"
)

// writeErrors prints values in the configured format. JSON output is one
// record per line; YAML output is one document per value.
func writeErrors(w io.Writer, output config.Output, values []errors.MappedError) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		for _, v := range values {
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, v := range values {
			if err := enc.Encode(v); err != nil {
				return fmt.Errorf("failed to encode yaml: %w", err)
			}
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
	}

	return nil
}
