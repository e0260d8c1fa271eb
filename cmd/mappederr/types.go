package main

import (
	"encoding/json"
	"fmt"

	"codeberg.org/mutker/mappederr/errors"
	"codeberg.org/mutker/mappederr/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type typeEntry struct {
	Name   string           `json:"name" yaml:"name"`
	Record errors.ErrorType `json:"record" yaml:"record"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known error types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := errors.ErrorTypes()
			entries := make([]typeEntry, 0, len(types))
			for _, t := range types {
				entries = append(entries, typeEntry{Name: t.String(), Record: t})
			}

			out := cmd.OutOrStdout()
			switch a.cfg.Output {
			case config.OutputJSON:
				return json.NewEncoder(out).Encode(entries)
			case config.OutputYAML:
				return yaml.NewEncoder(out).Encode(entries)
			default:
				for _, e := range entries {
					fmt.Fprintln(out, e.Name)
				}
				return nil
			}
		},
	}
}
