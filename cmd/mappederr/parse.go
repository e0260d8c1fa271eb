package main

import (
	"bufio"
	"fmt"
	"io"

	"codeberg.org/mutker/mappederr/errors"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse canonical mapped error lines",
		Long: `Parse each argument, or each line of stdin when no arguments are given,
as a canonical mapped error line.

Text that is not in canonical form becomes an unclassified error carrying
the text verbatim, unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				lines, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			values := make([]errors.MappedError, 0, len(lines))
			for i, line := range lines {
				if a.cfg.Strict {
					v, err := errors.ParseStrict(line)
					if err != nil {
						return fmt.Errorf("input %d: %w", i+1, err)
					}
					values = append(values, v)
					continue
				}

				v := errors.Parse(line)
				if !errors.IsCanonical(line) {
					a.log.Info().Int("input", i+1).Msg("Input is not canonical, kept as unclassified")
				}
				values = append(values, v)
			}

			return writeErrors(cmd.OutOrStdout(), a.cfg.Output, values)
		},
	}

	cmd.Flags().Bool("strict", false, "Fail on input that is not in canonical form or has an unknown type")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return lines, nil
}
