package main

import (
	"codeberg.org/mutker/mappederr/errors"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		message    string
		typeName   string
		code       string
		cause      string
		unexpected bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a mapped error and print it",
		Example: `  mappederr render --type fetching-error --code E404 --message "user not found"
  mappederr render -m "save failed" --cause "[code=none,error_type=creation-error] disk full"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errorType, err := errors.ParseErrorType(typeName)
			if err != nil {
				return errors.InvalidArgument(err.Error(), errors.WithCode("InvalidType"))
			}

			var prev *errors.MappedError
			if cmd.Flags().Changed("cause") {
				p := errors.Parse(cause)
				prev = &p
			}

			v := errors.New(message, !unexpected, prev, errorType).WithCode(code)

			return writeErrors(cmd.OutOrStdout(), a.cfg.Output, []errors.MappedError{v})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&message, "message", "m", "", "Error message")
	flags.StringVarP(&typeName, "type", "t", errors.UndefinedError.String(), "Error type (canonical name)")
	flags.StringVarP(&code, "code", "c", "none", "Error code")
	flags.StringVar(&cause, "cause", "", "Previous error, as a canonical line")
	flags.BoolVar(&unexpected, "unexpected", false, "Log the error as unexpected")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
