package cmd

import (
	"fmt"

	"storage-audit/core/utils"

	"github.com/spf13/cobra"
)

// ValidationError reports a bad command line. It is raised before any network
// or filesystem work.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// arg describes a positional argument.
type arg struct {
	name     string
	required bool
	numeric  bool
}

// positional validates args against specs, in order.
func positional(specs ...arg) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > len(specs) {
			return invalidf("%s accepts at most %d argument(s), received %d", cmd.Name(), len(specs), len(args))
		}
		for i, spec := range specs {
			if i >= len(args) {
				if spec.required {
					return invalidf("%s: missing required argument <%s>", cmd.Name(), spec.name)
				}
				continue
			}
			if err := checkArg(spec, args[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

func checkArg(spec arg, value string) error {
	if value == "" {
		return invalidf("<%s> must not be empty", spec.name)
	}
	if spec.numeric && !utils.IsNumeric(value) {
		return invalidf("<%s> must be a number, got %q", spec.name, value)
	}
	return nil
}

// optional returns args[i], or "" when absent.
func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
