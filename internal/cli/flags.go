package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/reconnect/internal/command"
)

// editField maps an edit flag onto a Field: untouched keeps the value, an
// empty value clears an optional field, anything else is parsed and set.
func editField[T any](cmd *cobra.Command, name string, optional bool, parse func(string) (T, error)) (command.Field[T], error) {
	if !cmd.Flags().Changed(name) {
		return command.Keep[T](), nil
	}
	raw, _ := cmd.Flags().GetString(name)
	if optional && strings.TrimSpace(raw) == "" {
		return command.Clear[T](), nil
	}
	v, err := parse(raw)
	if err != nil {
		return command.Field[T]{}, err
	}
	return command.Set(v), nil
}

func indexField(cmd *cobra.Command, name string) (command.Field[command.Index], error) {
	return editField(cmd, name, false, func(s string) (command.Index, error) {
		idx, err := command.ParseIndex(s)
		if err != nil {
			return 0, fmt.Errorf("--%s: %w", name, err)
		}
		return idx, nil
	})
}

// indexFlag reads a required index flag.
func indexFlag(cmd *cobra.Command, name string) (command.Index, error) {
	raw, _ := cmd.Flags().GetString(name)
	idx, err := command.ParseIndex(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return idx, nil
}

func indexArg(args []string) (command.Index, error) {
	return command.ParseIndex(args[0])
}

// optionalString returns the flag value, or "" when the flag was not given.
func optionalString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
