package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive command prompt",
		Long: `Start an interactive prompt that accepts the same commands as the CLI,
without the "reconnect" prefix:

  reconnect> clients find meier
  reconnect> properties add "Pine Loft" --address "3 Pine Road" --price 750 --owner 2

Lists filtered with "find" stay filtered for later commands, so indexes
refer to what was last shown. Type "exit" or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := appInstance.Config.Shell
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      shellCompleter(),
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer rl.Close()

	prevConfirm := confirm
	confirm = func(_ *cobra.Command, message string) bool {
		rl.SetPrompt(message + " [y/N] ")
		defer rl.SetPrompt(cfg.Prompt)
		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
	defer func() { confirm = prevConfirm }()

	log := appInstance.Log.With("component", "shell")
	log.Debug("shell started", "history", cfg.HistoryFile)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		words, err := splitLine(line)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
			continue
		}
		if words[0] == "shell" || words[0] == "tui" {
			fmt.Fprintf(rl.Stderr(), "Error: %q is not available inside the shell\n", words[0])
			continue
		}

		root := NewRootCmd()
		root.SetArgs(words)
		root.SetOut(rl.Stdout())
		root.SetErr(rl.Stderr())
		if err := root.ExecuteContext(contextOf(cmd)); err != nil {
			log.Debug("shell command failed", "line", line, "error", err)
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
		}
	}
}

// splitLine splits a command line into words. Single or double quotes
// group words; a backslash escapes the next character outside single quotes.
func splitLine(line string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped, inWord = true, true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote, inWord = r, true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if escaped {
		return nil, errors.New("line ends with a backslash")
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

func shellCompleter() *readline.PrefixCompleter {
	entity := func(name string, edit string) *readline.PrefixCompleter {
		return readline.PcItem(name,
			readline.PcItem("list"),
			readline.PcItem("find"),
			readline.PcItem("add"),
			readline.PcItem(edit),
			readline.PcItem("delete"),
		)
	}
	return readline.NewPrefixCompleter(
		entity("clients", "edit"),
		entity("properties", "edit"),
		entity("deals", "update"),
		entity("events", "edit"),
		readline.PcItem("clear"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
