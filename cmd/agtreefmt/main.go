// Command agtreefmt is a thin CLI wrapper around the agtree library: it
// parses a filter list, optionally re-emits it, and reports a per-rule
// category breakdown. The library itself takes no CLI, env, or file
// dependency; this binary is where that wiring lives.
package main

import (
	"fmt"
	"io"
	"os"

	agtree "github.com/scripthunter7/agtree-temp-sub000"
	"github.com/spf13/cobra"

	charmlog "charm.land/log/v2"
)

var (
	tolerant  bool
	preferRaw bool
	write     bool
	logLevel  string
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agtreefmt [file]",
		Short: "Parse and re-emit an adblock filter list",
		Long: "agtreefmt reads a filter list (from a file or stdin), parses every rule, " +
			"prints a category breakdown to stderr, and re-emits the list to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	cmd.Flags().BoolVar(&tolerant, "tolerant", true, "wrap unparseable rules as invalid instead of aborting")
	cmd.Flags().BoolVar(&preferRaw, "raw", false, "re-emit each rule's original text instead of regenerating it")
	cmd.Flags().BoolVar(&write, "write", false, "write the regenerated output back to the input file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := charmlog.New(cmd.ErrOrStderr())
	if lvl, err := charmlog.ParseLevel(logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	var (
		src  string
		path string
	)
	if len(args) == 1 {
		path = args[0]
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		src = string(raw)
	} else {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		src = string(raw)
	}

	list, err := agtree.Parse(src, tolerant)
	if err != nil {
		logger.Error("parse failed", "err", err)
		return err
	}

	counts := map[agtree.RuleCategory]int{}
	validator := agtree.DefaultModifierValidator()
	for _, r := range list.Rules {
		counts[r.Category()]++
		if nr, ok := r.(*agtree.NetworkRule); ok && nr.Modifiers != nil {
			for _, mod := range nr.Modifiers.Children {
				if !validator.Exists(mod.Modifier.Value) {
					logger.Warn("unknown modifier", "modifier", mod.Modifier.Value)
				}
			}
		}
	}
	for cat, n := range counts {
		logger.Info("parsed rules", "category", cat.String(), "count", n)
	}

	out := agtree.Generate(list, preferRaw)
	if write && path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote output", "path", path)
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
