package main

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun"
)

var actorsCmd = &cobra.Command{
	Use:   "actors",
	Short: "List actor kinds and their plan symbols",
	Long: `Shows every actor kind a level symbol can be bound to in the
symbols.actors configuration, with the symbols currently bound to it.
Bindings that name an unknown actor are reported as errors.`,
	Args: cobra.NoArgs,
	RunE: runActors,
}

func runActors(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return listActors(cmd.OutOrStdout(), cfg.Symbols)
}

// listActors prints the catalog with the symbols bound to each entry.
func listActors(out io.Writer, symbols config.SymbolsConfig) error {
	catalog := lavarun.NewCatalog(rand.New(rand.NewSource(1)))

	bound := make(map[string][]string)
	var unknown []string
	for sym, name := range symbols.Actors {
		if !catalog.Exists(name) {
			unknown = append(unknown, fmt.Sprintf("%q -> %s", sym, name))
			continue
		}
		bound[name] = append(bound[name], sym)
	}

	entries := catalog.List()
	rows := make([][]string, 0, len(entries))
	for _, info := range entries {
		syms := bound[info.Name]
		sort.Strings(syms)
		shown := "-"
		if len(syms) > 0 {
			shown = strings.Join(syms, " ")
		}
		rows = append(rows, []string{info.Name, info.Title, shown})
	}
	printTableTo(out, []string{"Actor", "Title", "Symbols"}, rows)

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("symbols bound to unknown actors: %s", strings.Join(unknown, ", "))
	}
	return nil
}
