package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func buildSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <word>...",
		Short: "Report whether each word is stored (or is a prefix of a stored word)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadTree(); err != nil {
				return err
			}
			exact := a.cfg.Search.Exact
			for _, word := range args {
				found := a.tree.Search(word, exact)
				a.logger.Debug().Str("word", word).Bool("exact", exact).Bool("found", found).Msg("Search")
				fmt.Fprintf(a.out, "%s\t%t\n", word, found)
			}
			return nil
		},
	}
	cmd.Flags().Bool("exact", false, "Only match complete words")
	return cmd
}

func buildListCmd(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored words in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadTree(); err != nil {
				return err
			}
			for word := range a.tree.WithPrefix(prefix) {
				fmt.Fprintln(a.out, word)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only print words starting with this prefix")
	return cmd
}

func buildStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the size and shape of the loaded tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadTree(); err != nil {
				return err
			}
			s := a.tree.Stats()

			tw := table.NewWriter()
			tw.SetOutputMirror(a.out)
			tw.AppendHeader(table.Row{"Metric", "Value"})
			tw.AppendRows([]table.Row{
				{"Input lines", a.lines},
				{"Words", s.Words},
				{"Nodes", s.Nodes},
				{"Max depth", s.MaxDepth},
				{"Load time", a.loadTime.String()},
			})
			tw.Render()
			return nil
		},
	}
}

func buildDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the node structure of the loaded tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadTree(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.tree.String())
			return nil
		},
	}
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tst version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "tst %s\n", Version)
			return nil
		},
	}
}
