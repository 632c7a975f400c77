// Command tst loads a word list into a ternary search tree and queries it.
//
// Words are read one per line from the file given by --input, or from stdin.
//
//	tst --input words.txt search --exact apple app
//	cat words.txt | tst list --prefix comb
//	tst --input words.txt stats
package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kumarlokesh/ternary-search-tree/internal/config"
	"github.com/kumarlokesh/ternary-search-tree/internal/logging"
	"github.com/kumarlokesh/ternary-search-tree/internal/tst"
	"github.com/kumarlokesh/ternary-search-tree/internal/wordsource"
)

// Version is the tst version
var Version = "v0.1.0"

// app carries the state shared by all subcommands
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger zerolog.Logger

	tree     *tst.Tree
	lines    int
	loadTime time.Duration
}

func main() {
	cmd := newRootCommand(&app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
	cobra.CheckErr(cmd.Execute())
}

func newRootCommand(a *app) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "tst",
		Short:         "Query a word list through a ternary search tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, a.errOut)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config file")
	flags.String("input", "-", "Word list to load, one word per line (- for stdin)")
	flags.String("encoding", config.EncodingUTF8, "Encoding of the word list (utf-8 or windows-1252)")
	flags.String("log-level", "info", "Log level")
	flags.String("log-format", config.LogFormatConsole, "Log format (console or json)")
	flags.Bool("balanced", false, "Insert the word list in balanced order")

	rootCmd.AddCommand(buildSearchCmd(a))
	rootCmd.AddCommand(buildListCmd(a))
	rootCmd.AddCommand(buildStatsCmd(a))
	rootCmd.AddCommand(buildDumpCmd(a))
	rootCmd.AddCommand(buildVersionCmd())

	return rootCmd
}

// loadTree reads the configured word list into a new tree
func (a *app) loadTree() error {
	balanced := a.cfg.Load.Balanced

	a.logger.Debug().Str("input", a.cfg.Input).Str("encoding", a.cfg.Encoding).Msg("Reading words")
	words, err := wordsource.Open(a.cfg.Input, a.cfg.Encoding, a.in)
	if err != nil {
		return err
	}

	start := time.Now()
	tree := tst.New()
	if balanced {
		tree.InsertBalanced(words)
	} else {
		for _, w := range words {
			tree.Insert(w)
		}
	}
	a.loadTime = time.Since(start)
	a.tree = tree
	a.lines = len(words)

	a.logger.Info().
		Int("lines", len(words)).
		Int("words", tree.Len()).
		Bool("balanced", balanced).
		Dur("duration", a.loadTime).
		Msg("Loaded word list")
	return nil
}
