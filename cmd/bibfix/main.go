// Package main provides the bibfix CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bibfix/bibfix/internal/bib"
	"github.com/bibfix/bibfix/internal/cache"
	"github.com/bibfix/bibfix/internal/config"
	"github.com/bibfix/bibfix/internal/confloc"
	"github.com/bibfix/bibfix/internal/dblp"
	"github.com/bibfix/bibfix/internal/fix"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagOut            string
	flagReplaceArxiv   bool
	flagForceTitlecase bool
	flagInteract       bool
	flagSortBy         []string
	flagNoPublisher    bool
	flagProcessConfLoc bool
	flagNoFormatting   bool
	flagNoCache        bool
)

var rootCmd = &cobra.Command{
	Use:   "bibfix <input.bib>",
	Short: "Fix common errors in BibTeX bibliography files",
	Long: `bibfix cross-references BibTeX entries against the DBLP search API
and fixes common errors: missing URLs, incorrect titlecasing, and
arXiv preprints that have a published version.

The approach is conservative: entries are never deleted, citation keys
are preserved, and an entry is only updated when its title and at least
one author match a search result.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runFix,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: <input>.fixed.bib)")
	rootCmd.Flags().BoolVarP(&flagReplaceArxiv, "replace-arxiv", "a", false, "Use a non-arXiv version whenever possible")
	rootCmd.Flags().BoolVarP(&flagForceTitlecase, "force-titlecase", "t", false, "Re-capitalize paper titles that are not titlecased")
	rootCmd.Flags().BoolVarP(&flagInteract, "interact", "i", false, "Interactive mode: confirm every change")
	rootCmd.Flags().StringSliceVarP(&flagSortBy, "sort-by", "s", nil, "Sort output entries by these fields, in order (\"ID\" = citation key)")
	rootCmd.Flags().BoolVar(&flagNoPublisher, "no-publisher", false, "Suppress publishers in conference papers and journal articles")
	rootCmd.Flags().BoolVar(&flagProcessConfLoc, "process-conf-loc", false, "Extract conference locations from proceedings names into address")
	rootCmd.Flags().BoolVar(&flagNoFormatting, "no-formatting", false, "Disable aligned BibTeX output formatting")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the local search-response cache")
	rootCmd.Version = Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, bib.ErrParse), errors.Is(err, fix.ErrCountMismatch):
		return ExitDataError
	}
	return ExitError
}

var errConfig = errors.New("configuration")

func runFix(cmd *cobra.Command, args []string) error {
	input := args[0]
	sink := fix.NewLogSink(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	out := flagOut
	if out == "" {
		out = strings.TrimSuffix(input, ".bib") + ".fixed.bib"
	}

	var clientOpts []dblp.ClientOption
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, dblp.WithBaseURL(cfg.Endpoint))
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, dblp.WithRateLimit(cfg.RateLimit))
	}
	client := dblp.NewClient(clientOpts...)

	searcher := &fix.CachedSearcher{Client: client}
	if !flagNoCache {
		store, err := cache.Open(cfg.CachePath)
		if err != nil {
			sink.Warning(fmt.Sprintf("response cache unavailable: %v", err))
		} else {
			defer store.Close()
			searcher.Cache = store
		}
	}

	var confirm fix.ConfirmationPolicy = fix.AlwaysAccept{}
	if flagInteract {
		confirm = fix.NewPrompt(os.Stdin, os.Stdout)
	}

	var extractor *confloc.Extractor
	if flagProcessConfLoc {
		extractor = confloc.NewExtractor(confloc.ProseRecognizer{}, cfg.ExtraPlaces...)
	}

	if !flagReplaceArxiv {
		sink.Warning("Not replacing arXiv entries with entries found in a book or journal. " +
			"Use the flag --replace-arxiv if you wish to replace arXiv entries.")
	}

	pipeline := fix.New(searcher, sink, confirm, extractor, fix.Options{
		ReplaceArxiv:   flagReplaceArxiv,
		ForceTitlecase: flagForceTitlecase,
		NoPublisher:    flagNoPublisher,
		ProcessConfLoc: flagProcessConfLoc,
		SortBy:         flagSortBy,
		Pretty:         !flagNoFormatting,
	})

	return pipeline.Run(context.Background(), input, out)
}
