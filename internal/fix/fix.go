// Package fix drives the per-entry search/select/apply loop over a
// bibliography file.
package fix

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibfix/bibfix/internal/authors"
	"github.com/bibfix/bibfix/internal/bib"
	"github.com/bibfix/bibfix/internal/confloc"
	"github.com/bibfix/bibfix/internal/dblp"
	"github.com/bibfix/bibfix/internal/match"
	"github.com/bibfix/bibfix/internal/titles"
)

// ErrCountMismatch indicates the entry count changed during a run,
// which the pipeline never allows.
var ErrCountMismatch = errors.New("entry count changed during processing")

// Options control how entries are processed and written.
type Options struct {
	// ReplaceArxiv prefers published versions over preprints.
	ReplaceArxiv bool
	// ForceTitlecase re-capitalizes titles that fail the heuristic.
	ForceTitlecase bool
	// NoPublisher removes publisher from articles and conference papers.
	NoPublisher bool
	// ProcessConfLoc extracts conference locations from proceedings names.
	ProcessConfLoc bool
	// SortBy lists output sort keys ("ID" = citation key); empty keeps
	// input order.
	SortBy []string
	// Pretty enables aligned output formatting.
	Pretty bool
}

// Pipeline processes one bibliography file entry by entry,
// sequentially: each entry is fully resolved before the next begins.
type Pipeline struct {
	searcher  Searcher
	selector  *match.Selector
	sink      match.Sink
	confirm   ConfirmationPolicy
	extractor *confloc.Extractor
	opts      Options
}

// New assembles a pipeline. sink and confirm may be nil (discard events,
// accept everything); extractor may be nil unless ProcessConfLoc is set.
func New(searcher Searcher, sink match.Sink, confirm ConfirmationPolicy, extractor *confloc.Extractor, opts Options) *Pipeline {
	if sink == nil {
		sink = match.NopSink{}
	}
	if confirm == nil {
		confirm = AlwaysAccept{}
	}
	return &Pipeline{
		searcher:  searcher,
		selector:  match.NewSelector(sink),
		sink:      sink,
		confirm:   confirm,
		extractor: extractor,
		opts:      opts,
	}
}

// Run loads inPath, processes every entry and writes the result to
// outPath. Per-entry failures are isolated; nothing is written unless
// the whole pass completes with the entry count unchanged.
func (p *Pipeline) Run(ctx context.Context, inPath, outPath string) error {
	entries, err := bib.Load(inPath)
	if err != nil {
		return err
	}
	p.sink.Info("Bibliography file loaded successfully.")
	origCount := len(entries)

	for i := range entries {
		if err := p.processEntry(ctx, entries, i); err != nil {
			return err
		}
	}

	// Entries are never added or removed; a count change is a logic
	// defect, not a data problem.
	if len(entries) != origCount {
		return fmt.Errorf("%w: %d != %d", ErrCountMismatch, len(entries), origCount)
	}

	if err := bib.Save(outPath, entries, bib.WriteOptions{SortBy: p.opts.SortBy, Pretty: p.opts.Pretty}); err != nil {
		return err
	}
	p.sink.Info(fmt.Sprintf("Saving the results to %s.", outPath))
	return nil
}

// processEntry resolves one entry in place. Only confirmation I/O
// failures propagate; lookup and parse failures degrade to keeping the
// original.
func (p *Pipeline) processEntry(ctx context.Context, entries []*bib.Entry, i int) error {
	orig := entries[i]

	names, err := authors.Canonical(orig)
	if err != nil || len(names) == 0 {
		// No first author means no query; the entry stays as-is.
		if orig.Author != "" {
			p.sink.Warning(fmt.Sprintf("Cannot parse authors: %s", orig.Author))
		} else {
			p.sink.Warning(fmt.Sprintf("No authors found: %s", orig.Title))
		}
		return nil
	}

	candidates := p.search(ctx, dblp.Query(orig.Title, names[0]))
	decision := p.selector.Select(candidates, orig, p.opts.ReplaceArxiv)

	if decision.Entry == nil {
		p.keepOriginal(orig)
		return nil
	}

	replacement := decision.Entry.Clone()
	// The replacement is re-stamped with the original citation key.
	replacement.Key = orig.Key

	if p.opts.ProcessConfLoc && p.extractor != nil &&
		replacement.Type == "inproceedings" && replacement.Booktitle != "" {
		name, address, err := p.extractor.Extract(replacement.Booktitle)
		if err != nil {
			p.sink.Warning(fmt.Sprintf("location extraction failed: %v", err))
		} else {
			replacement.Booktitle = name
			if address != "" {
				replacement.Address = address
			}
		}
	}

	if p.opts.ForceTitlecase && !titles.IsTitlecased(replacement.Title) {
		replacement.Title = titles.Recapitalize(replacement.Title)
	}
	replacement.Title = titles.Protect(replacement.Title)

	ok, err := p.confirm.Confirm(orig, replacement)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	entries[i] = replacement
	p.sink.Updated(replacement, decision.Outcome)
	p.finalize(replacement)
	return nil
}

// keepOriginal applies title fixes to an entry that found no
// replacement.
func (p *Pipeline) keepOriginal(e *bib.Entry) {
	title := e.Title
	if p.opts.ForceTitlecase && !titles.IsTitlecased(title) {
		title = titles.Recapitalize(title)
	}
	e.Title = titles.Protect(title)
	p.sink.Kept(e)
	p.finalize(e)
}

// finalize applies the field-level cleanups every written entry gets.
func (p *Pipeline) finalize(e *bib.Entry) {
	if p.opts.NoPublisher && (e.Type == "article" || e.Type == "inproceedings") {
		e.Delete(bib.FieldPublisher)
	}
	for range bib.Clean(e) {
		p.sink.Warning("Extra parentheses detected in entry")
	}
}

// search fetches candidates, mapping every lookup failure to "zero
// candidates" so one failed query never aborts the batch.
func (p *Pipeline) search(ctx context.Context, query string) []*bib.Entry {
	candidates, err := p.searcher.Search(ctx, query)
	if err != nil {
		p.sink.Error(err.Error())
		return nil
	}
	return candidates
}
