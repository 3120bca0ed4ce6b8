package match

import "github.com/bibfix/bibfix/internal/bib"

// Outcome classifies what a selection decision means for the original
// entry.
type Outcome int

const (
	// OutcomeKeep means no replacement was selected.
	OutcomeKeep Outcome = iota
	// OutcomeEquivalent means the replacement describes the same
	// publication instance as the original.
	OutcomeEquivalent
	// OutcomeArxivUpgrade means a preprint original was replaced by a
	// published version.
	OutcomeArxivUpgrade
	// OutcomeUpdate means a different (non-equivalent) version was
	// selected as the replacement.
	OutcomeUpdate
)

// String returns the log label for an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeEquivalent, OutcomeUpdate:
		return "UPDATE"
	case OutcomeArxivUpgrade:
		return "UPD_ARX"
	default:
		return "KEEP"
	}
}

// Sink receives structured events from the selection core and the
// driver. Implementations decide how (or whether) to render them; the
// core itself carries no output-formatting concerns.
type Sink interface {
	// Updated fires when a replacement entry is adopted.
	Updated(e *bib.Entry, outcome Outcome)
	// Kept fires when the original entry is kept.
	Kept(e *bib.Entry)
	// ArxivKept fires when a published version exists for a preprint
	// original but replacement preference is off.
	ArxivKept(e *bib.Entry)
	Warning(msg string)
	Error(msg string)
	Info(msg string)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Updated(*bib.Entry, Outcome) {}
func (NopSink) Kept(*bib.Entry)             {}
func (NopSink) ArxivKept(*bib.Entry)        {}
func (NopSink) Warning(string)              {}
func (NopSink) Error(string)                {}
func (NopSink) Info(string)                 {}
