package fix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bibfix/bibfix/internal/bib"
)

// ConfirmationPolicy decides whether a selected replacement is applied.
// The selection core stays synchronous and prompt-free; only the policy
// blocks.
type ConfirmationPolicy interface {
	Confirm(orig, replacement *bib.Entry) (bool, error)
}

// AlwaysAccept applies every replacement without asking. Batch mode.
type AlwaysAccept struct{}

func (AlwaysAccept) Confirm(orig, replacement *bib.Entry) (bool, error) {
	return true, nil
}

// Prompt asks the user to accept or reject each replacement. Only "y"
// or "n" (case-insensitive) are accepted; anything else re-prompts.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates an interactive confirmation policy reading from in
// and writing to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Confirm(orig, replacement *bib.Entry) (bool, error) {
	fmt.Fprintf(p.out, "\n---------------- Original ----------------\n%s\n", renderOne(orig))
	fmt.Fprintf(p.out, "\n---------------- Retrieved ---------------\n%s\n", renderOne(replacement))

	for {
		fmt.Fprint(p.out, "==> Replace the entry (y/n)?: ")
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please accept (y) or reject (n) the change.")
	}
}

func renderOne(e *bib.Entry) string {
	return bib.Render([]*bib.Entry{e}, bib.WriteOptions{Pretty: true})
}
