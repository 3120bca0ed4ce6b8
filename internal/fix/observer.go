package fix

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bibfix/bibfix/internal/authors"
	"github.com/bibfix/bibfix/internal/bib"
	"github.com/bibfix/bibfix/internal/match"
)

// Summary renders a one-line description of an entry for reporting:
// "(Surname, Year)  Title  [url]".
func Summary(e *bib.Entry) string {
	var parts []string

	names, _ := authors.Canonical(e)
	if len(names) > 0 && e.Year != "" {
		fields := strings.Fields(names[0])
		surname := fields[len(fields)-1]
		parts = append(parts, padRight(fmt.Sprintf("(%s, %s)", surname, e.Year), 20))
	}

	title := strings.NewReplacer("\n", " ", "{", "", "}", "").Replace(e.Title)
	if len(title) > 100 {
		title = title[:97] + "..."
	}
	parts = append(parts, padRight(title, 100))

	if e.URL != "" {
		parts = append(parts, "["+e.URL+"]")
	}
	return strings.Join(parts, " ")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// LogSink renders selection events as leveled, labeled log lines.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink writing to w.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{logger: log.New(w)}
}

var _ match.Sink = (*LogSink)(nil)

func (s *LogSink) Updated(e *bib.Entry, outcome match.Outcome) {
	s.logger.WithPrefix("[" + outcome.String() + "]").Info(Summary(e))
}

func (s *LogSink) Kept(e *bib.Entry) {
	s.logger.WithPrefix("[KEEP]").Info(Summary(e))
}

func (s *LogSink) ArxivKept(e *bib.Entry) {
	s.logger.WithPrefix("[KEEP_ARX]").Info(Summary(e))
}

func (s *LogSink) Warning(msg string) {
	s.logger.Warn(msg)
}

func (s *LogSink) Error(msg string) {
	s.logger.Error(msg)
}

func (s *LogSink) Info(msg string) {
	s.logger.Info(msg)
}
