package errlog

import (
	"errors"
	"sort"
	"strings"
)

// ErrLogUnavailable reports that the log source does not exist or could not
// be read. It is distinct from a log that exists but is empty.
var ErrLogUnavailable = errors.New("log unavailable")

// LogLine is one non-blank line of the log.
type LogLine struct {
	Index     int      `json:"index"`
	Text      string   `json:"text"`
	Category  Category `json:"category"`
	Decorated string   `json:"decorated"`
}

// Source is the raw log handed to Analyze. Available is false when the log
// could not be found or read.
type Source struct {
	Lines     []string
	Available bool
}

// Result is everything derived from one Source and one set of Options.
type Result struct {
	Available bool
	Lines     []LogLine
	Groups    Groups
	// Order holds every line index in presentation order.
	Order []int
	// Visible is Order restricted to the lines that pass the filters.
	Visible []int
	Counts  Counts
	Options Options
}

// Err returns ErrLogUnavailable when the source was missing.
func (r Result) Err() error {
	if !r.Available {
		return ErrLogUnavailable
	}
	return nil
}

// Line looks up a line by its original index.
func (r Result) Line(index int) (LogLine, bool) {
	i := sort.Search(len(r.Lines), func(i int) bool { return r.Lines[i].Index >= index })
	if i < len(r.Lines) && r.Lines[i].Index == index {
		return r.Lines[i], true
	}
	return LogLine{}, false
}

// ParseLines trims, classifies and decorates raw lines. Blank lines are
// dropped but the remaining lines keep their position in raw as Index.
func ParseLines(raw []string, showDatetime bool) []LogLine {
	lines := make([]LogLine, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, LogLine{
			Index:     i,
			Text:      text,
			Category:  Classify(text),
			Decorated: Decorate(text, showDatetime),
		})
	}
	return lines
}

// Analyze runs the full pipeline: classify, group, reorder, filter and count.
// It is a pure function of its inputs.
func Analyze(src Source, opts Options) Result {
	res := Result{Available: src.Available, Options: opts, Counts: Counts{ByCategory: map[Category]int{}}}
	if !src.Available {
		res.Order, res.Visible = []int{}, []int{}
		return res
	}
	res.Lines = ParseLines(src.Lines, opts.ShowDatetime)
	res.Groups = Group(res.Lines)
	res.Order = Reorder(res.Lines, res.Groups, opts.ReverseOrder)
	res.Visible = Visible(res.Lines, res.Groups, res.Order, opts)
	res.Counts = Count(res.Lines, opts)
	return res
}
