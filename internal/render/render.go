// Package render turns analysed logs into terminal text or JSON lines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/errlens/internal/errlog"
)

// Renderer writes the visible lines of a Result to w.
type Renderer interface {
	Render(w io.Writer, res errlog.Result) error
}

// continuationIndent sets stack trace lines apart from their entry.
const continuationIndent = "    "

// ---------------------------------------------------------------------------
// Text Renderer
// ---------------------------------------------------------------------------

// TextRenderer prints decorated lines styled by category. With Plain set it
// writes errlog.DefaultMarkup text and no escape sequences.
type TextRenderer struct {
	Styles      Styles
	Plain       bool
	LineNumbers bool
}

// NewTextRenderer returns a TextRenderer using the named theme.
func NewTextRenderer(theme string, plain, lineNumbers bool) TextRenderer {
	return TextRenderer{Styles: GetTheme(theme).Styles(), Plain: plain, LineNumbers: lineNumbers}
}

// Render writes every visible line followed by a one-line summary.
func (r TextRenderer) Render(w io.Writer, res errlog.Result) error {
	for _, line := range r.Lines(res) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	footer := Summary(res)
	if !r.Plain {
		footer = r.Styles.Footer.Render(footer)
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}

// Lines renders the visible lines of res in display order.
func (r TextRenderer) Lines(res errlog.Result) []string {
	out := make([]string, 0, len(res.Visible))
	for _, index := range res.Visible {
		line, ok := res.Line(index)
		if !ok {
			continue
		}
		out = append(out, r.Line(line, res.Options.ShowDatetime))
	}
	return out
}

// Line renders a single log line.
func (r TextRenderer) Line(line errlog.LogLine, showDatetime bool) string {
	var b strings.Builder
	if r.LineNumbers {
		num := fmt.Sprintf("%5d │ ", line.Index+1)
		if !r.Plain {
			num = r.Styles.Muted.Render(num)
		}
		b.WriteString(num)
	}
	if line.Category.IsContinuation() {
		b.WriteString(continuationIndent)
	}

	if r.Plain {
		b.WriteString(errlog.DefaultMarkup.Decorate(line.Text, showDatetime))
		return b.String()
	}

	base := r.Styles.Category(line.Category)
	for _, seg := range errlog.Segments(line.Text, showDatetime) {
		switch seg.Kind {
		case errlog.SegmentTitle:
			b.WriteString(base.Bold(true).Render(seg.Text))
		case errlog.SegmentDatetime:
			b.WriteString(r.Styles.Datetime.Render(seg.Text))
		default:
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// Summary describes the counts of res, or why there is nothing to show.
func Summary(res errlog.Result) string {
	if !res.Available {
		return "No log file found. Point log_path in the config (or --log) at your PHP error log."
	}
	if len(res.Lines) == 0 {
		return "The log is empty."
	}
	noun := "entries"
	if res.Counts.Total == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("Showing %d of %d %s", res.Counts.Displayed, res.Counts.Total, noun)
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints each visible line as a single JSON object per line.
type JSONRenderer struct{}

type jsonLine struct {
	errlog.LogLine
	Parent *int `json:"parent,omitempty"`
	Orphan bool `json:"orphan,omitempty"`
}

// Render writes one JSON object per visible line. Nothing is written for an
// unavailable log; callers report that through Result.Err.
func (JSONRenderer) Render(w io.Writer, res errlog.Result) error {
	enc := json.NewEncoder(w)
	for _, index := range res.Visible {
		line, ok := res.Line(index)
		if !ok {
			continue
		}
		out := jsonLine{LogLine: line, Orphan: res.Groups.IsOrphan(index)}
		if parent, ok := res.Groups.ParentOf(index); ok {
			out.Parent = &parent
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return nil
}

// CountsTable formats per-category counts as aligned text.
func CountsTable(res errlog.Result) string {
	var b strings.Builder
	for _, c := range errlog.Categories() {
		if c.IsContinuation() {
			continue
		}
		state := "hidden"
		if res.Options.IsEnabled(c) {
			state = "shown"
		}
		fmt.Fprintf(&b, "%-12s %6d  %s\n", c, res.Counts.ByCategory[c], state)
	}
	fmt.Fprintf(&b, "%-12s %6d\n", "total", res.Counts.Total)
	fmt.Fprintf(&b, "%-12s %6d\n", "displayed", res.Counts.Displayed)
	return b.String()
}
