package errlog

import (
	"regexp"
	"sort"
	"strings"
)

// SegmentKind identifies how a piece of a decorated line should be presented.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentTitle
	SegmentDatetime
)

// Segment is a contiguous piece of a decorated line.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Markup wraps title and datetime segments when a decorated line is flattened
// back into a single string.
type Markup struct {
	TitleOpen     string
	TitleClose    string
	DatetimeOpen  string
	DatetimeClose string
}

// DefaultMarkup emphasises titles with ** and quotes datetimes with backticks.
var DefaultMarkup = Markup{TitleOpen: "**", TitleClose: "**", DatetimeOpen: "`", DatetimeClose: "`"}

var (
	// Matches PHP's own "[18-Oct-2026 09:15:02 UTC]" as well as ISO-like
	// "[2026-10-18 09:15:02]" stamps. Other bracketed text is left alone.
	datetimePattern = regexp.MustCompile(`\[(?:\d{1,2}-[A-Za-z]{3}-\d{4} \d{2}:\d{2}:\d{2}(?: [A-Za-z0-9_/+:-]+)?|\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?(?: ?[A-Za-z0-9_/+:-]+)?)\]`)
	titlePattern    = regexp.MustCompile(`PHP [A-Z][A-Za-z]*(?: [A-Za-z]+)*:`)

	vendorPrefixes = []string{"mod_fcgid: stderr: ", "FastCGI: stderr: "}
)

type span struct {
	start, end int
	kind       SegmentKind
}

// Segments splits line into plain text, title and datetime pieces. When
// showDatetime is false the datetime token is removed entirely.
func Segments(line string, showDatetime bool) []Segment {
	text := stripVendorPrefix(strings.TrimSpace(line))

	dt := datetimePattern.FindStringIndex(text)
	if dt != nil && !showDatetime {
		text = strings.TrimSpace(text[:dt[0]] + strings.TrimLeft(text[dt[1]:], " \t"))
		dt = nil
	}

	var spans []span
	if dt != nil {
		spans = append(spans, span{dt[0], dt[1], SegmentDatetime})
	}
	for _, t := range titlePattern.FindAllStringIndex(text, -1) {
		if dt != nil && t[0] < dt[1] && dt[0] < t[1] {
			continue
		}
		spans = append(spans, span{t[0], t[1], SegmentTitle})
		break
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var segs []Segment
	pos := 0
	for _, s := range spans {
		if s.start > pos {
			segs = append(segs, Segment{Kind: SegmentText, Text: text[pos:s.start]})
		}
		segs = append(segs, Segment{Kind: s.kind, Text: text[s.start:s.end]})
		pos = s.end
	}
	if pos < len(text) {
		segs = append(segs, Segment{Kind: SegmentText, Text: text[pos:]})
	}
	return segs
}

// Decorate returns the display form of line using DefaultMarkup.
func Decorate(line string, showDatetime bool) string {
	return DefaultMarkup.Decorate(line, showDatetime)
}

// Decorate returns the display form of line using m.
func (m Markup) Decorate(line string, showDatetime bool) string {
	return m.Join(Segments(line, showDatetime))
}

// Join flattens segments into a single string.
func (m Markup) Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case SegmentTitle:
			b.WriteString(m.TitleOpen)
			b.WriteString(s.Text)
			b.WriteString(m.TitleClose)
		case SegmentDatetime:
			b.WriteString(m.DatetimeOpen)
			b.WriteString(s.Text)
			b.WriteString(m.DatetimeClose)
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func stripVendorPrefix(line string) string {
	for _, p := range vendorPrefixes {
		if i := strings.Index(line, p); i >= 0 {
			line = line[:i] + line[i+len(p):]
		}
	}
	return line
}
