package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/errlens/internal/errlog"
)

var sample = []string{
	"[2024-01-01 00:00:00] PHP Notice: foo",
	"[2024-01-01 00:00:01] PHP Fatal error: bar",
	"Stack trace:",
	"#0 {main}",
	"thrown in /x on line 1",
}

func analyze(t *testing.T, reverse bool) errlog.Result {
	t.Helper()
	opts := errlog.AllEnabled()
	opts.ReverseOrder = reverse
	opts.ShowDatetime = false
	return errlog.Analyze(errlog.Source{Lines: sample, Available: true}, opts)
}

func TestTextRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer("Dracula", true, false)
	if err := r.Render(&buf, analyze(t, true)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"**PHP Fatal error:** bar",
		"    Stack trace:",
		"    #0 {main}",
		"    thrown in /x on line 1",
		"**PHP Notice:** foo",
		"Showing 2 of 2 entries",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRenderer_LineNumbers(t *testing.T) {
	r := NewTextRenderer("Slate", true, true)
	got := r.Lines(analyze(t, false))
	if len(got) != 5 {
		t.Fatalf("Lines() returned %d lines, want 5", len(got))
	}
	if want := "    4 │     #0 {main}"; got[3] != want {
		t.Fatalf("Lines()[3] = %q, want %q", got[3], want)
	}
}

func TestTextRenderer_StyledKeepsText(t *testing.T) {
	r := NewTextRenderer("Dracula", false, false)
	res := analyze(t, false)
	line, _ := res.Line(1)
	got := r.Line(line, false)
	for _, want := range []string{"PHP Fatal error:", "bar"} {
		if !strings.Contains(got, want) {
			t.Errorf("Line() = %q, want it to contain %q", got, want)
		}
	}
	if strings.Contains(got, "2024-01-01") {
		t.Errorf("Line() = %q, datetime should be hidden", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		res  errlog.Result
		want string
	}{
		{"unavailable", errlog.Analyze(errlog.Source{}, errlog.AllEnabled()), "No log file found"},
		{"empty", errlog.Analyze(errlog.Source{Available: true}, errlog.AllEnabled()), "The log is empty."},
		{"only orphaned trace lines", errlog.Analyze(errlog.Source{Lines: []string{"#0 {main}", "thrown in /x on line 1"}, Available: true}, errlog.AllEnabled()), "Showing 0 of 0 entries"},
		{"filtered", errlog.Analyze(errlog.Source{Lines: sample, Available: true}, errlog.AllEnabled().Only(errlog.Notice)), "Showing 1 of 2 entries"},
		{"single", errlog.Analyze(errlog.Source{Lines: sample[:1], Available: true}, errlog.AllEnabled()), "Showing 1 of 1 entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summary(tt.res); !strings.HasPrefix(got, tt.want) {
				t.Errorf("Summary() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONRenderer{}).Render(&buf, analyze(t, true)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("Render() wrote %d lines, want 5", len(lines))
	}

	var first, second struct {
		Index    int    `json:"index"`
		Category string `json:"category"`
		Parent   *int   `json:"parent"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if first.Index != 1 || first.Category != "error" || first.Parent != nil {
		t.Errorf("first = %+v", first)
	}
	if second.Category != "stackTraceTitle" || second.Parent == nil || *second.Parent != 1 {
		t.Errorf("second = %+v", second)
	}
}

func TestCountsTable(t *testing.T) {
	res := errlog.Analyze(errlog.Source{Lines: sample, Available: true}, errlog.AllEnabled().Only(errlog.Notice))
	got := CountsTable(res)
	for _, want := range []string{"notice            1  shown", "error             1  hidden", "total             2", "displayed         1"} {
		if !strings.Contains(got, want) {
			t.Errorf("CountsTable() missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "stackTrace") {
		t.Errorf("CountsTable() lists continuation categories:\n%s", got)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q", got)
	}
	if got := NextTheme("unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(unknown) = %q", got)
	}
	if GetTheme("nope").Name != "Dracula" {
		t.Fatalf("GetTheme fallback is not Dracula")
	}
}

func TestJSONRenderer_MarksOrphans(t *testing.T) {
	opts := errlog.AllEnabled()
	opts.ShowOrphans = true
	res := errlog.Analyze(errlog.Source{Lines: []string{"#0 {main}", "PHP Notice: n"}, Available: true}, opts)

	var buf bytes.Buffer
	if err := (JSONRenderer{}).Render(&buf, res); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"orphan":true`) || strings.Contains(lines[1], "orphan") {
		t.Fatalf("orphan flags wrong:\n%s", buf.String())
	}
}
