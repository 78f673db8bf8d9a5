package errlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecorate(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		showDatetime bool
		want         string
	}{
		{
			name:         "datetime shown",
			line:         "[2024-01-01 00:00:00] PHP Notice: foo",
			showDatetime: true,
			want:         "`[2024-01-01 00:00:00]` **PHP Notice:** foo",
		},
		{
			name: "datetime hidden",
			line: "[2024-01-01 00:00:00] PHP Notice: foo",
			want: "**PHP Notice:** foo",
		},
		{
			name: "vendor prefix stripped",
			line: "[18-Oct-2026 09:15:02 UTC] mod_fcgid: stderr: PHP Warning: x",
			want: "**PHP Warning:** x",
		},
		{
			name: "stderr in message kept",
			line: "PHP Fatal error: cannot write to stderr: #1 closed",
			want: "**PHP Fatal error:** cannot write to stderr: #1 closed",
		},
		{
			name:         "multi word title",
			line:         "[18-Oct-2026 09:15:02 Europe/Rome] PHP Fatal error:  Uncaught Exception: boom",
			showDatetime: true,
			want:         "`[18-Oct-2026 09:15:02 Europe/Rome]` **PHP Fatal error:**  Uncaught Exception: boom",
		},
		{
			name:         "non datetime brackets untouched",
			line:         "[client 10.0.0.1] PHP Notice: foo",
			showDatetime: false,
			want:         "[client 10.0.0.1] **PHP Notice:** foo",
		},
		{
			name: "plain line unchanged",
			line: "#0 {main}",
			want: "#0 {main}",
		},
		{
			name:         "datetime in middle",
			line:         "worker-3 [2024-01-01 00:00:00] boot",
			showDatetime: false,
			want:         "worker-3 boot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decorate(tt.line, tt.showDatetime); got != tt.want {
				t.Errorf("Decorate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	got := Segments("[2024-01-01 00:00:01] PHP Fatal error: bar", true)
	want := []Segment{
		{Kind: SegmentDatetime, Text: "[2024-01-01 00:00:01]"},
		{Kind: SegmentText, Text: " "},
		{Kind: SegmentTitle, Text: "PHP Fatal error:"},
		{Kind: SegmentText, Text: " bar"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Segments() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkup_Join(t *testing.T) {
	m := Markup{TitleOpen: "<", TitleClose: ">", DatetimeOpen: "(", DatetimeClose: ")"}
	got := m.Decorate("[2024-01-01 00:00:00] PHP Notice: foo", true)
	want := "([2024-01-01 00:00:00]) <PHP Notice:> foo"
	if got != want {
		t.Fatalf("Decorate() = %q, want %q", got, want)
	}
}
