package errlog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var scenario = []string{
	"[2024-01-01 00:00:00] PHP Notice: foo",
	"[2024-01-01 00:00:01] PHP Fatal error: bar",
	"Stack trace:",
	"#0 {main}",
	"thrown in /x on line 1",
}

func TestAnalyze_Scenarios(t *testing.T) {
	reversed := AllEnabled()
	reversed.ReverseOrder = true

	tests := []struct {
		name          string
		src           Source
		opts          Options
		wantOrder     []int
		wantTotal     int
		wantDisplayed int
		wantErr       error
	}{
		{
			name:          "natural order",
			src:           Source{Lines: scenario, Available: true},
			opts:          AllEnabled(),
			wantOrder:     []int{0, 1, 2, 3, 4},
			wantTotal:     2,
			wantDisplayed: 2,
		},
		{
			name:          "reverse order keeps trace under its error",
			src:           Source{Lines: scenario, Available: true},
			opts:          reversed,
			wantOrder:     []int{1, 2, 3, 4, 0},
			wantTotal:     2,
			wantDisplayed: 2,
		},
		{
			name:          "only notices",
			src:           Source{Lines: scenario, Available: true},
			opts:          AllEnabled().Only(Notice),
			wantOrder:     []int{0, 1, 2, 3, 4},
			wantTotal:     2,
			wantDisplayed: 1,
		},
		{
			name:      "empty log",
			src:       Source{Available: true},
			opts:      AllEnabled(),
			wantOrder: []int{},
		},
		{
			name:      "missing log",
			src:       Source{},
			opts:      AllEnabled(),
			wantOrder: []int{},
			wantErr:   ErrLogUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Analyze(tt.src, tt.opts)
			if diff := cmp.Diff(tt.wantOrder, res.Order); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
			if res.Counts.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", res.Counts.Total, tt.wantTotal)
			}
			if res.Counts.Displayed != tt.wantDisplayed {
				t.Errorf("Displayed = %d, want %d", res.Counts.Displayed, tt.wantDisplayed)
			}
			if !errors.Is(res.Err(), tt.wantErr) {
				t.Errorf("Err() = %v, want %v", res.Err(), tt.wantErr)
			}
		})
	}
}

func TestAnalyze_OnlyNoticesHidesErrorTrace(t *testing.T) {
	opts := AllEnabled().Only(Notice, StackTraceTitle, StackTraceStep, StackTraceOrigin)
	res := Analyze(Source{Lines: scenario, Available: true}, opts)
	if diff := cmp.Diff([]int{0}, res.Visible); diff != "" {
		t.Fatalf("Visible mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_BlankLinesKeepIndices(t *testing.T) {
	raw := []string{"PHP Warning: a", "", "   ", "PHP Notice: b"}
	res := Analyze(Source{Lines: raw, Available: true}, AllEnabled())
	if diff := cmp.Diff([]int{0, 3}, res.Order); diff != "" {
		t.Fatalf("Order mismatch (-want +got):\n%s", diff)
	}
	line, ok := res.Line(3)
	if !ok || line.Category != Notice {
		t.Fatalf("Line(3) = %+v, %v; want notice", line, ok)
	}
	if _, ok := res.Line(1); ok {
		t.Fatalf("Line(1) found a blank line")
	}
}

func TestAnalyze_DecoratedTextFollowsOptions(t *testing.T) {
	opts := AllEnabled()
	opts.ShowDatetime = false
	res := Analyze(Source{Lines: scenario, Available: true}, opts)
	line, _ := res.Line(0)
	if line.Decorated != "**PHP Notice:** foo" {
		t.Fatalf("Decorated = %q", line.Decorated)
	}
	if line.Text != scenario[0] {
		t.Fatalf("Text = %q, want raw text", line.Text)
	}
}

func TestOptionsFromMap(t *testing.T) {
	opts, err := OptionsFromMap(map[string]bool{
		"notice":            true,
		"stackTraceStep":    true,
		"error":             false,
		"reverseOrder":      true,
		"show_datetime":     true,
		"stack_trace_title": true,
	})
	if err != nil {
		t.Fatalf("OptionsFromMap error = %v", err)
	}
	if !opts.IsEnabled(Notice) || !opts.IsEnabled(StackTraceStep) || !opts.IsEnabled(StackTraceTitle) {
		t.Errorf("expected notice and trace categories enabled: %s", opts)
	}
	if opts.IsEnabled(Error) || opts.IsEnabled(Warning) {
		t.Errorf("expected error and absent warning disabled: %s", opts)
	}
	if !opts.ReverseOrder || !opts.ShowDatetime || opts.ShowOrphans {
		t.Errorf("flags = %s", opts)
	}

	if _, err := OptionsFromMap(map[string]bool{"fatal": true}); err == nil {
		t.Fatalf("OptionsFromMap accepted unknown key")
	}
}

func TestOptions_ToggleDoesNotMutate(t *testing.T) {
	base := AllEnabled()
	toggled := base.Toggle(Error)
	if !base.IsEnabled(Error) {
		t.Fatalf("Toggle mutated the receiver")
	}
	if toggled.IsEnabled(Error) {
		t.Fatalf("Toggle did not disable error")
	}
}

func TestAnalyze_TraceFramesNamingCategoriesStayAttached(t *testing.T) {
	lines := []string{
		"[2024-01-01 00:00:00] PHP Fatal error:  Uncaught LogicException: nope in /var/www/app/Notice.php:14",
		"Stack trace:",
		`#0 /var/www/app/Notice.php(14): App\Notice::send()`,
		`#1 /var/www/lib/Call.php(9): Lib\Deprecated::call()`,
		"thrown in /var/www/app/Notice.php on line 14",
	}
	opts := AllEnabled()
	opts.ReverseOrder = true

	res := Analyze(Source{Lines: lines, Available: true}, opts)

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, res.Order); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
	if res.Counts.Total != 1 {
		t.Errorf("Total = %d, want 1", res.Counts.Total)
	}
	if len(res.Groups.Orphans) != 0 {
		t.Errorf("Orphans = %v, want none", res.Groups.Orphans)
	}
	for i := 1; i < len(lines); i++ {
		if parent, ok := res.Groups.ParentOf(i); !ok || parent != 0 {
			t.Errorf("ParentOf(%d) = %d, %v, want 0, true", i, parent, ok)
		}
	}
}
