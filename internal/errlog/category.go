package errlog

import (
	"fmt"
	"strings"
)

// Category is the classification assigned to a single log line.
type Category int

const (
	Deprecated Category = iota
	Notice
	Warning
	Error
	StackTraceTitle
	StackTraceStep
	StackTraceOrigin
	Other
)

var categoryNames = [...]string{
	Deprecated:       "deprecated",
	Notice:           "notice",
	Warning:          "warning",
	Error:            "error",
	StackTraceTitle:  "stackTraceTitle",
	StackTraceStep:   "stackTraceStep",
	StackTraceOrigin: "stackTraceOrigin",
	Other:            "other",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		Deprecated, Notice, Warning, Error,
		StackTraceTitle, StackTraceStep, StackTraceOrigin, Other,
	}
}

func (c Category) String() string {
	if c < Deprecated || c > Other {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsContinuation reports whether lines of this category belong to a stack
// trace rather than standing on their own.
func (c Category) IsContinuation() bool {
	return c == StackTraceTitle || c == StackTraceStep || c == StackTraceOrigin
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a category name. Matching ignores case, '_' and '-'
// so "stack_trace_step" and "stackTraceStep" are equivalent.
func ParseCategory(name string) (Category, error) {
	key := normalizeKey(name)
	for _, c := range Categories() {
		if normalizeKey(c.String()) == key {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown category %q", name)
}

func normalizeKey(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
