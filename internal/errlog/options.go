package errlog

import (
	"fmt"
	"strings"
)

// Options selects which categories are shown and how the log is presented.
type Options struct {
	// Enabled maps a category to its visibility. Absent keys are disabled.
	Enabled      map[Category]bool
	ShowDatetime bool
	ReverseOrder bool
	// ShowOrphans allows stack trace lines with no owning entry to be shown.
	ShowOrphans bool
}

// AllEnabled returns options with every category visible, datetimes shown and
// natural file order.
func AllEnabled() Options {
	opts := Options{Enabled: make(map[Category]bool, len(categoryNames)), ShowDatetime: true}
	for _, c := range Categories() {
		opts.Enabled[c] = true
	}
	return opts
}

// IsEnabled reports whether lines of category c should be displayed.
func (o Options) IsEnabled(c Category) bool {
	return o.Enabled[c]
}

// Only returns a copy of o with exactly the given categories enabled.
func (o Options) Only(cats ...Category) Options {
	out := o
	out.Enabled = make(map[Category]bool, len(cats))
	for _, c := range cats {
		out.Enabled[c] = true
	}
	return out
}

// Toggle returns a copy of o with category c flipped.
func (o Options) Toggle(c Category) Options {
	out := o
	out.Enabled = make(map[Category]bool, len(o.Enabled)+1)
	for k, v := range o.Enabled {
		out.Enabled[k] = v
	}
	out.Enabled[c] = !o.Enabled[c]
	return out
}

// OptionsFromMap interprets a flat key/value filter set. The eight category
// names plus showDatetime, reverseOrder and showOrphans are recognised; keys
// that are absent are false.
func OptionsFromMap(values map[string]bool) (Options, error) {
	opts := Options{Enabled: make(map[Category]bool, len(categoryNames))}
	for key, on := range values {
		switch normalizeKey(key) {
		case "showdatetime":
			opts.ShowDatetime = on
			continue
		case "reverseorder":
			opts.ReverseOrder = on
			continue
		case "showorphans":
			opts.ShowOrphans = on
			continue
		}
		c, err := ParseCategory(key)
		if err != nil {
			return Options{}, fmt.Errorf("filter option: %w", err)
		}
		opts.Enabled[c] = on
	}
	return opts, nil
}

// EnabledNames lists the enabled categories by name, in category order.
func (o Options) EnabledNames() []string {
	var names []string
	for _, c := range Categories() {
		if o.IsEnabled(c) {
			names = append(names, c.String())
		}
	}
	return names
}

func (o Options) String() string {
	return fmt.Sprintf("enabled=[%s] datetime=%t reverse=%t orphans=%t",
		strings.Join(o.EnabledNames(), ","), o.ShowDatetime, o.ReverseOrder, o.ShowOrphans)
}
