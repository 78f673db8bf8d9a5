package errlog

import (
	"cmp"
	"slices"
)

// unit is a primary line (or an orphaned stack trace line) followed by the
// continuation lines it owns.
type unit struct {
	head    int
	members []int
}

// Reorder returns the display order of lines as original indices.
//
// In natural order this is simply ascending index. In reverse order the
// newest entry comes first while each entry's stack trace stays directly
// beneath it in the order it was logged. Simply flipping the whole sequence
// would put traces above their entries, so lines are first collected into
// units and only the units are reversed.
func Reorder(lines []LogLine, groups Groups, reverse bool) []int {
	order := make([]int, 0, len(lines))
	if !reverse {
		for _, l := range lines {
			order = append(order, l.Index)
		}
		return order
	}

	units := make([]unit, 0, len(lines))
	pos := make(map[int]int, len(lines))
	for _, l := range lines {
		if parent, ok := groups.ParentOf(l.Index); ok {
			if u, ok := pos[parent]; ok {
				units[u].members = append(units[u].members, l.Index)
				continue
			}
		}
		// Primary lines, orphans, and continuation lines whose parent is
		// missing from lines all stand alone.
		pos[l.Index] = len(units)
		units = append(units, unit{head: l.Index})
	}

	slices.SortFunc(units, func(a, b unit) int { return cmp.Compare(b.head, a.head) })
	for _, u := range units {
		order = append(order, u.head)
		order = append(order, u.members...)
	}
	return order
}
