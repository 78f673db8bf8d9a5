package errlog

// Counts summarises how many entries a log holds and how many pass the
// current filters. Stack trace lines are details of an entry and are never
// counted.
type Counts struct {
	Total      int
	Displayed  int
	ByCategory map[Category]int
}

// Count tallies primary lines overall, per category, and those whose
// category is enabled in opts.
func Count(lines []LogLine, opts Options) Counts {
	c := Counts{ByCategory: make(map[Category]int)}
	for _, l := range lines {
		if l.Category.IsContinuation() {
			continue
		}
		c.Total++
		c.ByCategory[l.Category]++
		if opts.IsEnabled(l.Category) {
			c.Displayed++
		}
	}
	return c
}

// Visible filters a display order down to the lines that should be shown.
// A stack trace line is shown only when its own category is enabled and its
// owning entry is shown; orphans additionally require opts.ShowOrphans.
func Visible(lines []LogLine, groups Groups, order []int, opts Options) []int {
	category := make(map[int]Category, len(lines))
	for _, l := range lines {
		category[l.Index] = l.Category
	}

	shown := func(index int) bool {
		c := category[index]
		if !opts.IsEnabled(c) {
			return false
		}
		if !c.IsContinuation() {
			return true
		}
		if parent, ok := groups.ParentOf(index); ok {
			return opts.IsEnabled(category[parent])
		}
		return opts.ShowOrphans
	}

	visible := make([]int, 0, len(order))
	for _, index := range order {
		if shown(index) {
			visible = append(visible, index)
		}
	}
	return visible
}
