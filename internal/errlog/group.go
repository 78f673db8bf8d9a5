package errlog

// Groups records which primary line owns each stack trace line.
type Groups struct {
	// Parent maps a continuation line's index to its owning primary index.
	Parent map[int]int
	// Orphans lists continuation lines with no preceding primary line, in
	// ascending index order.
	Orphans []int
}

// ParentOf returns the owning primary index for a continuation line.
func (g Groups) ParentOf(index int) (int, bool) {
	p, ok := g.Parent[index]
	return p, ok
}

// IsOrphan reports whether index is a continuation line with no parent.
func (g Groups) IsOrphan(index int) bool {
	for _, o := range g.Orphans {
		if o == index {
			return true
		}
		if o > index {
			break
		}
	}
	return false
}

// Group attaches every continuation line to the nearest primary line before
// it in file order. lines must be in ascending index order.
func Group(lines []LogLine) Groups {
	g := Groups{Parent: make(map[int]int)}
	lastPrimary, havePrimary := 0, false
	for _, l := range lines {
		if !l.Category.IsContinuation() {
			lastPrimary, havePrimary = l.Index, true
			continue
		}
		if havePrimary {
			g.Parent[l.Index] = lastPrimary
		} else {
			g.Orphans = append(g.Orphans, l.Index)
		}
	}
	return g
}
