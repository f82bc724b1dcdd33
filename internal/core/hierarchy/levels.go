package hierarchy

// Level is one class in a linear inheritance chain.
type Level struct {
	Index      int
	ClassName  string
	ParentName string // empty at the root
	IsRoot     bool
}

// Levels returns the chain for a model, root first. Both emitters iterate this
// sequence so they always agree on depth and on "index 0 has no parent".
// A depth below 1 yields no levels.
func (n Naming) Levels(m Model, nameBase string, depth int) []Level {
	if depth < 1 {
		return nil
	}

	levels := make([]Level, depth)
	for i := range levels {
		levels[i] = Level{
			Index:     i,
			ClassName: n.ClassName(m, nameBase, i),
			IsRoot:    i == 0,
		}
		if i > 0 {
			levels[i].ParentName = levels[i-1].ClassName
		}
	}
	return levels
}
