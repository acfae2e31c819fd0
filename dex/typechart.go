package dex

// TypeChart is a flat attack×defense effectiveness matrix over the known
// type names. Unknown types resolve to neutral so a malformed snapshot
// degrades to 1.0 rather than failing.
type TypeChart struct {
	names []string
	index map[string]int
	grid  []float64 // row-major: grid[att*len(names) + def]
}

func newTypeChart(names []string) *TypeChart {
	c := &TypeChart{
		names: names,
		index: make(map[string]int, len(names)),
		grid:  make([]float64, len(names)*len(names)),
	}
	for i, n := range names {
		c.index[Normalize(n)] = i
	}
	for i := range c.grid {
		c.grid[i] = 1.0
	}
	return c
}

func (c *TypeChart) set(attacking, defending string, mult float64) {
	a, okA := c.index[Normalize(attacking)]
	d, okD := c.index[Normalize(defending)]
	if !okA || !okD {
		return
	}
	c.grid[a*len(c.names)+d] = mult
}

// Effectiveness returns the multiplier for an attacking type into a single
// defending type. Unknown types are neutral.
func (c *TypeChart) Effectiveness(attacking, defending string) float64 {
	a, okA := c.index[Normalize(attacking)]
	d, okD := c.index[Normalize(defending)]
	if !okA || !okD {
		return 1.0
	}
	return c.grid[a*len(c.names)+d]
}

// Matchup multiplies effectiveness across all defending types.
func (c *TypeChart) Matchup(attacking string, defending []string) float64 {
	mult := 1.0
	for _, d := range defending {
		mult *= c.Effectiveness(attacking, d)
	}
	return mult
}

// Types returns the known type names in chart order.
func (c *TypeChart) Types() []string { return c.names }
