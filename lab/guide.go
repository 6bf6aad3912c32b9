package lab

// Guide cycles through the NPC's tips.
type Guide struct {
	lines  []string
	index  int
	active bool
}

func NewGuide(lines []string) *Guide {
	return &Guide{lines: lines, active: true}
}

// Next advances to the following tip, wrapping at the end.
func (g *Guide) Next() string {
	g.active = true
	if len(g.lines) == 0 {
		return ""
	}
	g.index = (g.index + 1) % len(g.lines)
	return g.lines[g.index]
}

func (g *Guide) Current() string {
	if len(g.lines) == 0 {
		return ""
	}
	return g.lines[g.index]
}

func (g *Guide) Index() int   { return g.index }
func (g *Guide) Active() bool { return g.active }

// Door is the lab entrance. The visitor counts as entered once it has been
// opened the first time.
type Door struct {
	open    bool
	entered bool
}

func (d *Door) Toggle() (open bool) {
	d.open = !d.open
	if d.open {
		d.entered = true
	}
	return d.open
}

func (d *Door) Open() bool    { return d.open }
func (d *Door) Entered() bool { return d.entered }
