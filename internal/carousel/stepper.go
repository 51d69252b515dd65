package carousel

import "github.com/llehouerou/showcase/internal/viewport"

// stepper holds the position arithmetic that differs between modes.
// Callers guarantee the config is not inert.
type stepper interface {
	next(pos int, cfg Config) int
	prev(pos int, cfg Config) int
	window(pos int, cfg Config, class viewport.Class) []int
	clamp(pos int, cfg Config) int
}

func stepperFor(m Mode) stepper {
	if m == Paginated {
		return paged{}
	}
	return windowed{}
}

type windowed struct{}

func (windowed) next(pos int, cfg Config) int {
	return (pos + 1) % cfg.TotalItems
}

func (windowed) prev(pos int, cfg Config) int {
	return (pos - 1 + cfg.TotalItems) % cfg.TotalItems
}

// window wraps circularly; when the collection is smaller than the page some
// indices repeat.
func (windowed) window(pos int, cfg Config, class viewport.Class) []int {
	count := cfg.PerPage.For(class)
	if count <= 0 {
		return nil
	}
	out := make([]int, count)
	for i := range count {
		out[i] = (pos + i) % cfg.TotalItems
	}
	return out
}

func (windowed) clamp(pos int, cfg Config) int {
	if pos < 0 {
		return 0
	}
	if pos >= cfg.TotalItems {
		return cfg.TotalItems - 1
	}
	return pos
}

type paged struct{}

// maxPosition is the start of the last (possibly partial) page.
func maxPosition(cfg Config) int {
	return (cfg.TotalItems - 1) / cfg.PerPage.Narrow * cfg.PerPage.Narrow
}

func (paged) next(pos int, cfg Config) int {
	return min(pos+cfg.PerPage.Narrow, maxPosition(cfg))
}

func (paged) prev(pos int, cfg Config) int {
	return max(pos-cfg.PerPage.Narrow, 0)
}

// window never wraps and may be shorter than a page at the end.
func (paged) window(pos int, cfg Config, _ viewport.Class) []int {
	end := min(pos+cfg.PerPage.Narrow, cfg.TotalItems)
	out := make([]int, 0, end-pos)
	for i := pos; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func (paged) clamp(pos int, cfg Config) int {
	pos = pos / cfg.PerPage.Narrow * cfg.PerPage.Narrow
	return max(min(pos, maxPosition(cfg)), 0)
}
