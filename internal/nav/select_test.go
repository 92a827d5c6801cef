package nav

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(addr string, x, y, w, h float64, ws int) Window {
	return Window{Address: addr, Rect: Rect{X: x, Y: y, Width: w, Height: h}, Workspace: ws}
}

func TestSelect_Scenarios(t *testing.T) {
	active := win("0xactive", 0, 0, 100, 100, 1)

	t.Run("right prefers the window sharing a vertical band", func(t *testing.T) {
		a := win("0xa", 150, 10, 100, 100, 1)
		b := win("0xb", 150, 200, 100, 100, 1)

		idx, ok := Select(Right, active, []Window{a, b})
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("aligned window below is only reachable downwards", func(t *testing.T) {
		c := win("0xc", 0, 150, 100, 100, 1)

		idx, ok := Select(Down, active, []Window{c})
		require.True(t, ok)
		assert.Equal(t, 0, idx)

		_, ok = Select(Right, active, []Window{c})
		assert.False(t, ok)
		_, ok = Select(Left, active, []Window{c})
		assert.False(t, ok)
		_, ok = Select(Up, active, []Window{c})
		assert.False(t, ok)
	})

	t.Run("offset window below fails the overlap filter for right", func(t *testing.T) {
		// Center x of c is 90, active center x is 50: c is to the right but
		// shares no vertical band with the active window.
		c := win("0xc", 40, 150, 100, 100, 1)

		idx, ok := Select(Down, active, []Window{c})
		require.True(t, ok)
		assert.Equal(t, 0, idx)

		_, ok = Select(Right, active, []Window{c})
		assert.False(t, ok)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		for _, d := range Directions {
			_, ok := Select(d, active, nil)
			assert.False(t, ok, d.String())
		}
	})
}

func TestSelect_EachDirection(t *testing.T) {
	// 3x3 grid of 100x100 tiles with a 10px gap, active in the middle.
	var grid []Window
	names := []string{"nw", "n", "ne", "w", "c", "e", "sw", "s", "se"}
	for i, name := range names {
		grid = append(grid, win(name, float64(i%3)*110, float64(i/3)*110, 100, 100, 1))
	}
	active := grid[4]

	tests := []struct {
		dir  Direction
		want string
	}{
		{Left, "w"},
		{Right, "e"},
		{Up, "n"},
		{Down, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			idx, ok := Select(tt.dir, active, grid)
			require.True(t, ok)
			assert.Equal(t, tt.want, grid[idx].Address)
		})
	}
}

func TestSelect_ExcludesActiveByAddress(t *testing.T) {
	active := win("0xactive", 0, 0, 100, 100, 1)
	// Same address, different geometry: still the active window.
	ghost := win("0xactive", 200, 0, 100, 100, 1)
	// Different address, identical geometry: a real candidate only if it
	// passes the filters, which a coincident window never does.
	twin := win("0xtwin", 0, 0, 100, 100, 1)
	right := win("0xright", 300, 0, 100, 100, 1)

	idx, ok := Select(Right, active, []Window{ghost, twin, right})
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSelect_IgnoresOtherWorkspaces(t *testing.T) {
	active := win("0xactive", 0, 0, 100, 100, 1)
	near := win("0xnear", 110, 0, 100, 100, 2)
	far := win("0xfar", 500, 0, 100, 100, 1)

	idx, ok := Select(Right, active, []Window{near, far})
	require.True(t, ok)
	assert.Equal(t, "0xfar", []Window{near, far}[idx].Address)

	_, ok = Select(Right, active, []Window{near})
	assert.False(t, ok)
}

func TestSelect_TieBreak(t *testing.T) {
	active := win("0xactive", 0, 100, 100, 100, 1)

	t.Run("closer on the travel axis wins over straighter", func(t *testing.T) {
		straight := win("0xstraight", 300, 100, 100, 100, 1)
		nearer := win("0xnearer", 150, 150, 100, 100, 1)

		idx, ok := Select(Right, active, []Window{straight, nearer})
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("equal travel distance prefers smaller lateral offset", func(t *testing.T) {
		low := win("0xlow", 150, 160, 100, 100, 1)
		level := win("0xlevel", 150, 110, 100, 100, 1)

		idx, ok := Select(Right, active, []Window{low, level})
		require.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("exact ties keep input order", func(t *testing.T) {
		above := win("0xabove", 150, 60, 100, 100, 1)
		below := win("0xbelow", 150, 140, 100, 100, 1)

		idx, ok := Select(Right, active, []Window{above, below})
		require.True(t, ok)
		assert.Equal(t, 0, idx)

		idx, ok = Select(Right, active, []Window{below, above})
		require.True(t, ok)
		assert.Equal(t, 0, idx)
	})
}

func TestSelect_OverlapMustBePositive(t *testing.T) {
	active := win("0xactive", 0, 0, 100, 100, 1)

	tests := []struct {
		name string
		dir  Direction
		c    Window
		want bool
	}{
		{"right touching bottom edge", Right, win("0xc", 150, 100, 100, 100, 1), false},
		{"right touching top edge", Right, win("0xc", 150, -100, 100, 100, 1), false},
		{"right overlapping by one", Right, win("0xc", 150, 99, 100, 100, 1), true},
		{"down touching right edge", Down, win("0xc", 100, 150, 100, 100, 1), false},
		{"up touching left edge", Up, win("0xc", -100, -150, 100, 100, 1), false},
		{"left overlapping by a fraction", Left, win("0xc", -150, 99.5, 100, 100, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Select(tt.dir, active, []Window{tt.c})
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSelect_InvalidDirection(t *testing.T) {
	active := win("0xactive", 0, 0, 100, 100, 1)
	c := win("0xc", 150, 0, 100, 100, 1)

	for _, d := range []Direction{-1, 4, 99} {
		idx, ok := Select(d, active, []Window{c})
		assert.False(t, ok)
		assert.Equal(t, -1, idx)
	}
}

func TestSelect_DegenerateGeometry(t *testing.T) {
	nan := math.NaN()
	active := win("0xactive", 0, 0, 100, 100, 1)

	t.Run("NaN candidates never panic", func(t *testing.T) {
		candidates := []Window{
			win("0xnan-x", nan, 0, 100, 100, 1),
			win("0xnan-size", 150, 0, nan, nan, 1),
			win("0xnan-y", 150, nan, 100, 100, 1),
		}
		for _, d := range Directions {
			assert.NotPanics(t, func() {
				_, ok := Select(d, active, candidates)
				assert.False(t, ok)
			})
		}
	})

	t.Run("NaN active window never panics", func(t *testing.T) {
		broken := win("0xactive", nan, nan, 100, 100, 1)
		candidates := []Window{win("0xc", 150, 0, 100, 100, 1)}
		for _, d := range Directions {
			assert.NotPanics(t, func() {
				_, ok := Select(d, broken, candidates)
				assert.False(t, ok)
			})
		}
	})

	t.Run("zero-sized windows have no overlap", func(t *testing.T) {
		dot := win("0xdot", 150, 50, 0, 0, 1)
		_, ok := Select(Right, active, []Window{dot})
		assert.False(t, ok)

		point := win("0xactive", 50, 50, 0, 0, 1)
		_, ok = Select(Right, point, []Window{win("0xc", 150, 0, 100, 100, 1)})
		assert.False(t, ok)
	})

	t.Run("infinite coordinates are deterministic", func(t *testing.T) {
		candidates := []Window{
			win("0xinf", math.Inf(1), 0, 100, 100, 1),
			win("0xc", 150, 0, 100, 100, 1),
		}
		assert.NotPanics(t, func() {
			idx, ok := Select(Right, active, candidates)
			require.True(t, ok)
			assert.Equal(t, 1, idx)
		})
	})
}

// randomLayout builds windows on a coarse grid so that exact alignments and
// touching edges show up often.
func randomLayout(r *rand.Rand, n int) []Window {
	out := make([]Window, n)
	for i := range out {
		out[i] = win(
			string(rune('a'+i%26))+string(rune('0'+i/26)),
			float64(r.Intn(10)*50),
			float64(r.Intn(10)*50),
			float64(r.Intn(4)*50),
			float64(r.Intn(4)*50),
			1+r.Intn(2),
		)
	}
	return out
}

func TestSelect_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		windows := randomLayout(r, 2+r.Intn(10))
		active := windows[0]
		acx, acy := active.Rect.Center()

		for _, d := range Directions {
			idx, ok := Select(d, active, windows)
			if !ok {
				assert.Equal(t, -1, idx)
				continue
			}
			got := windows[idx]
			gcx, gcy := got.Rect.Center()

			assert.NotEqual(t, active.Address, got.Address)
			assert.Equal(t, active.Workspace, got.Workspace)

			switch d {
			case Right:
				assert.Greater(t, gcx, acx)
			case Left:
				assert.Less(t, gcx, acx)
			case Down:
				assert.Greater(t, gcy, acy)
			case Up:
				assert.Less(t, gcy, acy)
			}

			ax1, ay1, ax2, ay2 := active.Rect.Extents()
			gx1, gy1, gx2, gy2 := got.Rect.Extents()
			if d == Left || d == Right {
				assert.Greater(t, overlap(ay1, ay2, gy1, gy2), 0.0)
			} else {
				assert.Greater(t, overlap(ax1, ax2, gx1, gx2), 0.0)
			}
		}
	}
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 50.0, overlap(0, 100, 50, 150))
	assert.Equal(t, 0.0, overlap(0, 100, 100, 200))
	assert.Equal(t, 0.0, overlap(0, 100, 150, 200))
	assert.Equal(t, 20.0, overlap(0, 100, 40, 60))
	assert.Equal(t, 0.0, overlap(0, 100, math.NaN(), 60))
}
