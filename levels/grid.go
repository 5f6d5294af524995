package levels

// Layer identifies one of the seven fixed tile layers. The numeric value is
// the layer's position in a .map file.
type Layer int

const (
	Underground Layer = iota
	Ground
	Collisions
	Foreground
	Vents
	RoofGround
	Roof
)

// LayerCount is the number of layers every grid carries.
const LayerCount = 7

const (
	MinDimension = 1
	MaxDimension = 255
)

var layerNames = [LayerCount]string{
	"Underground",
	"Ground",
	"Collisions",
	"Foreground",
	"Vents",
	"Roof-ground",
	"Roof",
}

func (l Layer) String() string {
	if !l.Valid() {
		return "Unknown"
	}
	return layerNames[l]
}

// Valid reports whether l names one of the seven layers.
func (l Layer) Valid() bool {
	return l >= 0 && l < LayerCount
}

// Layers returns every layer in file order, bottom to top.
func Layers() []Layer {
	out := make([]Layer, LayerCount)
	for i := range out {
		out[i] = Layer(i)
	}
	return out
}

// Grid is an in-memory level: seven equally sized layers of 16-bit tile ids.
// Tile id 0 is the empty tile.
type Grid struct {
	Name   string
	Width  int
	Height int

	// row-major, index = y*Width + x
	layers [LayerCount][]uint16
}

// CreateBlank returns a grid with every layer zeroed. Dimensions are not
// validated here; callers check them with ValidateDimensions first.
func CreateBlank(name string, width, height int) *Grid {
	g := &Grid{Name: name, Width: width, Height: height}
	n := width * height
	if n < 0 {
		n = 0
	}
	for i := range g.layers {
		g.layers[i] = make([]uint16, n)
	}
	return g
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Tile returns the id at (x, y) on layer, or 0 when any coordinate is out of
// range. Renderers rely on this to query a padding border around the view.
func (g *Grid) Tile(layer Layer, x, y int) uint16 {
	i, ok := g.index(layer, x, y)
	if !ok {
		return 0
	}
	return g.layers[layer][i]
}

// SetTile overwrites the id at (x, y) on layer. Out of range writes are ignored.
func (g *Grid) SetTile(layer Layer, x, y int, id uint16) {
	i, ok := g.index(layer, x, y)
	if !ok {
		return
	}
	g.layers[layer][i] = id
}

// index maps a cell to its slot in the layer slice. A grid whose Width or
// Height no longer match its storage has no addressable cells past the end.
func (g *Grid) index(layer Layer, x, y int) (int, bool) {
	if !layer.Valid() || !g.InBounds(x, y) {
		return 0, false
	}
	i := y*g.Width + x
	if i >= len(g.layers[layer]) {
		return 0, false
	}
	return i, true
}

// Count returns the number of non-empty tiles on layer.
func (g *Grid) Count(layer Layer) int {
	if !layer.Valid() {
		return 0
	}
	n := 0
	for _, id := range g.layers[layer] {
		if id != 0 {
			n++
		}
	}
	return n
}

// FileSize returns the exact encoded size of g in bytes.
func (g *Grid) FileSize() int {
	return HeaderSize + LayerCount*g.Width*g.Height*2
}
