package viewport

import (
	"math"

	"github.com/milk9111/mapeditor/common"
)

const (
	DefaultFriction    = 0.90
	DefaultSensitivity = 0.8

	// velocities smaller than this are treated as stopped
	velocityEpsilon = 1e-4
)

// Scroller is momentum-driven scroll state. Positions are stored inverted:
// X == MaxX means the view's real offset is 0 (left edge of the world), and
// the real top-left world pixel is (MaxX-X, MaxY-Y).
type Scroller struct {
	X         float64
	Y         float64
	VelocityX float64
	VelocityY float64

	// Friction multiplies both velocities once per tick.
	Friction float64
	// Sensitivity scales pan deltas into velocity.
	Sensitivity float64

	maxX float64
	maxY float64
}

// NewScroller returns a scroller resting at real offset (0, 0).
func NewScroller(maxX, maxY float64) *Scroller {
	return &Scroller{
		X:           maxX,
		Y:           maxY,
		Friction:    DefaultFriction,
		Sensitivity: DefaultSensitivity,
		maxX:        maxX,
		maxY:        maxY,
	}
}

// SetBounds replaces the scroll bounds and clamps the position into them.
// Velocity is left alone.
func (s *Scroller) SetBounds(maxX, maxY float64) {
	s.maxX = maxX
	s.maxY = maxY
	s.X = common.Clamp(s.X, 0, maxX)
	s.Y = common.Clamp(s.Y, 0, maxY)
}

// Bounds returns the current maximum scroll values.
func (s *Scroller) Bounds() (float64, float64) {
	return s.maxX, s.maxY
}

// ApplyPan feeds a pan delta into the momentum. The position only changes
// on the next Tick.
func (s *Scroller) ApplyPan(dx, dy float64) {
	s.VelocityX += dx * s.Sensitivity
	s.VelocityY += dy * s.Sensitivity
}

// Tick advances one frame: move by velocity, snap to whole pixels in the
// direction of travel, clamp (hitting a bound kills that axis' momentum) and
// decay both velocities by Friction.
func (s *Scroller) Tick() {
	s.X = snap(s.X+s.VelocityX, s.VelocityX)
	s.Y = snap(s.Y+s.VelocityY, s.VelocityY)

	if s.X < 0 {
		s.X = 0
		s.VelocityX = 0
	} else if s.X > s.maxX {
		s.X = s.maxX
		s.VelocityX = 0
	}

	if s.Y < 0 {
		s.Y = 0
		s.VelocityY = 0
	} else if s.Y > s.maxY {
		s.Y = s.maxY
		s.VelocityY = 0
	}

	s.VelocityX = decay(s.VelocityX, s.Friction)
	s.VelocityY = decay(s.VelocityY, s.Friction)
}

// Stop zeroes both velocity components.
func (s *Scroller) Stop() {
	s.VelocityX = 0
	s.VelocityY = 0
}

// RealOffset returns the world pixel shown at the view's top-left corner.
func (s *Scroller) RealOffset() (float64, float64) {
	return s.maxX - s.X, s.maxY - s.Y
}

func snap(pos, velocity float64) float64 {
	if velocity > 0 {
		return math.Floor(pos)
	}
	return math.Ceil(pos)
}

func decay(v, friction float64) float64 {
	v *= friction
	if math.Abs(v) < velocityEpsilon {
		return 0
	}
	return v
}
