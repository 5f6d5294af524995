package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScrollerStartsAtOrigin(t *testing.T) {
	s := NewScroller(320, 160)
	x, y := s.RealOffset()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, DefaultFriction, s.Friction)
	assert.Equal(t, DefaultSensitivity, s.Sensitivity)
}

func TestApplyPanOnlyChangesVelocity(t *testing.T) {
	s := NewScroller(1000, 1000)
	s.X, s.Y = 500, 500

	s.ApplyPan(10, -5)
	assert.Equal(t, 500.0, s.X)
	assert.Equal(t, 500.0, s.Y)
	assert.InDelta(t, 8.0, s.VelocityX, 1e-9)
	assert.InDelta(t, -4.0, s.VelocityY, 1e-9)

	s.ApplyPan(10, -5)
	assert.InDelta(t, 16.0, s.VelocityX, 1e-9)
	assert.InDelta(t, -8.0, s.VelocityY, 1e-9)
}

func TestTickRoundsTowardTravel(t *testing.T) {
	cases := []struct {
		name     string
		pos      float64
		velocity float64
		want     float64
	}{
		{"positive_floors", 100, 2.7, 102},
		{"negative_ceils", 100, -2.7, 98},
		{"zero_ceils_fraction", 100.4, 0, 101},
		{"small_positive_holds", 100, 0.5, 100},
		{"small_negative_holds", 100, -0.5, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScroller(1000, 1000)
			s.X, s.Y = c.pos, 500
			s.VelocityX = c.velocity
			s.Tick()
			assert.Equal(t, c.want, s.X)
			assert.InDelta(t, c.velocity*DefaultFriction, s.VelocityX, 1e-9)
		})
	}
}

func TestTickClampKillsMomentum(t *testing.T) {
	s := NewScroller(100, 100)
	s.X, s.Y = 95, 5
	s.VelocityX = 20
	s.VelocityY = -20

	s.Tick()
	assert.Equal(t, 100.0, s.X)
	assert.Equal(t, 0.0, s.Y)
	assert.Zero(t, s.VelocityX)
	assert.Zero(t, s.VelocityY)
}

func TestSetBoundsClampsImmediately(t *testing.T) {
	s := NewScroller(500, 500)
	s.VelocityX = 3
	s.SetBounds(200, -10)
	assert.Equal(t, 200.0, s.X)
	assert.Equal(t, 0.0, s.Y)
	assert.Equal(t, 3.0, s.VelocityX, "bounds change keeps momentum")
}

func TestMomentumDecay(t *testing.T) {
	s := NewScroller(4000, 4000)
	s.X, s.Y = 2000, 2000
	s.ApplyPan(50, -30)

	prevX, prevY := s.X, s.Y
	for i := 0; i < 400; i++ {
		before := math.Hypot(s.VelocityX, s.VelocityY)
		s.Tick()
		after := math.Hypot(s.VelocityX, s.VelocityY)
		if before > 0 {
			require.Less(t, after, before, "tick %d", i)
		} else {
			require.Zero(t, after)
		}
		require.GreaterOrEqual(t, s.X, prevX, "x must not reverse")
		require.LessOrEqual(t, s.Y, prevY, "y must not reverse")
		prevX, prevY = s.X, s.Y
	}

	assert.Zero(t, s.VelocityX)
	assert.Zero(t, s.VelocityY)
	settledX, settledY := s.X, s.Y
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assert.Equal(t, settledX, s.X)
	assert.Equal(t, settledY, s.Y)
	// total travel is bounded by the geometric series v/(1-friction)
	assert.LessOrEqual(t, s.X-2000, 40/(1-DefaultFriction))
	assert.LessOrEqual(t, 2000-s.Y, 24/(1-DefaultFriction))
}
