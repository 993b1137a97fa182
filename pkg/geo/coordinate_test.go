package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	m := NewMatcher(6)

	testCases := []struct {
		name string
		a, b Coordinate
		want bool
	}{
		{"exact", NewCoordinate(42.8840926, -78.7405278), NewCoordinate(42.8840926, -78.7405278), true},
		{"float drift", NewCoordinate(42.876466914460224, -78.78590820757644),
			NewCoordinate(42.87646691446021, -78.78590820757645), true},
		{"same at six places", NewCoordinate(1.0000001, 2.0000004), NewCoordinate(1.0000004, 1.9999996), true},
		{"differs at sixth place", NewCoordinate(1.000001, 2), NewCoordinate(1.000002, 2), false},
		{"drift across a rounding boundary", NewCoordinate(0, 1.0000004999999), NewCoordinate(0, 1.0000005000001), true},
		{"just over half a unit apart", NewCoordinate(0, 1.0000004), NewCoordinate(0, 1.0000010), false},
		{"far apart", NewCoordinate(0, 0), NewCoordinate(5, 5), false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.a, tt.b))
			assert.Equal(t, tt.want, m.Match(tt.b, tt.a))
		})
	}
}

func TestMatcherRound(t *testing.T) {
	m := NewMatcher(6)
	got := m.Round(NewCoordinate(42.87646691446021, -78.78590850757645))
	assert.Equal(t, NewCoordinate(42.876467, -78.785909), got)
}

func TestMatcherExact(t *testing.T) {
	m := NewMatcher(6)
	assert.True(t, m.Exact(NewCoordinate(1, 2), NewCoordinate(1, 2)))
	assert.False(t, m.Exact(NewCoordinate(1, 2), NewCoordinate(1.0000000001, 2)))
}

func TestMatcherEpsilon(t *testing.T) {
	assert.InDelta(t, 5e-7, NewMatcher(6).Epsilon(), 1e-18)
	assert.InDelta(t, 0.5, NewMatcher(0).Epsilon(), 1e-18)
}
