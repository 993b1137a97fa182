package datastructure

import (
	"encoding/json"
	"testing"

	"github.com/lintang-b-s/roadroute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(lat, lon float64) geo.Coordinate {
	return geo.NewCoordinate(lat, lon)
}

func TestNewPathSegmentEmpty(t *testing.T) {
	_, err := NewPathSegment(nil)
	assert.ErrorIs(t, err, ErrEmptySegment)
}

func TestPathSegmentAccessors(t *testing.T) {
	seg := MustPathSegment(c(0, 0), c(0, 1), c(1, 1))

	assert.Equal(t, 3, seg.Len())
	assert.Equal(t, c(0, 0), seg.First())
	assert.Equal(t, c(1, 1), seg.Last())
	assert.Equal(t, c(0, 1), seg.At(1))
	assert.Equal(t, []geo.Coordinate{c(0, 0), c(0, 1), c(1, 1)}, seg.Coordinates())
}

func TestPathSegmentReverse(t *testing.T) {
	seg := MustPathSegment(c(0, 0), c(0, 1), c(1, 1))
	rev := seg.Reverse()

	assert.Equal(t, []geo.Coordinate{c(1, 1), c(0, 1), c(0, 0)}, rev.Coordinates())
	// the receiver is untouched
	assert.Equal(t, []geo.Coordinate{c(0, 0), c(0, 1), c(1, 1)}, seg.Coordinates())
	assert.True(t, seg.Equal(rev.Reverse()))
}

func TestPathSegmentReverseTwiceIsIdentity(t *testing.T) {
	segments := []PathSegment{
		MustPathSegment(c(5, 5)),
		MustPathSegment(c(0, 0), c(0, 1)),
		MustPathSegment(c(42.8, -78.7), c(42.81, -78.71), c(42.82, -78.7), c(42.83, -78.69)),
	}
	for _, seg := range segments {
		assert.Equal(t, seg.Coordinates(), seg.Reverse().Reverse().Coordinates())
	}
}

func TestPathSegmentWithEndpoints(t *testing.T) {
	seg := MustPathSegment(c(0, 0), c(0, 1))

	assert.Equal(t, []geo.Coordinate{c(9, 9), c(0, 1)}, seg.WithFirst(c(9, 9)).Coordinates())
	assert.Equal(t, []geo.Coordinate{c(0, 0), c(9, 9)}, seg.WithLast(c(9, 9)).Coordinates())
	assert.Equal(t, []geo.Coordinate{c(0, 0), c(0, 1)}, seg.Coordinates())
}

func TestPathSegmentJSON(t *testing.T) {
	seg := MustPathSegment(c(42.88, -78.87), c(42.89, -78.86))

	data, err := json.Marshal(seg)
	require.NoError(t, err)
	assert.JSONEq(t, `[[42.88,-78.87],[42.89,-78.86]]`, string(data))

	var decoded PathSegment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, seg.Equal(decoded))

	assert.ErrorIs(t, json.Unmarshal([]byte(`[]`), &decoded), ErrEmptySegment)
}

func TestOptionalSegmentJSON(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantPresent bool
		wantErr     error
	}{
		{name: "null is absent", input: `{"begin": null}`, wantPresent: false},
		{name: "missing is absent", input: `{}`, wantPresent: false},
		{name: "coordinates are present", input: `{"begin": [[1, 2], [3, 4]]}`, wantPresent: true},
		{name: "empty array is rejected", input: `{"begin": []}`, wantErr: ErrEmptySegment},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Begin OptionalSegment `json:"begin"`
			}
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, got.Begin.IsPresent())
		})
	}
}

func TestSearchResultEdges(t *testing.T) {
	assert.Nil(t, SearchResult{}.Edges())
	assert.Nil(t, SearchResult{Nodes: []int64{7}}.Edges())
	assert.Equal(t, []NodePair{{U: 1, V: 2}, {U: 2, V: 3}}, SearchResult{Nodes: []int64{1, 2, 3}}.Edges())
}
