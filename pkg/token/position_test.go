package token_test

import (
	"testing"

	"github.com/leapstack-labs/lexkit/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestBuildSpanSentinels(t *testing.T) {
	assert.Equal(t, token.ZeroSpan, token.BuildSpan(1, 0, 1, 0))
	assert.Equal(t, token.AllSpan, token.BuildSpan(1, 0, token.MaxBound, token.MaxBound))
	assert.True(t, token.ZeroSpan.IsEmpty())

	raw := token.BuildSpan(3, 4, 5, 6)
	assert.Equal(t, token.Span{LineFrom: 3, ColumnFrom: 4, LineTo: 5, ColumnTo: 6}, raw)
}

func TestBuildSpanKeepsInvertedPairs(t *testing.T) {
	s := token.BuildSpan(5, 2, 3, 1)

	assert.True(t, s.Inverted())
	assert.Equal(t, 5, s.LineFrom)
	assert.Equal(t, 1, s.ColumnTo)
	assert.False(t, token.BuildSpan(1, 1, 1, 1).Inverted())
}

func TestSpanExtent(t *testing.T) {
	tests := []struct {
		name string
		a, b token.Span
		want token.Span
	}{
		{
			name: "before and after",
			a:    token.BuildSpan(1, 1, 10, 1),
			b:    token.BuildSpan(2, 1, 20, 100),
			want: token.BuildSpan(1, 1, 20, 100),
		},
		{
			name: "nested",
			a:    token.BuildSpan(1, 0, 9, 9),
			b:    token.BuildSpan(2, 2, 3, 3),
			want: token.BuildSpan(1, 0, 9, 9),
		},
		{
			name: "same line compares columns",
			a:    token.BuildSpan(4, 8, 4, 12),
			b:    token.BuildSpan(4, 2, 4, 10),
			want: token.BuildSpan(4, 2, 4, 12),
		},
		{
			name: "disjoint ranges",
			a:    token.BuildSpan(7, 0, 7, 3),
			b:    token.BuildSpan(1, 5, 1, 6),
			want: token.BuildSpan(1, 5, 7, 3),
		},
		{
			name: "inversion propagates",
			a:    token.BuildSpan(5, 0, 2, 0),
			b:    token.BuildSpan(6, 0, 1, 0),
			want: token.BuildSpan(5, 0, 2, 0),
		},
		{
			name: "zero and all",
			a:    token.ZeroSpan,
			b:    token.AllSpan,
			want: token.AllSpan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Extent(tt.b))
			assert.Equal(t, tt.want, tt.b.Extent(tt.a), "extent should be commutative")
		})
	}
}

func TestSpanExtentAssociative(t *testing.T) {
	a := token.BuildSpan(3, 1, 3, 9)
	b := token.BuildSpan(1, 4, 2, 0)
	c := token.BuildSpan(2, 2, 8, 1)

	assert.Equal(t, a.Extent(b).Extent(c), a.Extent(b.Extent(c)))
}

func TestSpanContains(t *testing.T) {
	s := token.BuildSpan(2, 3, 4, 0)

	assert.True(t, s.Contains(token.Position{Line: 2, Column: 3}))
	assert.True(t, s.Contains(token.Position{Line: 3, Column: 99}))
	assert.False(t, s.Contains(token.Position{Line: 4, Column: 0}), "end is exclusive")
	assert.False(t, s.Contains(token.Position{Line: 2, Column: 2}))
}

func TestPositionOrdering(t *testing.T) {
	p := token.Position{Line: 2, Column: 5}

	assert.True(t, p.Before(token.Position{Line: 2, Column: 6}))
	assert.True(t, p.Before(token.Position{Line: 3, Column: 0}))
	assert.False(t, p.Before(p))
	assert.True(t, p.IsValid())
	assert.False(t, token.Position{}.IsValid())
	assert.Equal(t, "2:5", p.String())
	assert.Equal(t, "1:0-1:0", token.ZeroSpan.String())
}
