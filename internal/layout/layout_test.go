package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
)

func TestAnchors(t *testing.T) {
	l := New(config.Viewport{Width: 800, Height: 600, Margin: 80, Sag: 60})
	start, end := l.Anchors()
	assert.Equal(t, rope.Pt(80, 300), start)
	assert.Equal(t, rope.Pt(720, 300), end)
}

func TestRest(t *testing.T) {
	l := Layout{Width: 100, Height: 50, Margin: 20, Sag: 10}
	rest := l.Rest()
	assert.InDelta(t, 40, rest[0].X, 1e-12)
	assert.InDelta(t, 60, rest[1].X, 1e-12)
	assert.Equal(t, 35.0, rest[0].Y)
	assert.Equal(t, 35.0, rest[1].Y)
}

func TestResizeKeepsOrder(t *testing.T) {
	l := Layout{Width: 800, Height: 600, Margin: 80}
	small := l.Resize(100, 40)
	start, end := small.Anchors()
	assert.Less(t, start.X, end.X)
	assert.Equal(t, 25.0, small.Inset())
	assert.Equal(t, 20.0, start.Y)

	big := l.Resize(1600, 1200)
	assert.Equal(t, 80.0, big.Inset())
}

func TestResizeRestoresMargin(t *testing.T) {
	l := New(config.Viewport{Width: 800, Height: 600, Margin: 80, Sag: 60})
	wantStart, wantEnd := l.Anchors()
	wantRest := l.Rest()

	// A minimised window reports a zero size before it comes back.
	l = l.Resize(0, 0).Resize(40, 30).Resize(800, 600)
	start, end := l.Anchors()
	assert.Equal(t, wantStart, start)
	assert.Equal(t, wantEnd, end)
	assert.Equal(t, wantRest, l.Rest())
	assert.Equal(t, 80.0, l.Margin)
}

func TestInsetEmptyViewport(t *testing.T) {
	l := Layout{Margin: 80}
	start, end := l.Anchors()
	assert.Equal(t, rope.Pt(0, 0), start)
	assert.Equal(t, rope.Pt(0, 0), end)
}

func TestClamp(t *testing.T) {
	l := Layout{Width: 10, Height: 5}
	assert.Equal(t, rope.Pt(0, 5), l.Clamp(rope.Pt(-3, 9)))
	assert.Equal(t, rope.Pt(4, 2), l.Clamp(rope.Pt(4, 2)))
}
