package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/layout"
	"honnef.co/go/rope/internal/scene"
)

func run(t *testing.T, cfg config.Config, opts func(layout.Layout) Options) Result {
	t.Helper()
	s, err := scene.New(cfg, zap.NewNop())
	require.NoError(t, err)
	return Run(s, opts(s.Layout()))
}

func dragOptions(l layout.Layout) Options {
	return Options{Frames: 300, Elapsed: 1.0 / 60, Script: Drag(l, 30, 120)}
}

func TestRunDeterministic(t *testing.T) {
	a := run(t, config.Default(), dragOptions)
	b := run(t, config.Default(), dragOptions)
	assert.Equal(t, a, b)
	assert.Equal(t, 300, a.Frames)
	assert.InDelta(t, 300, a.Steps, 1)
}

func TestRunSensitiveToInput(t *testing.T) {
	a := run(t, config.Default(), dragOptions)
	b := run(t, config.Default(), func(l layout.Layout) Options {
		opts := dragOptions(l)
		opts.Script = Drag(l, 31, 120)
		return opts
	})
	assert.NotEqual(t, a.Fingerprint, b.Fingerprint)
}

func TestRunSensitiveToParams(t *testing.T) {
	stiffer := config.Default()
	stiffer.Spring.Stiffness = 120
	a := run(t, config.Default(), dragOptions)
	b := run(t, stiffer, dragOptions)
	assert.NotEqual(t, a.Fingerprint, b.Fingerprint)
}

func TestRunSortsScript(t *testing.T) {
	a := run(t, config.Default(), dragOptions)
	b := run(t, config.Default(), func(l layout.Layout) Options {
		opts := dragOptions(l)
		script := opts.Script
		for i, j := 0, len(script)-1; i < j; i, j = i+1, j-1 {
			script[i], script[j] = script[j], script[i]
		}
		return opts
	})
	assert.Equal(t, a, b)
}

func TestDrag(t *testing.T) {
	l := layout.New(config.Default().Viewport)
	script := Drag(l, 10, 4)
	require.Len(t, script, 5)
	assert.Equal(t, 10, script[0].Frame)
	assert.True(t, script[0].Input.Pointer.Active)
	// The pointer circles the middle of the viewport starting straight below it.
	assert.Equal(t, rope.Pt(400, 450), script[0].Input.Pointer.At)
	assert.Equal(t, 14, script[4].Frame)
	assert.False(t, script[4].Input.Pointer.Active)
}
