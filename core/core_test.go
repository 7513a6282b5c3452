package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTerminal struct{ finalized int }

func (f *fakeTerminal) Fini() { f.finalized++ }

func TestHandleCrashRestoresTerminal(t *testing.T) {
	var out bytes.Buffer
	exitCode := -1
	prevOut, prevExit := crashOut, crashExit
	crashOut, crashExit = &out, func(code int) { exitCode = code }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterCrashTerminal(nil)
	})

	term := &fakeTerminal{}
	RegisterCrashTerminal(term)

	HandleCrash(nil)
	assert.Equal(t, 0, term.finalized)
	assert.Equal(t, -1, exitCode)

	HandleCrash("boom")
	assert.Equal(t, 1, term.finalized)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out.String(), "CRASH DETECTED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")

	// Registration is consumed by the first crash
	HandleCrash("again")
	assert.Equal(t, 1, term.finalized)
}

func TestSoundTypeNames(t *testing.T) {
	for s := SoundType(0); s < SoundTypeCount; s++ {
		got, ok := ParseSoundType(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseSoundType("whoosh")
	assert.False(t, ok)
	assert.Equal(t, "unknown", SoundTypeCount.String())
}

func TestColorScale(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 10}
	assert.Equal(t, RGB{R: 100, G: 50, B: 5}, c.Scale(0.5))
	assert.Equal(t, c, c.Scale(2))
	assert.Equal(t, RGBBlack, c.Scale(0))
	assert.Greater(t, RGBWhite.Luma(), RGBGray.Luma())
}
