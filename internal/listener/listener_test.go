package listener

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe is large enough and holds a pointer, so it never lands in the
// runtime's tiny-object allocator where neighbours could keep it alive.
type probe struct {
	name string
	seen *[]string
	fail error
}

func (p *probe) OnEvent(ctx string) error {
	*p.seen = append(*p.seen, p.name+":"+ctx)
	return p.fail
}

type probeSet = Set[probe, *probe, string]

func TestSet_NotifyReachesEveryListener(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var seen []string
	a := &probe{name: "a", seen: &seen}
	b := &probe{name: "b", seen: &seen}
	var s probeSet
	s.Add(a)
	s.Add(b)

	// --- Act ---
	err := s.Notify("evt")

	// --- Assert ---
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a:evt", "b:evt"}, seen)
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

func TestSet_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	var seen []string
	a := &probe{name: "a", seen: &seen}
	var s probeSet
	s.Add(a)
	s.Add(a)
	s.Add(nil)

	require.NoError(t, s.Notify("x"))
	assert.Equal(t, []string{"a:x"}, seen)
	assert.Equal(t, 1, s.Len())
	runtime.KeepAlive(a)
}

func TestSet_ZeroValueNotify(t *testing.T) {
	t.Parallel()

	var s probeSet
	assert.NoError(t, s.Notify("x"))
	assert.Zero(t, s.Len())
}

func TestSet_ErrorStopsFanOut(t *testing.T) {
	t.Parallel()

	var seen []string
	boom := errors.New("boom")
	a := &probe{name: "a", seen: &seen, fail: boom}
	var s probeSet
	s.Add(a)

	err := s.Notify("x")

	assert.ErrorIs(t, err, boom)
	runtime.KeepAlive(a)
}

func TestSet_DoesNotKeepListenersAlive(t *testing.T) {
	// --- Arrange ---
	var seen []string
	var s probeSet
	func() {
		s.Add(&probe{name: "ephemeral", seen: &seen})
	}()
	keeper := &probe{name: "keeper", seen: &seen}
	s.Add(keeper)

	// --- Act ---
	runtime.GC()
	runtime.GC()
	err := s.Notify("after-gc")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"keeper:after-gc"}, seen)
	assert.Equal(t, 1, s.Len())
	runtime.KeepAlive(keeper)
}
