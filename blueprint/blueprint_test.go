package blueprint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// testValue is a minimal Cloneable used only by this package's tests.
type testValue struct {
	counters map[Tag]int
}

func newTestValue() *testValue { return &testValue{counters: make(map[Tag]int)} }

func (v *testValue) Clone() Cloneable {
	cp := make(map[Tag]int, len(v.counters))
	for k, val := range v.counters {
		cp[k] = val
	}
	return &testValue{counters: cp}
}

type fakeBlueprint struct {
	tag       Tag
	requires  []Tag
	brings    []Brought
	earlyErr  error
	lateErr   error
	expandErr error
}

func (f *fakeBlueprint) Component() Tag      { return f.tag }
func (f *fakeBlueprint) EarlyCheck() error    { return f.earlyErr }
func (f *fakeBlueprint) Requires() []Tag      { return f.requires }
func (f *fakeBlueprint) Brings() []Brought    { return f.brings }
func (f *fakeBlueprint) LateCheck(*Model) error { return f.lateErr }
func (f *fakeBlueprint) Expand(m *Model) error {
	if f.expandErr != nil {
		return f.expandErr
	}
	m.Value().(*testValue).counters[f.tag]++
	m.RegisterProperty(string(f.tag)+".count", Property{
		Component: f.tag,
		Read: func(m *Model) (any, error) {
			return m.Value().(*testValue).counters[f.tag], nil
		},
	})
	return nil
}

func registry() *Registry {
	return NewRegistry(
		ComponentMeta{Tag: "a"},
		ComponentMeta{Tag: "b"},
		ComponentMeta{Tag: "c", Conflicts: []Tag{"b"}},
	)
}

func TestAddSimple(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "a"}))
	require.True(t, m.IsActive("a"))

	v, err := m.Get("a.count")
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestAddConflict(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "b"}))
	err := m.Add(&fakeBlueprint{tag: "c"})
	require.Error(t, err)
	var conflictErr *ComponentConflictError
	require.True(t, errors.As(err, &conflictErr))
}

func TestAddMissingRequirement(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	err := m.Add(&fakeBlueprint{tag: "a", requires: []Tag{"b"}})
	require.Error(t, err)
	var missing *MissingRequirementError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, Tag("b"), missing.Component)
	require.False(t, m.IsActive("a"), "failed Add must not leave partial state")
}

func TestAddEmbedsMandatoryBring(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	parent := &fakeBlueprint{
		tag: "a",
		brings: []Brought{
			{Kind: Embedded, Tag: "b", Default: func() Blueprint { return &fakeBlueprint{tag: "b"} }},
		},
	}
	require.NoError(t, m.Add(parent))
	require.True(t, m.IsActive("a"))
	require.True(t, m.IsActive("b"))
}

func TestAddImpliedSkippedWhenAlreadyActive(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "b"}))

	parent := &fakeBlueprint{
		tag: "a",
		brings: []Brought{
			{Kind: Implied, Tag: "b", Default: func() Blueprint {
				t.Fatal("implied default should not be constructed when component already active")
				return nil
			}},
		},
	}
	require.NoError(t, m.Add(parent))
}

func TestFailedAddLeavesModelUntouched(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "a"}))

	err := m.Add(&fakeBlueprint{tag: "b", lateErr: errors.New("boom")})
	require.Error(t, err)
	require.False(t, m.IsActive("b"))
	require.True(t, m.IsActive("a"))
}

func TestPlusLeavesOriginalUntouched(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "a"}))

	next, err := m.Plus(&fakeBlueprint{tag: "b"})
	require.NoError(t, err)
	require.True(t, next.IsActive("a"))
	require.True(t, next.IsActive("b"))
	require.False(t, m.IsActive("b"))
}

func TestPropertyCacheReadOnlySetAndInternalHiding(t *testing.T) {
	m := NewModel(registry(), newTestValue())
	require.NoError(t, m.Add(&fakeBlueprint{tag: "a"}))

	m.CacheSet("k", 42)
	v, ok := m.CacheGet("k")
	require.True(t, ok)
	require.Equal(t, 42, v)

	err := m.Set("a.count", 5)
	require.Error(t, err)
	var ro *ReadOnlyError
	require.True(t, errors.As(err, &ro))

	m.RegisterProperty("_internal", Property{Read: func(m *Model) (any, error) { return nil, nil }})
	props := m.Properties()
	for _, p := range props {
		require.NotEqual(t, "_internal", p)
	}
}
