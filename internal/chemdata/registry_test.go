package chemdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	fsys := testFS()
	Register(NewSource("reg: tb", fsys, "data/tb.tsv"))
	Register(NewSource("reg: bad", fsys, "data/bad.tsv"))

	names := Names()
	assert.Contains(t, names, "reg: tb")
	assert.Contains(t, names, "reg: bad")
	assert.Equal(t, len(names), len(All()))

	s, ok := ByName("reg: tb")
	require.True(t, ok)
	assert.Equal(t, "reg: tb", s.Name())

	_, ok = ByName("reg: nope")
	assert.False(t, ok)

	tbl, err := TableByName("reg: tb")
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	_, err = TableByName("reg: nope")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(NewSource("reg: once", testFS(), "data/tb.tsv"))
	assert.Panics(t, func() {
		Register(NewSource("reg: once", testFS(), "data/tb.tsv"))
	})
}

func TestPreloadJoinsFailures(t *testing.T) {
	fsys := testFS()
	Register(NewSource("pre: ok", fsys, "data/tb.tsv"))
	Register(NewSource("pre: bad", fsys, "data/bad.tsv"))

	err := Preload()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadCell)

	// The failed table degrades to absence, the good one still serves.
	s, _ := ByName("pre: ok")
	_, ok := s.Value("7732-18-5", "Tb")
	assert.True(t, ok)
}

func TestResolveName(t *testing.T) {
	Register(NewSource("res: tb", testFS(), "data/tb.tsv"))

	cas, ok := ResolveName("Water")
	require.True(t, ok)
	assert.Equal(t, "7732-18-5", cas)

	cas, ok = ResolveName("ETHANOL")
	require.True(t, ok)
	assert.Equal(t, "64-17-5", cas)

	_, ok = ResolveName("unobtainium")
	assert.False(t, ok)
}
