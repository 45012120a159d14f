package gacvar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gacdiff/pkg/gac"
)

func TestVarBasics(t *testing.T) {
	st := NewStore()
	v := st.NewVar(3, 7)

	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 3, v.LB())
	assert.Equal(t, 7, v.UB())
	assert.Equal(t, 5, v.DomainSize())
	assert.True(t, v.Contains(5))
	assert.False(t, v.Contains(8))
	assert.False(t, v.IsInstantiated())

	next, ok := v.NextValue(4)
	require.True(t, ok)
	assert.Equal(t, 5, next)
}

func TestVarRemoveValueAndUndo(t *testing.T) {
	st := NewStore()
	v := st.NewVar(1, 3)
	mark := st.Mark()

	changed, err := v.RemoveValue(2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, v.Contains(2))
	assert.Equal(t, 2, v.DomainSize())

	changed, err = v.RemoveValue(2)
	require.NoError(t, err)
	assert.False(t, changed, "removing an absent value is a no-op")

	st.UndoTo(mark)
	assert.True(t, v.Contains(2))
	assert.Equal(t, 3, v.DomainSize())
}

func TestVarRemoveValueContradiction(t *testing.T) {
	st := NewStore()
	v := st.NewVar(1, 1)

	_, err := v.RemoveValue(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gac.ErrContradiction))
}

func TestVarUpdateBounds(t *testing.T) {
	st := NewStore()
	v := st.NewVar(1, 10)
	mark := st.Mark()

	changed, err := v.UpdateBounds(3, 6)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, v.LB())
	assert.Equal(t, 6, v.UB())
	assert.Equal(t, 4, v.DomainSize())

	st.UndoTo(mark)
	assert.Equal(t, 1, v.LB())
	assert.Equal(t, 10, v.UB())
}

func TestVarInstantiateTo(t *testing.T) {
	st := NewStore()
	v := st.NewVar(1, 5)
	mark := st.Mark()

	changed, err := v.InstantiateTo(3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, v.IsInstantiated())
	assert.Equal(t, 3, v.Value())

	st.UndoTo(mark)
	assert.False(t, v.IsInstantiated())
	assert.Equal(t, 5, v.DomainSize())
}

func TestVarInstantiateToOutOfDomain(t *testing.T) {
	st := NewStore()
	v := st.NewVar(1, 5)

	_, err := v.InstantiateTo(9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gac.ErrContradiction))
}

func TestStoreNewVarsIndexesSequentially(t *testing.T) {
	st := NewStore()
	vars := st.NewVars(4, 1, 3)
	for i, v := range vars {
		assert.Equal(t, i, v.Index())
	}
	assert.Len(t, st.Vars(), 4)
}
