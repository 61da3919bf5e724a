package chameneos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpell(t *testing.T) {
	require.Equal(t, " zero", Spell(0))
	require.Equal(t, " one", Spell(1))
	require.Equal(t, " one zero", Spell(10))
	require.Equal(t, " six three", Spell(63))
	require.Equal(t, " one two three", Spell(123))
}
