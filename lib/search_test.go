package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalIndex(t *testing.T) {
	terminals := []*Terminal{
		{UUID: "{u1}", Block: "X1", Name: "1", Cable: "L1", Hose: "W1", Type: TypeStandard},
		{UUID: "{u2}", Block: "X1", Name: "PE", Cable: "PE", Type: TypeGround},
		{UUID: "{u3}", Block: "X2", Name: "1", Cable: "L2", Hose: "W7", Type: TypeFuse},
	}

	ix, err := NewTerminalIndex(terminals)
	require.NoError(t, err)

	hits, err := ix.Find("Hose:W7")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "{u3}", hits[0].UUID)

	hits, err = ix.Find("GROUND")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "X1:PE", hits[0].Label())

	hits, err = ix.Find("nosuchterm")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
