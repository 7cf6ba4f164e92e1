package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableTerminals() []*Terminal {
	return []*Terminal{
		{
			UUID: "{u1}", Block: "X1", Name: "1", Pos: "1", XRef: "1-A1",
			Cable: "L1", Hose: "W1", Conductor: "1.5", Type: TypeFuse,
			NumReserve: 2, ReservePositions: "5,6", SplitSize: 15,
		},
		{
			UUID: "{u2}", Block: "X1", Name: "2", Pos: "2",
			Type: TypeStandard, Bridge: "x", SplitSize: 30,
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminals.csv")
	terminals := tableTerminals()

	require.NoError(t, WriteTerminalsCSV(path, terminals))

	read, err := ReadTerminalsCSV(path)
	require.NoError(t, err)
	require.Len(t, read, 2)

	assert.Equal(t, terminals[0], read[0])
	assert.Equal(t, terminals[1], read[1])
}

func TestReadTerminalsCSVSkipsBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminals.csv")
	require.NoError(t, WriteTerminalsCSV(path, []*Terminal{
		{UUID: "{u1}", Block: "X1", Name: "1"},
		{Block: "X9", Name: "orphan"},
	}))

	read, err := ReadTerminalsCSV(path)
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, "{u1}", read[0].UUID)
}

func TestXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terminals.xlsx")
	terminals := tableTerminals()

	require.NoError(t, WriteTerminalsXLSX(path, terminals))

	read, err := ReadTerminalsXLSX(path)
	require.NoError(t, err)
	require.Len(t, read, 2)

	assert.Equal(t, terminals[0], read[0])
	assert.Equal(t, terminals[1], read[1])
}

func TestApplyEdits(t *testing.T) {
	terminals := tableTerminals()
	edits := []*Terminal{
		{
			UUID: "{u2}", Block: "ignored", Name: "ignored",
			Pos: "9", Type: TypeGround, Hose: "W2", Conductor: "2.5",
			NumReserve: 1, SplitSize: 30,
		},
		{UUID: "{missing}", Pos: "1"},
	}

	assert.Equal(t, 1, ApplyEdits(terminals, edits))

	edited := terminals[1]
	assert.Equal(t, "9", edited.Pos)
	assert.Equal(t, TypeGround, edited.Type)
	assert.Equal(t, "W2", edited.Hose)
	assert.Equal(t, "2.5", edited.Conductor)
	assert.Equal(t, "", edited.Bridge)
	assert.Equal(t, 1, edited.NumReserve)

	/* identity columns never change */
	assert.Equal(t, "X1", edited.Block)
	assert.Equal(t, "2", edited.Name)
}
