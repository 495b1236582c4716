package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	for _, name := range []string{"level_2", "level_2.yaml", "levels/level_2"} {
		room, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, "level_2", room.Name)
		require.NotNil(t, room.Player)
		assert.Nil(t, room.Boss)
		assert.Nil(t, room.Door)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := Load("nowhere")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Contains(t, Names(), "level_2")
}
