package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{{"serve"}, {"migrate"}, {"seed"}, {"rent", "refresh"}, {"reap"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	refresh, _, err := root.Find([]string{"rent", "refresh"})
	require.NoError(t, err)
	assert.NotNil(t, refresh.Flags().Lookup("block"))

	seed, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)
	assert.Equal(t, "internals/seeds/demo/data_demo.json", seed.Flags().Lookup("file").DefValue)
}
