package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayRoundTrip(t *testing.T) {
	in := StringArray{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b c.jpg"}
	v, err := in.Value()
	require.NoError(t, err)

	var out StringArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)

	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestClean(t *testing.T) {
	assert.Equal(t, StringArray{"a", "b"}, Clean([]string{"a", "", "b", "a"}))
}
