package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, Color{Name: "Light Green", Value: "#34D399"}, Default())
}

func TestLookups(t *testing.T) {
	c, ok := ByValue("#ef4444")
	require.True(t, ok)
	assert.Equal(t, "Red", c.Name)

	c, ok = ByName("Light Blue")
	require.True(t, ok)
	assert.Equal(t, "#60A5FA", c.Value)

	_, ok = ByValue("#000000")
	assert.False(t, ok)
	_, ok = ByName("Gray")
	assert.False(t, ok)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	require.Len(t, all, 15)

	all[0].Name = "changed"
	assert.Equal(t, "Red", All()[0].Name)
}
