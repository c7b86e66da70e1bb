package astar_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/linesegm/astar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `
profiles:
  saintgall:
    vertical_drift: 0.5
    step: 1
    wall: 50
    proximity: 150
    proximity_sq: 50
  parzival:
    vertical_drift: 3
    step: 1
    wall: 40
    proximity: 120
`

// TestLoadProfiles_YAML parses a two-profile document and checks both the
// explicit values and the zero default for omitted weights.
func TestLoadProfiles_YAML(t *testing.T) {
	profiles, err := astar.LoadProfiles(strings.NewReader(profileYAML))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	sg := profiles["saintgall"]
	assert.Equal(t, 0.5, sg.VerticalDrift)
	assert.Equal(t, 150.0, sg.Proximity)
	assert.Equal(t, 50.0, sg.ProximitySq)

	pz := profiles["parzival"]
	assert.Equal(t, 3.0, pz.VerticalDrift)
	assert.Equal(t, 0.0, pz.ProximitySq, "omitted weights disable their term")
}

// TestLoadProfiles_Empty rejects documents that define nothing.
func TestLoadProfiles_Empty(t *testing.T) {
	_, err := astar.LoadProfiles(strings.NewReader("profiles: {}\n"))
	assert.ErrorIs(t, err, astar.ErrNoProfiles)

	_, err = astar.LoadProfiles(strings.NewReader(""))
	assert.ErrorIs(t, err, astar.ErrNoProfiles)
}

// TestLoadProfiles_Malformed surfaces the parse error with context.
func TestLoadProfiles_Malformed(t *testing.T) {
	_, err := astar.LoadProfiles(strings.NewReader("profiles: [not, a, map]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing profile source")
}

// TestSearch_LoadedProfileSelectable wires a loaded profile through
// WithProfiles + WithProfile and expects it to drive the search.
func TestSearch_LoadedProfileSelectable(t *testing.T) {
	profiles, err := astar.LoadProfiles(strings.NewReader(profileYAML))
	require.NoError(t, err)

	g := blankGrid(t, 5, 5)
	res, err := astar.Search(g, node(2, 0), node(2, 4),
		astar.WithProfiles(profiles), astar.WithProfile("saintgall"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.InDelta(t, 40.0, res.Scores[node(2, 4)], 1e-9, "saintgall carries the same unit step weight")
}
