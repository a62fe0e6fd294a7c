package testkit

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/domain/sport"
)

func TestRosterGenerator_Basic(t *testing.T) {
	config := DefaultRosterConfig(sport.Basketball)
	config.PlayerCount = 25

	g, err := NewRosterGenerator(config)
	require.NoError(t, err)

	records := g.GenerateRecords()
	require.Len(t, records, 26)
	assert.Equal(t, append([]string{"Player", "Pos", "Age"}, sport.Basketball.Attributes()...), records[0])

	for i, row := range records[1:] {
		require.Len(t, row, len(records[0]), "row %d", i)
		for _, cell := range row[3:] {
			if cell == "" {
				continue
			}
			_, err := strconv.ParseFloat(cell, 64)
			assert.NoError(t, err, "row %d cell %q", i, cell)
		}
	}
}

func TestRosterGenerator_Deterministic(t *testing.T) {
	config := DefaultRosterConfig(sport.Football)
	config.PlayerCount = 40

	var a, b bytes.Buffer
	g1, err := NewRosterGenerator(config)
	require.NoError(t, err)
	g2, err := NewRosterGenerator(config)
	require.NoError(t, err)

	require.NoError(t, g1.WriteCSV(&a))
	require.NoError(t, g2.WriteCSV(&b))
	assert.Equal(t, a.String(), b.String())
}

func TestRosterGenerator_MissingRate(t *testing.T) {
	config := DefaultRosterConfig(sport.Football)
	config.PlayerCount = 50
	config.MissingRate = 0

	g, err := NewRosterGenerator(config)
	require.NoError(t, err)
	for _, row := range g.GenerateRecords()[1:] {
		for _, cell := range row {
			assert.NotEmpty(t, cell)
		}
	}
}

func TestNewRosterGenerator_Invalid(t *testing.T) {
	_, err := NewRosterGenerator(RosterGeneratorConfig{Category: "Cricket", PlayerCount: 5})
	assert.Error(t, err)

	_, err = NewRosterGenerator(RosterGeneratorConfig{Category: sport.Football})
	assert.Error(t, err)

	_, err = NewRosterGenerator(RosterGeneratorConfig{Category: sport.Football, PlayerCount: 5, MissingRate: 1})
	assert.Error(t, err)
}
