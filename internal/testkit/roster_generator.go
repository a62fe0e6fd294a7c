package testkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"sportstat/domain/sport"
)

// RosterGeneratorConfig configures the synthetic player roster generator
type RosterGeneratorConfig struct {
	Category    sport.Category `json:"category"`
	PlayerCount int            `json:"player_count"`
	MissingRate float64        `json:"missing_rate"`
	Seed        int64          `json:"seed"`
}

// DefaultRosterConfig returns sensible defaults for roster generation
func DefaultRosterConfig(category sport.Category) RosterGeneratorConfig {
	return RosterGeneratorConfig{
		Category:    category,
		PlayerCount: 200,
		MissingRate: 0.05,
		Seed:        42,
	}
}

// attributeModel is the distribution a generated attribute is drawn from
type attributeModel struct {
	mean, std float64
	min, max  float64
	decimals  int
}

var attributeModels = map[string]attributeModel{
	// football
	"xG":   {mean: 3.2, std: 2.8, min: 0, max: 30, decimals: 1},
	"Gls":  {mean: 3.5, std: 3.6, min: 0, max: 40, decimals: 0},
	"Sh":   {mean: 25, std: 18, min: 0, max: 160, decimals: 0},
	"Cmp%": {mean: 76, std: 8, min: 40, max: 96, decimals: 1},
	"KP":   {mean: 18, std: 14, min: 0, max: 110, decimals: 0},
	"xA":   {mean: 2.1, std: 1.9, min: 0, max: 18, decimals: 1},
	// basketball
	"PTS": {mean: 11.5, std: 6.5, min: 0, max: 36, decimals: 1},
	"AST": {mean: 2.6, std: 2.0, min: 0, max: 12, decimals: 1},
	"TRB": {mean: 4.4, std: 2.5, min: 0, max: 15, decimals: 1},
	"FG%": {mean: 0.46, std: 0.06, min: 0.2, max: 0.75, decimals: 3},
	"3P%": {mean: 0.34, std: 0.07, min: 0, max: 0.6, decimals: 3},
	"FT%": {mean: 0.77, std: 0.09, min: 0.3, max: 1, decimals: 3},
	"MP":  {mean: 22, std: 8, min: 2, max: 40, decimals: 1},
	"TOV": {mean: 1.4, std: 0.8, min: 0, max: 5, decimals: 1},
	"BLK": {mean: 0.5, std: 0.5, min: 0, max: 4, decimals: 1},
	"STL": {mean: 0.8, std: 0.4, min: 0, max: 3, decimals: 1},
}

var positions = map[sport.Category][]string{
	sport.Football:   {"GK", "DF", "MF", "FW"},
	sport.Basketball: {"PG", "SG", "SF", "PF", "C"},
}

// RosterGenerator generates seeded player tables with the category attributes
// plus a couple of descriptive columns
type RosterGenerator struct {
	config RosterGeneratorConfig
	rng    *rand.Rand
}

// NewRosterGenerator creates a new roster generator
func NewRosterGenerator(config RosterGeneratorConfig) (*RosterGenerator, error) {
	if !config.Category.IsValid() {
		return nil, fmt.Errorf("unsupported category %q", config.Category)
	}
	if config.PlayerCount < 1 {
		return nil, fmt.Errorf("player count must be positive, got %d", config.PlayerCount)
	}
	if config.MissingRate < 0 || config.MissingRate >= 1 {
		return nil, fmt.Errorf("missing rate must be in [0, 1), got %g", config.MissingRate)
	}
	return &RosterGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Header returns the generated column names
func (g *RosterGenerator) Header() []string {
	return append([]string{"Player", "Pos", "Age"}, g.config.Category.Attributes()...)
}

// GenerateRecords returns the header followed by one record per player.
// Missing attribute cells are empty strings.
func (g *RosterGenerator) GenerateRecords() [][]string {
	attrs := g.config.Category.Attributes()
	pos := positions[g.config.Category]

	records := make([][]string, 0, g.config.PlayerCount+1)
	records = append(records, g.Header())
	for i := 0; i < g.config.PlayerCount; i++ {
		row := []string{
			fmt.Sprintf("Player %03d", i+1),
			pos[g.rng.Intn(len(pos))],
			strconv.Itoa(18 + g.rng.Intn(19)),
		}
		for _, attr := range attrs {
			if g.rng.Float64() < g.config.MissingRate {
				row = append(row, "")
				continue
			}
			row = append(row, g.draw(attributeModels[attr]))
		}
		records = append(records, row)
	}
	return records
}

// WriteCSV writes the generated roster as comma-separated text
func (g *RosterGenerator) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(g.GenerateRecords()); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}
	return nil
}

func (g *RosterGenerator) draw(m attributeModel) string {
	v := m.mean + g.rng.NormFloat64()*m.std
	v = math.Max(m.min, math.Min(m.max, v))
	return strconv.FormatFloat(v, 'f', m.decimals, 64)
}
