package coercer

import (
	"math"
	"strconv"
	"strings"
)

// TypeCoercer handles deterministic numeric coercion of textual cells
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the coercion thresholds and rules
type CoercionConfig struct {
	Enabled          bool     `json:"enabled"`
	NumericThreshold float64  `json:"numeric_threshold"` // share of non-missing values that must parse as numbers
	MissingTokens    []string `json:"missing_tokens"`
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		Enabled:          true,
		NumericThreshold: 0.5,
		MissingTokens:    []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "-"},
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// Config returns the active configuration
func (c *TypeCoercer) Config() CoercionConfig {
	return c.config
}

// IsMissing reports whether a raw cell denotes a missing value
func (c *TypeCoercer) IsMissing(raw string) bool {
	v := strings.TrimSpace(raw)
	for _, token := range c.config.MissingTokens {
		if v == token {
			return true
		}
	}
	return false
}

// TypeAnalysis summarises how many cells of a column parse as numbers
type TypeAnalysis struct {
	TotalCount   int     `json:"total_count"`
	ValidCount   int     `json:"valid_count"`
	NumericCount int     `json:"numeric_count"`
	NumericRatio float64 `json:"numeric_ratio"`
}

// AnalyzeColumn counts numeric cells among the non-missing ones
func (c *TypeCoercer) AnalyzeColumn(values []string) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(values)}
	for _, v := range values {
		if c.IsMissing(v) {
			continue
		}
		analysis.ValidCount++
		if _, ok := c.ParseNumeric(v); ok {
			analysis.NumericCount++
		}
	}
	if analysis.ValidCount > 0 {
		analysis.NumericRatio = float64(analysis.NumericCount) / float64(analysis.ValidCount)
	}
	return analysis
}

// ShouldCoerce decides whether a textual column becomes numeric
func (c *TypeCoercer) ShouldCoerce(analysis TypeAnalysis) bool {
	return c.config.Enabled &&
		analysis.NumericCount > 0 &&
		analysis.NumericRatio >= c.config.NumericThreshold
}

// CoerceColumn converts every cell to a canonical float literal. Cells that do
// not parse become "NaN".
func (c *TypeCoercer) CoerceColumn(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if f, ok := c.ParseNumeric(v); ok && !c.IsMissing(v) {
			out[i] = strconv.FormatFloat(f, 'g', -1, 64)
		} else {
			out[i] = "NaN"
		}
	}
	return out
}

// ParseNumeric parses plain, percent, currency, parenthesised-negative and
// European-formatted numbers.
func (c *TypeCoercer) ParseNumeric(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	// (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	for _, symbol := range []string{"$", "€", "£", "¥", "%"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.TrimSpace(cleanVal)

	hasComma := strings.Contains(cleanVal, ",")
	hasPeriod := strings.Contains(cleanVal, ".")
	hasSpace := strings.Contains(cleanVal, " ")

	switch {
	case hasComma && (hasPeriod || hasSpace):
		commaIdx := strings.LastIndex(cleanVal, ",")
		periodIdx := strings.LastIndex(cleanVal, ".")
		if commaIdx > periodIdx {
			// 1.234,56 or 1 234,56
			cleanVal = strings.ReplaceAll(cleanVal, ".", "")
			cleanVal = strings.ReplaceAll(cleanVal, " ", "")
			cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
		} else {
			// 1,234.56
			cleanVal = strings.ReplaceAll(cleanVal, ",", "")
			cleanVal = strings.ReplaceAll(cleanVal, " ", "")
		}
	case hasComma && strings.Count(cleanVal, ",") == 1:
		// decimal comma
		cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
	case hasComma:
		cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	default:
		cleanVal = strings.ReplaceAll(cleanVal, " ", "")
	}

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}
