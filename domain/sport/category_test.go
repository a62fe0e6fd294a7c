package sport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/domain/core"
)

func TestParse(t *testing.T) {
	cases := map[string]Category{
		"Football":   Football,
		"football":   Football,
		" Futbol ":   Football,
		"BASKETBALL": Basketball,
		"Basketbol":  Basketball,
	}
	for label, want := range cases {
		got, err := Parse(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
}

func TestParseUnsupported(t *testing.T) {
	_, err := Parse("Hockey")
	assert.ErrorIs(t, err, core.ErrUnsupportedCategory)

	_, err = Parse("")
	assert.ErrorIs(t, err, core.ErrUnsupportedCategory)
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, []string{"xG", "Gls", "Sh", "Cmp%", "KP", "xA"}, Football.Attributes())
	assert.Len(t, Basketball.Attributes(), 10)
	assert.Nil(t, Category("Hockey").Attributes())

	// Callers cannot mutate the fixed map through the returned slice.
	attrs := Football.Attributes()
	attrs[0] = "changed"
	assert.Equal(t, "xG", Football.Attributes()[0])
}

func TestHasAttribute(t *testing.T) {
	assert.True(t, Basketball.HasAttribute("3P%"))
	assert.False(t, Basketball.HasAttribute("xG"))
	assert.False(t, Category("Hockey").HasAttribute("xG"))
}

func TestAllCategoriesAreValid(t *testing.T) {
	for _, c := range All() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("Hockey").IsValid())
}
