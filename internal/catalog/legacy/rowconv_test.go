package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowString(t *testing.T) {
	row := Row{"ИРН": "  AP123 ", "number": "fallback", "пусто": "", "нуль": nil}

	assert.Equal(t, "AP123", row.String("ИРН", "number"))
	assert.Equal(t, "fallback", row.String("пусто", "number"))
	assert.Equal(t, "", row.String("нуль", "нет такой"))
}

func TestRowNumber(t *testing.T) {
	row := Row{
		"одобр":  "1 250 000,50",
		"запр":   float64(900),
		"мусор":  "n/a",
		"пусто":  "",
	}

	assert.Equal(t, 1250000.50, row.Number("одобр", "запр"))
	assert.Equal(t, float64(900), row.Number("пусто", "запр"))
	assert.Equal(t, float64(0), row.Number("мусор"))
	assert.Equal(t, float64(0), row.Number("нет такой"))
}

func TestRowFirstStringIsDeterministic(t *testing.T) {
	row := Row{"b_код": "второй", "a_код": "первый", "0_пусто": ""}
	for range 20 {
		assert.Equal(t, "первый", row.FirstString())
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"42", 42},
		{"42,5", 42.5},
		{"1 000 000", 1000000},
		{"", 0},
		{"abc", 0},
		{"Inf", 0},
		{"NaN", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("bare year maps to january first", func(t *testing.T) {
		got := ParseDate("2021")
		require.NotNil(t, got)
		assert.Equal(t, "2021-01-01", *got)
	})

	t.Run("calendar dates normalize to ISO", func(t *testing.T) {
		for raw, want := range map[string]string{
			"2021-03-15":          "2021-03-15",
			"15.03.2021":          "2021-03-15",
			"2021/03/15":          "2021-03-15",
			"2021-03-15 10:30:00": "2021-03-15",
		} {
			got := ParseDate(raw)
			require.NotNil(t, got, "raw=%q", raw)
			assert.Equal(t, want, *got, "raw=%q", raw)
		}
	})

	t.Run("empty and junk yield nil", func(t *testing.T) {
		assert.Nil(t, ParseDate(""))
		assert.Nil(t, ParseDate("  "))
		assert.Nil(t, ParseDate("скоро"))
	})
}

func TestDeriveIDStability(t *testing.T) {
	first := DeriveID(IDPrefixProject, "Водородная энергетика", "ТОО Институт", "Алматы")
	second := DeriveID(IDPrefixProject, "Водородная энергетика", "ТОО Институт", "Алматы")

	assert.Equal(t, first, second)
	assert.Regexp(t, `^project-[0-9a-f]{12}$`, first)

	other := DeriveID(IDPrefixProject, "Водородная энергетика", "ТОО Институт", "Астана")
	assert.NotEqual(t, first, other)
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, "рус", resolveLocale(DomainProjects, "рус"))
	assert.Equal(t, "ru", resolveLocale(DomainEmployees, "рус"))
	assert.Equal(t, "русн", resolveLocale(DomainPublications, "рус"))
	assert.Equal(t, "ру", resolveLocale(DomainFinances, "рус"))
	assert.Equal(t, "kz", resolveLocale(DomainEmployees, "kz"))
	require.NoError(t, validateLocaleTable())
}
