package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSame(t *testing.T) {
	assert.True(t, Same("  AP123 ", "ap123"))
	assert.True(t, Same("Активный", "активный"))
	assert.False(t, Same("AP123", "AP124"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Восточно-Казахстанская область", "казахстан"))
	assert.True(t, Contains("Алматы", "алма"))
	assert.False(t, Contains("Алматы", "Астана"))
	// Empty needle is vacuously contained.
	assert.True(t, Contains("anything", ""))
}

func TestAnyContains(t *testing.T) {
	tags := []string{"Грантовое финансирование", "Энергетика"}
	assert.True(t, AnyContains(tags, "грант"))
	assert.True(t, AnyContains(tags, "энерг"))
	assert.False(t, AnyContains(tags, "программа"))
	assert.False(t, AnyContains(nil, "грант"))
}

func TestInRange(t *testing.T) {
	lo, hi := 5.0, 10.0
	assert.True(t, InRange(7, &lo, &hi))
	assert.True(t, InRange(5, &lo, &hi))
	assert.True(t, InRange(10, &lo, &hi))
	assert.False(t, InRange(4.9, &lo, &hi))
	assert.False(t, InRange(10.1, &lo, &hi))
	assert.True(t, InRange(1000, &lo, nil))
	assert.True(t, InRange(-1000, nil, &hi))
	assert.True(t, InRange(42, nil, nil))
}

func TestDegreeAliases(t *testing.T) {
	assert.True(t, DegreeAliases.Match("доктор технических наук", "Doctor"))
	assert.True(t, DegreeAliases.Match("Doctor of Philosophy", "doctor"))
	assert.True(t, DegreeAliases.Match("кандидат наук", "candidate"))
	assert.True(t, DegreeAliases.Match("PhD", "phd"))
	assert.True(t, DegreeAliases.Match("Ph.D. in Chemistry", "phd"))
	assert.False(t, DegreeAliases.Match("магистр", "doctor"))

	// Unregistered filter values fall back to literal substring matching.
	assert.True(t, DegreeAliases.Match("академик НАН", "академик"))
	assert.False(t, DegreeAliases.Match("доктор наук", "академик"))
}
