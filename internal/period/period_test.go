package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2024-01", Key("2024", "01"))
}

func TestIsYearFolder(t *testing.T) {
	assert.True(t, IsYearFolder("2024"))
	assert.True(t, IsYearFolder("2025"))
	assert.False(t, IsYearFolder("202"))
	assert.False(t, IsYearFolder("20244"))
	assert.False(t, IsYearFolder("Reportes"))
	assert.False(t, IsYearFolder("2024 final"))
}

func TestFromFolder(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{"01", "01", true},
		{"1.ENERO 2024", "01", true},
		{"02.-Febrero", "02", true},
		{"12 DICIEMBRE", "12", true},
		{"ENERO", "", false},
		{"Reportes", "", false},
	}
	for _, tt := range tests {
		got, ok := FromFolder(tt.name)
		assert.Equal(t, tt.found, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		want  string
		found bool
	}{
		{"12 2024 Estado de Resultados.pdf", "2024", "12", true},
		{"Estado de Resultados 01 Ene 2024.pdf", "2024", "01", true},
		{"Balance General 03 Mar 2025.pdf", "2025", "03", true},
		{"Estado de Resultados.pdf", "2024", "", false},
		// Year token belongs to a different year.
		{"12 2023 Estado de Resultados.pdf", "2024", "", false},
	}
	for _, tt := range tests {
		got, ok := FromFilename(tt.name, tt.year)
		assert.Equal(t, tt.found, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestMatchesMonth(t *testing.T) {
	assert.True(t, MatchesMonth("1.ENERO 2024", "01"))
	assert.True(t, MatchesMonth("Enero", "01"))
	assert.True(t, MatchesMonth("09", "09"))
	assert.False(t, MatchesMonth("02 FEBRERO", "01"))
	assert.False(t, MatchesMonth("Cierre", "01"))
}

func TestVariants(t *testing.T) {
	assert.Contains(t, Variants("08"), "Ago")
	assert.Len(t, Months, 12)
}
