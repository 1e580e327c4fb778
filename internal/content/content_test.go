package content_test

import (
	"testing"

	"github.com/amaljosh/wellness/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServices_FixedOrder(t *testing.T) {
	want := []string{
		"Ayurvedic Nutrition",
		"Family Health Reversal",
		"Obesity & Fat Management",
		"Skin Care - Inner & Outer",
		"Kids Nutrition",
		"Heart Health",
		"Digestive Health",
		"Bone & Joint Health",
		"Women and Men Nutrition",
	}

	services := content.Services()
	require.Len(t, services, 9)
	for i, s := range services {
		assert.Equal(t, want[i], s.Title)
		assert.NotEmpty(t, s.Description)
	}
}

func TestServices_ReturnsCopy(t *testing.T) {
	first := content.Services()
	first[0], first[8] = first[8], first[0]

	assert.Equal(t, "Ayurvedic Nutrition", content.Services()[0].Title)
}

func TestStatsAndNav(t *testing.T) {
	require.Len(t, content.Stats, 3)
	assert.Equal(t, "100K+", content.Stats[0].Value)
	assert.Equal(t, "#contact", content.Nav[len(content.Nav)-1].Href)
}
