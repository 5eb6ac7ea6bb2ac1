package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMarksSingleActive(t *testing.T) {
	links := Build("projects")
	var active int
	for _, l := range links {
		if l.Active {
			active++
			require.Equal(t, "#projects", l.Href)
		}
	}
	require.Equal(t, 1, active)
}

func TestBuildUnknownActiveMarksNone(t *testing.T) {
	for _, l := range Build("nope") {
		require.False(t, l.Active)
	}
}

func TestActiveSectionBoundaries(t *testing.T) {
	sections := []Metrics{
		{ID: "home", Top: 0, Height: 600},
		{ID: "about", Top: 600, Height: 400},
	}

	// Range is [Top-ScrollOffset, Top-ScrollOffset+Height).
	require.Equal(t, "about", ActiveSection(sections, 600-ScrollOffset))
	require.Equal(t, "about", ActiveSection(sections, 600-ScrollOffset+399))
	require.Equal(t, "", ActiveSection(sections, 600-ScrollOffset+400))
}

func TestActiveSectionLastMatchWins(t *testing.T) {
	sections := []Metrics{
		{ID: "home", Top: 0, Height: 1000},
		{ID: "about", Top: 500, Height: 500},
	}
	require.Equal(t, "about", ActiveSection(sections, 500))
	require.Equal(t, "home", ActiveSection(sections, 100))
}

func TestScrolledThreshold(t *testing.T) {
	require.False(t, Scrolled(50))
	require.True(t, Scrolled(51))
}
