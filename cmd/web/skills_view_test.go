package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drahman/folio-web/internal/content"
)

func TestBuildSkillGroups(t *testing.T) {
	doc := &content.Skills{Categories: []content.SkillCategory{
		{Name: "Backend", Icon: "fa-server", Skills: []content.Skill{
			{Name: "Go", Level: 72},
			{Name: "Redis", Level: 140},
			{Name: "New", Level: -5},
		}},
		{Name: "Frontend", Skills: []content.Skill{{Name: "CSS", Level: 60}}},
	}}

	groups := buildSkillGroups(doc)
	require.Len(t, groups, 2)

	bars := groups[0].Skills
	require.Len(t, bars, 3)
	assert.Equal(t, "72%", bars[0].Width)
	assert.Equal(t, bars[0].Width, bars[0].Label)
	assert.Equal(t, "100%", bars[1].Width)
	assert.Equal(t, "0%", bars[2].Width)

	assert.Equal(t, "fa-server", groups[0].Icon)
	assert.Equal(t, defaultCategoryIcon, groups[1].Icon)
}
