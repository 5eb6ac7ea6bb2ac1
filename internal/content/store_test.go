package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAllDocuments(t *testing.T) {
	s := NewStore("testdata/full", nil)
	s.Load(context.Background())

	p, ok := s.Profile()
	require.True(t, ok)
	require.Equal(t, "Dimas Rahman", p.Name)

	sk, ok := s.Skills()
	require.True(t, ok)
	require.Len(t, sk.Categories, 2)
	require.Equal(t, 72, sk.Categories[0].Skills[1].Level)

	ex, ok := s.Experience()
	require.True(t, ok)
	require.Len(t, ex.Entries, 1)

	pr, ok := s.Projects()
	require.True(t, ok)
	require.Len(t, pr.Projects, 3)

	ac, ok := s.Achievements()
	require.True(t, ok)
	require.Len(t, ac.All(), 2)
	require.Equal(t, "Best Engineering Blog", ac.All()[0].Title)
	require.Equal(t, "CKA", ac.All()[1].Title)
}

func TestLoadPartialFailureLeavesOthersIntact(t *testing.T) {
	// skills.json is malformed and the remaining three files are missing;
	// profile.json must still load and nothing may fail the caller.
	s := NewStore("testdata/partial", nil)
	s.Load(context.Background())

	p, ok := s.Profile()
	require.True(t, ok, "profile must survive sibling failures")
	require.Equal(t, "Dimas Rahman", p.Name)

	_, ok = s.Skills()
	require.False(t, ok, "malformed skills document must be absent")
	_, ok = s.Experience()
	require.False(t, ok)
	_, ok = s.Projects()
	require.False(t, ok)
	_, ok = s.Achievements()
	require.False(t, ok)
}

func TestProjectByID(t *testing.T) {
	s := NewStore("testdata/full", nil)
	s.Load(context.Background())

	p, ok := s.ProjectByID("p2")
	require.True(t, ok)
	require.Equal(t, "Trailhead", p.Title)

	_, ok = s.ProjectByID("nope")
	require.False(t, ok)
}

func TestProjectByIDAbsentDocument(t *testing.T) {
	s := NewStore("testdata/partial", nil)
	s.Load(context.Background())

	_, ok := s.ProjectByID("p1")
	require.False(t, ok)
}

func TestReloadReplacesDocuments(t *testing.T) {
	s := NewStore("testdata/full", nil)
	s.Load(context.Background())
	_, ok := s.Projects()
	require.True(t, ok)

	// Repointing at a sparse directory and reloading must drop documents
	// that no longer load, not accumulate stale ones.
	s.dir = "testdata/partial"
	s.Load(context.Background())
	_, ok = s.Projects()
	require.False(t, ok)
	_, ok = s.Profile()
	require.True(t, ok)
}
