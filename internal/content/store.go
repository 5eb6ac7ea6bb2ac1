package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Document file names expected under the data directory.
const (
	ProfileFile      = "profile.json"
	SkillsFile       = "skills.json"
	ExperienceFile   = "experience.json"
	ProjectsFile     = "projects.json"
	AchievementsFile = "achievements.json"
)

// Store holds the loaded documents. Loads replace the full set atomically;
// readers see either the previous or the new generation, never a mix per
// document.
type Store struct {
	dir string
	log *zap.Logger

	mu           sync.RWMutex
	profile      *Profile
	skills       *Skills
	experience   *Experience
	projects     *Projects
	achievements *Achievements
}

// NewStore prepares a store reading documents from dir. Call Load before use.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

// Load reads the five documents concurrently. A document that is missing,
// unreadable, or malformed is logged and left absent; the remaining documents
// still load. Load never fails the caller.
func (s *Store) Load(ctx context.Context) {
	var (
		profile      *Profile
		skills       *Skills
		experience   *Experience
		projects     *Projects
		achievements *Achievements
	)

	var wg sync.WaitGroup
	load := func(name string, target func() any, commit func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				s.log.Warn("document load cancelled", zap.String("file", name), zap.Error(err))
				return
			}
			if err := s.readDocument(name, target()); err != nil {
				s.log.Warn("document unavailable", zap.String("file", name), zap.Error(err))
				return
			}
			commit()
		}()
	}

	var p Profile
	load(ProfileFile, func() any { return &p }, func() { profile = &p })
	var sk Skills
	load(SkillsFile, func() any { return &sk }, func() { skills = &sk })
	var ex Experience
	load(ExperienceFile, func() any { return &ex }, func() { experience = &ex })
	var pr Projects
	load(ProjectsFile, func() any { return &pr }, func() { projects = &pr })
	var ac Achievements
	load(AchievementsFile, func() any { return &ac }, func() { achievements = &ac })

	wg.Wait()

	s.mu.Lock()
	s.profile = profile
	s.skills = skills
	s.experience = experience
	s.projects = projects
	s.achievements = achievements
	s.mu.Unlock()
}

func (s *Store) readDocument(name string, target any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Profile returns the profile document when present.
func (s *Store) Profile() (*Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.profile != nil
}

// Skills returns the skills document when present.
func (s *Store) Skills() (*Skills, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skills, s.skills != nil
}

// Experience returns the experience document when present.
func (s *Store) Experience() (*Experience, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.experience, s.experience != nil
}

// Projects returns the projects document when present.
func (s *Store) Projects() (*Projects, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects, s.projects != nil
}

// Achievements returns the achievements document when present.
func (s *Store) Achievements() (*Achievements, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.achievements, s.achievements != nil
}

// ProjectByID looks a project up by its unique id. The second return is false
// when the projects document is absent or the id is unknown.
func (s *Store) ProjectByID(id string) (Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.projects == nil {
		return Project{}, false
	}
	for _, p := range s.projects.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
