package usecase

import (
	"sync"

	"portfolio-server/internal/model"
)

// ResumeStore holds one ResumeRecord per builder session. The record is
// created from the seed on first access and replaced wholesale on every
// commit; there is exactly one writer per record (the owning session) and
// nothing is persisted. Dropping the session discards all edits.
type ResumeStore struct {
	mu      sync.Mutex
	records map[string]model.ResumeRecord
	seed    func() model.ResumeRecord
}

func NewResumeStore(seed func() model.ResumeRecord) *ResumeStore {
	return &ResumeStore{records: map[string]model.ResumeRecord{}, seed: seed}
}

// Get returns a copy of the session's record, seeding it on first touch.
func (s *ResumeStore) Get(sessionID string) model.ResumeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[sessionID]
	if !ok {
		rec = s.seed()
		s.records[sessionID] = rec
	}
	return rec.Clone()
}

// Replace installs a structurally new record for the session.
func (s *ResumeStore) Replace(sessionID string, rec model.ResumeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = rec.Clone()
}

// Drop discards the session's record.
func (s *ResumeStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
}
