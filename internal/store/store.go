// Package store holds the canonical employee collection. It is the single
// source of truth: readers get copies, writers go through Add, Update and
// Remove, and every mutation is persisted and announced to subscribers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/repositories/localstore"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type subscriber struct {
	id int
	fn func()
}

// Store is safe for concurrent use. Subscribers run on the mutating
// goroutine after the collection lock has been released, so they may read
// the store.
type Store struct {
	repo   localstore.Repository
	logger logging.Logger
	newID  func() string

	mu        sync.RWMutex
	employees []models.Employee

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

// New loads the collection from repo. A missing key starts an empty
// directory, and so does malformed data (logged as a warning). A failing
// read is returned as *common.PersistenceError.
func New(ctx context.Context, repo localstore.Repository, logger logging.Logger) (*Store, error) {
	s := &Store{
		repo:      repo,
		logger:    logger.With("component", "store"),
		newID:     uuid.NewString,
		employees: []models.Employee{},
	}

	raw, err := repo.Get(ctx, common.StorageKeyEmployees)
	if err != nil {
		return nil, &common.PersistenceError{Op: "get", Key: common.StorageKeyEmployees, Err: err}
	}
	if len(raw) == 0 {
		return s, nil
	}

	var loaded []models.Employee
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Warn(ctx, "stored employees are malformed, starting empty", "error", err)
		return s, nil
	}
	if loaded != nil {
		s.employees = loaded
	}
	s.logger.Debug(ctx, "employees loaded", "count", len(s.employees))
	return s, nil
}

// List returns a snapshot, newest first.
func (s *Store) List() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Len is the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

func (s *Store) GetByID(id string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.employees[i], true
	}
	return models.Employee{}, false
}

// IsEmailUnique reports whether no record other than excludeID uses email,
// compared with Unicode case folding. Pass "" to check against everyone.
func (s *Store) IsEmailUnique(email, excludeID string) bool {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == excludeID && excludeID != "" {
			continue
		}
		if fold.String(strings.TrimSpace(e.Email)) == want {
			return false
		}
	}
	return true
}

// Add stores d under a fresh id at the front of the collection.
func (s *Store) Add(ctx context.Context, d models.Draft) (models.Employee, error) {
	s.mu.Lock()
	rec := d.WithID(s.newID())
	s.employees = append([]models.Employee{rec}, s.employees...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "employee added", "id", rec.ID)
	s.notify()
	return rec, err
}

// AddMany stores all drafts with a single write and a single notification.
// The first draft ends up at the front.
func (s *Store) AddMany(ctx context.Context, drafts []models.Draft) ([]models.Employee, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	recs := make([]models.Employee, len(drafts))
	s.mu.Lock()
	for i, d := range drafts {
		recs[i] = d.WithID(s.newID())
	}
	s.employees = append(append([]models.Employee{}, recs...), s.employees...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "employees added", "count", len(recs))
	s.notify()
	return recs, err
}

// Update merges p into the record with id. An unknown id wraps
// common.ErrorNotFound and changes nothing.
func (s *Store) Update(ctx context.Context, id string, p models.Patch) (models.Employee, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Employee{}, fmt.Errorf("update employee %s: %w", id, common.ErrorNotFound)
	}
	rec := p.Apply(s.employees[i])
	s.employees[i] = rec
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "employee updated", "id", id)
	s.notify()
	return rec, err
}

// Remove deletes the record with id. It reports whether anything was
// removed; an unknown id is a silent no-op without a write.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	s.employees = append(s.employees[:i:i], s.employees[i+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.Info(ctx, "employee removed", "id", id)
	s.notify()
	return true, err
}

// Subscribe registers fn to run after every mutation. The returned function
// unsubscribes and may be called more than once.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the whole collection. Caller holds s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.employees)
	if err != nil {
		return &common.PersistenceError{Op: "encode", Key: common.StorageKeyEmployees, Err: err}
	}
	if err := s.repo.Set(ctx, common.StorageKeyEmployees, raw); err != nil {
		s.logger.Error(ctx, "failed to persist employees", "error", err)
		return &common.PersistenceError{Op: "set", Key: common.StorageKeyEmployees, Err: err}
	}
	return nil
}
