// Package memory is an in-process account store and document reader. It
// backs the memory:// store URI and the service tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
)

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*accounts.Account
	byID    map[string]*accounts.Account
	diets   map[string]dashboard.DietPlan
	meals   map[string]dashboard.MealLog
}

func New() *Store {
	return &Store{
		byEmail: make(map[string]*accounts.Account),
		byID:    make(map[string]*accounts.Account),
		diets:   make(map[string]dashboard.DietPlan),
		meals:   make(map[string]dashboard.MealLog),
	}
}

func cloneAccount(a *accounts.Account) *accounts.Account {
	c := *a
	if a.PersonalInfo != nil {
		info := *a.PersonalInfo
		c.PersonalInfo = &info
	}
	return &c
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byEmail[email]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return cloneAccount(a), nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*accounts.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return cloneAccount(a), nil
}

func (s *Store) Create(ctx context.Context, a *accounts.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[a.Email]; ok {
		return accounts.ErrAlreadyExists
	}
	a.ID = uuid.NewString()
	stored := cloneAccount(a)
	s.byEmail[a.Email] = stored
	s.byID[a.ID] = stored
	return nil
}

func (s *Store) CompleteProfile(ctx context.Context, email string, info accounts.PersonalInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byEmail[email]
	if !ok {
		return accounts.ErrNotFound
	}
	a.PersonalInfo = &info
	a.ProfileCompleted = true
	return nil
}

// Profile implements dashboard.Reader from the account record.
func (s *Store) Profile(ctx context.Context, userID string) (*dashboard.Profile, error) {
	a, err := s.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, dashboard.ErrNotFound
		}
		return nil, err
	}
	return dashboard.ProfileFromAccount(a), nil
}

func (s *Store) DietPlan(ctx context.Context, userID string) (*dashboard.DietPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.diets[userID]
	if !ok {
		return nil, dashboard.ErrNotFound
	}
	return &d, nil
}

func (s *Store) MealLog(ctx context.Context, userID string) (*dashboard.MealLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.meals[userID]
	if !ok {
		return nil, dashboard.ErrNotFound
	}
	return &l, nil
}

// PutDietPlan stores the diet plan shown to userID, replacing any earlier one.
func (s *Store) PutDietPlan(userID string, d dashboard.DietPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diets[userID] = d
}

// PutMealLog stores the meal log shown to userID, replacing any earlier one.
func (s *Store) PutMealLog(userID string, l dashboard.MealLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meals[userID] = l
}

// Close is a no-op; it lets Store stand in wherever a closable backend is
// expected.
func (s *Store) Close(context.Context) error {
	return nil
}
