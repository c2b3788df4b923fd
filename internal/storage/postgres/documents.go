package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
)

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

func (s *Store) document(ctx context.Context, query, userID string) ([]byte, error) {
	var raw []byte
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dashboard.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return raw, nil
}

// DietPlan returns the most recently generated plan for userID.
func (s *Store) DietPlan(ctx context.Context, userID string) (*dashboard.DietPlan, error) {
	query :=
		`SELECT plan FROM diet_plans
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	raw, err := s.document(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	d := &dashboard.DietPlan{}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("%w: %v", dashboard.ErrMalformed, err)
	}
	if err := dashboard.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) MealLog(ctx context.Context, userID string) (*dashboard.MealLog, error) {
	query :=
		`SELECT meals FROM meal_logs
		 WHERE user_id = $1
		 `

	raw, err := s.document(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	l := &dashboard.MealLog{}
	if err := json.Unmarshal(raw, &l.Meals); err != nil {
		return nil, fmt.Errorf("%w: %v", dashboard.ErrMalformed, err)
	}
	if err := dashboard.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}
