package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/dbx"
)

const selectAccount = `SELECT id, email, password_hash, created_at, profile_completed, personal_info
		 FROM accounts
		 `

func scanAccount(row *sql.Row) (*accounts.Account, error) {
	a := &accounts.Account{}
	var info []byte
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.ProfileCompleted, &info); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(info) > 0 {
		a.PersonalInfo = &accounts.PersonalInfo{}
		if err := json.Unmarshal(info, a.PersonalInfo); err != nil {
			return nil, fmt.Errorf("decode personal_info: %w", err)
		}
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	return scanAccount(s.db.QueryRowContext(ctx, selectAccount+`WHERE email = $1`, email))
}

func (s *Store) FindByID(ctx context.Context, id string) (*accounts.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, accounts.ErrNotFound
	}
	return scanAccount(s.db.QueryRowContext(ctx, selectAccount+`WHERE id = $1`, id))
}

func (s *Store) Create(ctx context.Context, a *accounts.Account) error {
	var info []byte
	if a.PersonalInfo != nil {
		var err error
		if info, err = json.Marshal(a.PersonalInfo); err != nil {
			return err
		}
	}

	query :=
		`INSERT INTO accounts (email, password_hash, created_at, profile_completed, personal_info)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := s.db.QueryRowContext(ctx, query,
		a.Email, a.PasswordHash, a.CreatedAt, a.ProfileCompleted, info).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return accounts.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *Store) CompleteProfile(ctx context.Context, email string, info accounts.PersonalInfo) error {
	payload, err := json.Marshal(info)
	if err != nil {
		return err
	}

	query :=
		`UPDATE accounts SET personal_info = $2, profile_completed = TRUE
		 WHERE email = $1
		 `

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, query, email, payload)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if n == 0 {
			return accounts.ErrNotFound
		}
		return nil
	})
}
