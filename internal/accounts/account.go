// Package accounts defines the Account record and the contract every
// account store adapter implements.
package accounts

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no account matches the lookup key.
	ErrNotFound = errors.New("account not found")
	// ErrAlreadyExists is returned when an insert hits the unique email index.
	ErrAlreadyExists = errors.New("account already exists")
)

// Gender values accepted by the profile form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// PersonalInfo is the health profile embedded in an account. Field names on
// the wire follow the stored documents ("bfp" is body fat percentage).
type PersonalInfo struct {
	Name              string  `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Age               int     `bson:"age" json:"age" validate:"gte=1,lte=120"`
	Gender            Gender  `bson:"gender" json:"gender" validate:"required,oneof=Male Female Other"`
	HeightCM          float64 `bson:"height" json:"height" validate:"gt=0,lte=300"`
	WeightKG          float64 `bson:"weight" json:"weight" validate:"gt=0,lte=500"`
	BodyFatPercentage float64 `bson:"bfp" json:"bfp" validate:"gte=0,lte=100"`
}

// Account is a registered user. PasswordHash is always a bcrypt hash.
type Account struct {
	ID               string
	Email            string
	PasswordHash     string
	CreatedAt        time.Time
	ProfileCompleted bool
	PersonalInfo     *PersonalInfo
}

// Repository is the account store. Implementations must enforce email
// uniqueness themselves and report a violation as ErrAlreadyExists, and
// must report a missing account as ErrNotFound.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	// Create inserts a and fills in a.ID.
	Create(ctx context.Context, a *Account) error
	// CompleteProfile sets the personal info and flips profile_completed in
	// one atomic update keyed by email.
	CompleteProfile(ctx context.Context, email string, info PersonalInfo) error
}
