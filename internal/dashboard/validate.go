package dashboard

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
)

// ErrMalformed wraps boundary validation failures of fetched documents.
var ErrMalformed = errors.New("malformed document")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a decoded Profile, DietPlan or MealLog before it is
// rendered.
func Validate(doc any) error {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrMalformed, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// ProfileFromAccount builds the Home view of an account. Accounts that
// never completed their profile yield a view with only the email set.
func ProfileFromAccount(a *accounts.Account) *Profile {
	p := &Profile{Email: a.Email}
	if info := a.PersonalInfo; info != nil {
		age, height, weight, bfp := info.Age, info.HeightCM, info.WeightKG, info.BodyFatPercentage
		p.Name = info.Name
		p.Gender = string(info.Gender)
		p.Age = &age
		p.HeightCM = &height
		p.WeightKG = &weight
		p.BodyFatPercentage = &bfp
	}
	return p
}
