package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/apperr"
	"github.com/dmitrijs2005/dietdash/internal/profile"
	"github.com/dmitrijs2005/dietdash/internal/session"
)

var (
	getInt    = GetInt
	getFloat  = GetFloat
	getChoice = GetChoice
)

func genderOptions() []string {
	out := make([]string, 0, len(accounts.Genders))
	for _, g := range accounts.Genders {
		out = append(out, string(g))
	}
	return out
}

// readPersonalInfo runs the profile form. Unparseable numbers are reported
// as validation errors for the field in question.
func (a *App) readPersonalInfo() (accounts.PersonalInfo, error) {
	var info accounts.PersonalInfo
	var err error

	if info.Name, err = getSimpleText(a.reader, "Full Name", a.out); err != nil {
		return info, err
	}
	if info.Age, err = getInt(a.reader, "Age", a.out); err != nil {
		return info, fieldError("Age", err)
	}
	gender, err := getChoice(a.reader, "Gender", genderOptions(), a.out)
	if err != nil {
		return info, err
	}
	info.Gender = accounts.Gender(gender)
	if info.HeightCM, err = getFloat(a.reader, "Height (cm)", a.out); err != nil {
		return info, fieldError("Height (cm)", err)
	}
	if info.WeightKG, err = getFloat(a.reader, "Weight (kg)", a.out); err != nil {
		return info, fieldError("Weight (kg)", err)
	}
	if info.BodyFatPercentage, err = getFloat(a.reader, "Body Fat Percentage (BFP)", a.out); err != nil {
		return info, fieldError("Body fat percentage", err)
	}
	return info, nil
}

func fieldError(label string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apperr.Validation(label + " must be a number")
	}
	return err
}

// CompleteProfile shows the form and submits it. On success the session is
// complete and the Home page is shown.
func (a *App) CompleteProfile(ctx context.Context) error {
	fmt.Fprintln(a.out, "== Complete Your Profile ==")
	fmt.Fprintln(a.out, "Please complete your profile to continue.")

	info, err := a.readPersonalInfo()
	if err != nil {
		return err
	}
	if err := a.profile.Submit(ctx, a.session, info); err != nil {
		return err
	}

	fmt.Fprintln(a.out, profile.MsgCompleted)
	return a.display(ctx, session.ScreenHome)
}
