package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
)

func sampleDietPlan() *DietPlan {
	return &DietPlan{
		Goal:           "Lose weight",
		DietPreference: "vegetarian",
		DailyNutrition: DailyNutrition{Calories: 1800, Carbs: 200, Protein: 90, Fats: 60, WaterIntake: 2.5},
		CalorieDistribution: []CalorieShare{
			{Category: "Carbohydrates", Percentage: "45%"},
			{Category: "Proteins", Percentage: "25%"},
		},
		WorkoutRoutine: []WorkoutDay{{Day: "Monday", Routine: "30 min jog"}},
		MealPlans: []DayMealPlan{{
			Day:            "Monday",
			TotalCalories:  1750,
			Macronutrients: Macronutrients{Carbohydrates: 190, Proteins: 85, Fats: 55},
			Meals: []PlannedMeal{{
				MealType: "breakfast",
				Items:    []PlannedItem{{Name: "Oatmeal", Calories: 350, Ingredients: []string{"oats", "milk"}}},
			}},
		}},
	}
}

func sampleMealLog() *MealLog {
	return &MealLog{Meals: []LoggedMeal{{
		MealType:       "lunch",
		TotalCalories:  640,
		Macronutrients: Macronutrients{Carbohydrates: 70, Proteins: 35, Fats: 20},
		Items:          []LoggedItem{{Name: "Chicken salad", Calories: 640, Carbs: 70, Proteins: 35, Fats: 20}},
	}}}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sampleDietPlan()))
	require.NoError(t, Validate(sampleMealLog()))
	require.NoError(t, Validate(&MealLog{}))

	d := sampleDietPlan()
	d.MealPlans[0].Meals[0].Items[0].Calories = -1
	err := Validate(d)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "Calories")

	l := sampleMealLog()
	l.Meals[0].Items[0].Name = ""
	require.ErrorIs(t, Validate(l), ErrMalformed)

	d = sampleDietPlan()
	d.DailyNutrition.WaterIntake = -2
	require.ErrorIs(t, Validate(d), ErrMalformed)
}

func TestValidate_Profile(t *testing.T) {
	require.NoError(t, Validate(&Profile{Email: "a@b.com"}))

	age, bfp := 36, 24.0
	require.NoError(t, Validate(&Profile{Age: &age, BodyFatPercentage: &bfp}))

	age = -1
	require.ErrorIs(t, Validate(&Profile{Age: &age}), ErrMalformed)

	bfp = 101
	require.ErrorIs(t, Validate(&Profile{BodyFatPercentage: &bfp}), ErrMalformed)
}

func TestProfile_UnmarshalJSON(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ada","age":36.0,"height":165}`), &p))
	assert.Equal(t, "Ada", p.Name)
	require.NotNil(t, p.Age)
	assert.Equal(t, 36, *p.Age)
	require.NotNil(t, p.HeightCM)
	assert.InDelta(t, 165.0, *p.HeightCM, 0.0001)

	var q Profile
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bo"}`), &q))
	assert.Nil(t, q.Age)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"age":36.6}`), &q), ErrMalformed)
	require.Error(t, json.Unmarshal([]byte(`{"age":"old"}`), &q))
}

func TestProfileFromAccount(t *testing.T) {
	a := &accounts.Account{ID: "1", Email: "a@b.com", CreatedAt: time.Now()}
	p := ProfileFromAccount(a)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Empty(t, p.Name)
	assert.Nil(t, p.Age)
	assert.Nil(t, p.HeightCM)

	a.PersonalInfo = &accounts.PersonalInfo{
		Name: "Ada", Age: 36, Gender: accounts.GenderFemale, HeightCM: 165, WeightKG: 58, BodyFatPercentage: 24,
	}
	p = ProfileFromAccount(a)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "Female", p.Gender)
	require.NotNil(t, p.Age)
	assert.Equal(t, 36, *p.Age)
	assert.InDelta(t, 24.0, *p.BodyFatPercentage, 0.0001)

	a.PersonalInfo.Age = 40
	assert.Equal(t, 36, *p.Age, "profile must not alias the account")
}
