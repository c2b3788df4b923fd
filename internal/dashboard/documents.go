// Package dashboard models the read-only documents shown on the main
// screens and renders them as text.
//
// Documents are produced by an external service. They reach the dashboard
// through a Reader, backed either by the document store or by the remote
// API, and are validated once at that boundary; rendering code can then rely
// on the shape and only has to deal with zero values.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrNotFound is returned by a Reader when the user has no such document.
var ErrNotFound = errors.New("document not found")

// DietPlanResponseType marks diet plan documents in the diets collection.
const DietPlanResponseType = "diet_plan"

// Reader fetches the documents for one user id.
type Reader interface {
	Profile(ctx context.Context, userID string) (*Profile, error)
	DietPlan(ctx context.Context, userID string) (*DietPlan, error)
	MealLog(ctx context.Context, userID string) (*MealLog, error)
}

// Profile is the Home screen's view of an account.
type Profile struct {
	Email             string   `json:"email,omitempty"`
	Name              string   `json:"name"`
	Age               *int     `json:"age" validate:"omitnil,gte=0"`
	Gender            string   `json:"gender"`
	HeightCM          *float64 `json:"height" validate:"omitnil,gte=0"`
	WeightKG          *float64 `json:"weight" validate:"omitnil,gte=0"`
	BodyFatPercentage *float64 `json:"bfp" validate:"omitnil,gte=0,lte=100"`
}

// UnmarshalJSON accepts the age as any whole JSON number, so 30 and 30.0
// both decode.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	var raw struct {
		plain
		Age *float64 `json:"age"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Profile(raw.plain)
	p.Age = nil
	if raw.Age != nil {
		if *raw.Age != math.Trunc(*raw.Age) || math.IsInf(*raw.Age, 0) {
			return fmt.Errorf("%w: age %v is not a whole number", ErrMalformed, *raw.Age)
		}
		age := int(*raw.Age)
		p.Age = &age
	}
	return nil
}

type DietPlan struct {
	Goal                string         `bson:"goal" json:"goal"`
	DietPreference      string         `bson:"dietPreference" json:"dietPreference"`
	DailyNutrition      DailyNutrition `bson:"dailyNutrition" json:"dailyNutrition"`
	CalorieDistribution []CalorieShare `bson:"calorieDistribution" json:"calorieDistribution" validate:"dive"`
	WorkoutRoutine      []WorkoutDay   `bson:"workoutRoutine" json:"workoutRoutine" validate:"dive"`
	MealPlans           []DayMealPlan  `bson:"mealPlans" json:"mealPlans" validate:"dive"`
}

type DailyNutrition struct {
	Calories    float64 `bson:"calories" json:"calories" validate:"gte=0"`
	Carbs       float64 `bson:"carbs" json:"carbs" validate:"gte=0"`
	Protein     float64 `bson:"protein" json:"protein" validate:"gte=0"`
	Fats        float64 `bson:"fats" json:"fats" validate:"gte=0"`
	WaterIntake float64 `bson:"waterIntake" json:"waterIntake" validate:"gte=0"`
}

// CalorieShare is one slice of the calorie distribution.
type CalorieShare struct {
	Category   string     `bson:"category" json:"category" validate:"required"`
	Percentage Percentage `bson:"percentage" json:"percentage"`
}

type WorkoutDay struct {
	Day     string `bson:"day" json:"day" validate:"required"`
	Routine string `bson:"routine" json:"routine"`
}

type Macronutrients struct {
	Carbohydrates float64 `bson:"carbohydrates" json:"carbohydrates" validate:"gte=0"`
	Proteins      float64 `bson:"proteins" json:"proteins" validate:"gte=0"`
	Fats          float64 `bson:"fats" json:"fats" validate:"gte=0"`
}

type DayMealPlan struct {
	Day            string         `bson:"day" json:"day" validate:"required"`
	TotalCalories  float64        `bson:"totalCalories" json:"totalCalories" validate:"gte=0"`
	Macronutrients Macronutrients `bson:"macronutrients" json:"macronutrients"`
	Meals          []PlannedMeal  `bson:"meals" json:"meals" validate:"dive"`
}

type PlannedMeal struct {
	MealType string        `bson:"mealType" json:"mealType"`
	Items    []PlannedItem `bson:"items" json:"items" validate:"dive"`
}

type PlannedItem struct {
	Name        string   `bson:"name" json:"name" validate:"required"`
	Calories    float64  `bson:"calories" json:"calories" validate:"gte=0"`
	Ingredients []string `bson:"ingredients" json:"ingredients"`
}

// MealLog is the list of meals a user logged, oldest first.
type MealLog struct {
	Meals []LoggedMeal `bson:"meal_log" json:"meal_log" validate:"dive"`
}

type LoggedMeal struct {
	MealType       string         `bson:"mealType" json:"mealType"`
	TotalCalories  float64        `bson:"totalCalories" json:"totalCalories" validate:"gte=0"`
	Macronutrients Macronutrients `bson:"macronutrients" json:"macronutrients"`
	Items          []LoggedItem   `bson:"items" json:"items" validate:"dive"`
}

type LoggedItem struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Calories float64 `bson:"calories" json:"calories" validate:"gte=0"`
	Carbs    float64 `bson:"carbs" json:"carbs" validate:"gte=0"`
	Proteins float64 `bson:"proteins" json:"proteins" validate:"gte=0"`
	Fats     float64 `bson:"fats" json:"fats" validate:"gte=0"`
}
