package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const notAvailable = "N/A"

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func intOrNA(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}

func floatOrNA(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return formatNumber(*v)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// RenderProfile writes the Home screen.
func RenderProfile(w io.Writer, p *Profile) {
	fmt.Fprintln(w, "== Home - User Health Profile ==")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Personal Details")
	fmt.Fprintf(w, "- Name: %s\n", orNA(p.Name))
	fmt.Fprintf(w, "- Email: %s\n", orNA(p.Email))
	fmt.Fprintf(w, "- Gender: %s\n", orNA(capitalize(p.Gender)))
	fmt.Fprintf(w, "- Age: %s years\n", intOrNA(p.Age))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Health Metrics")
	fmt.Fprintf(w, "- Height: %s cm\n", floatOrNA(p.HeightCM))
	fmt.Fprintf(w, "- Weight: %s kg\n", floatOrNA(p.WeightKG))
	fmt.Fprintf(w, "- Body Fat Percentage (BFP): %s %%\n", floatOrNA(p.BodyFatPercentage))
}

// RenderDietPlan writes the Diet plans screen.
func RenderDietPlan(w io.Writer, d *DietPlan) {
	fmt.Fprintln(w, "== Your AI-Generated Diet Plan ==")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Goal and Preferences")
	fmt.Fprintf(w, "- Goal: %s\n", orNA(d.Goal))
	fmt.Fprintf(w, "- Diet Preference: %s\n", orNA(d.DietPreference))
	fmt.Fprintln(w)

	n := d.DailyNutrition
	fmt.Fprintln(w, "Daily Nutrition Goals")
	fmt.Fprintf(w, "- Calories: %s kcal\n", formatNumber(n.Calories))
	fmt.Fprintf(w, "- Carbs: %s g\n", formatNumber(n.Carbs))
	fmt.Fprintf(w, "- Proteins: %s g\n", formatNumber(n.Protein))
	fmt.Fprintf(w, "- Fats: %s g\n", formatNumber(n.Fats))
	fmt.Fprintf(w, "- Water Intake: %s L\n", formatNumber(n.WaterIntake))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Calorie Distribution")
	for _, c := range d.CalorieDistribution {
		fmt.Fprintf(w, "- %s: %s\n", c.Category, orNA(string(c.Percentage)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Weekly Workout Routine")
	for _, r := range d.WorkoutRoutine {
		fmt.Fprintf(w, "- %s: %s\n", r.Day, orNA(r.Routine))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Weekly Meal Plans")
	for _, day := range d.MealPlans {
		fmt.Fprintf(w, "\n# %s\n", day.Day)
		fmt.Fprintf(w, "Total Calories: %s kcal\n", formatNumber(day.TotalCalories))
		writeMacros(w, day.Macronutrients)
		for _, meal := range day.Meals {
			fmt.Fprintf(w, "* %s\n", orNA(capitalize(meal.MealType)))
			for _, item := range meal.Items {
				fmt.Fprintf(w, "  - %s (%s kcal)\n", item.Name, formatNumber(item.Calories))
				fmt.Fprintf(w, "    Ingredients: %s\n", strings.Join(item.Ingredients, ", "))
			}
		}
		fmt.Fprintln(w, "---")
	}
}

// RenderMealLog writes the Meal logs screen.
func RenderMealLog(w io.Writer, l *MealLog) {
	fmt.Fprintln(w, "== Meal Logs ==")
	if len(l.Meals) == 0 {
		fmt.Fprintln(w, MsgNoMeals)
		return
	}
	for i, meal := range l.Meals {
		mealType := meal.MealType
		if mealType == "" {
			mealType = "Unknown"
		}
		fmt.Fprintf(w, "\nMeal %d: %s\n", i+1, capitalize(mealType))
		fmt.Fprintf(w, "Total Calories: %s kcal\n", formatNumber(meal.TotalCalories))
		writeMacros(w, meal.Macronutrients)
		fmt.Fprintln(w, "Items:")
		for _, item := range meal.Items {
			fmt.Fprintf(w, "- %s\n", item.Name)
			fmt.Fprintf(w, "  Calories: %s kcal\n", formatNumber(item.Calories))
			fmt.Fprintf(w, "  Carbs: %s g\n", formatNumber(item.Carbs))
			fmt.Fprintf(w, "  Proteins: %s g\n", formatNumber(item.Proteins))
			fmt.Fprintf(w, "  Fats: %s g\n", formatNumber(item.Fats))
		}
	}
}

func writeMacros(w io.Writer, m Macronutrients) {
	fmt.Fprintln(w, "Macronutrients:")
	fmt.Fprintf(w, "- Carbohydrates: %s g\n", formatNumber(m.Carbohydrates))
	fmt.Fprintf(w, "- Proteins: %s g\n", formatNumber(m.Proteins))
	fmt.Fprintf(w, "- Fats: %s g\n", formatNumber(m.Fats))
}

// Messages shown when a Reader reports ErrNotFound.
const (
	MsgNoDietPlan   = "No diet plan found."
	MsgNoMeals      = "No meals logged yet."
	MsgUserNotFound = "User not found in database."
)
