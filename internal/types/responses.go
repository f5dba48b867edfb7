package types

// MealItems holds the food items and calorie estimate for one meal
type MealItems struct {
	Items    []string `json:"items"`
	Calories float64  `json:"calories"`
}

// Meals groups the three meals of a daily plan
type Meals struct {
	Breakfast MealItems `json:"breakfast"`
	Lunch     MealItems `json:"lunch"`
	Dinner    MealItems `json:"dinner"`
}

// DailyPlan represents a single representative day of eating
type DailyPlan struct {
	TotalCalories float64  `json:"total_calories"`
	Meals         Meals    `json:"meals"`
	Snacks        []string `json:"snacks"`
}

// DietPlanResponse is the response body for diet plan generation
type DietPlanResponse struct {
	DailyPlan DailyPlan `json:"daily_plan"`
}

// MacroNutrients holds the macronutrient totals in grams
type MacroNutrients struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// NutritionBreakdown is the per-item nutritional estimate
type NutritionBreakdown struct {
	Item     string  `json:"item"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealNutrition aggregates totals, macros and the per-item breakdown
type MealNutrition struct {
	TotalCalories float64              `json:"total_calories"`
	Macros        MacroNutrients       `json:"macros"`
	Breakdown     []NutritionBreakdown `json:"breakdown"`
}

// NutritionBreakdownResponse is the response body for nutrition analysis
type NutritionBreakdownResponse struct {
	MealNutrition MealNutrition `json:"meal_nutrition"`
}

// FieldError describes a single violated field in a request body
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for all failed requests
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
