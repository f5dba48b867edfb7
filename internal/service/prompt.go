package service

import (
	"fmt"
	"strings"

	"github.com/nutriplan/backend/internal/types"
)

const dietPlanTemplate = `You are a professional nutritionist and dietitian. Generate a personalized diet plan as a JSON object.

User Profile:
- Name: %s
- Age: %d years
- Goal: %s
- Height: %g cm
- Current Weight: %g kg
- Target Weight: %g kg
- Health Conditions: %s
- Region: %s
- Cuisine Preference: %s
- Allergies: %s

Calculate appropriate daily calorie intake based on the user's goal and body metrics.

Requirements:
1. Generate a SINGLE representative daily plan
2. Total daily calories should be appropriate for the user's goal
3. Include breakfast, lunch, and dinner with specific items
4. All food items must comply with the cuisine preference and avoid all listed allergens
5. Use regional cuisine from %s
6. Consider the listed health conditions when selecting foods
7. Include 2-3 healthy snacks

Output Format (valid JSON only, no markdown):
{
  "daily_plan": {
    "total_calories": <number>,
    "meals": {
      "breakfast": {"items": ["item1", "item2"], "calories": <number>},
      "lunch": {"items": ["item1", "item2", "item3"], "calories": <number>},
      "dinner": {"items": ["item1", "item2"], "calories": <number>}
    },
    "snacks": ["snack1", "snack2"]
  }
}

Important:
- Return ONLY valid JSON, no additional text or explanation
- Make the diet plan healthy, balanced, and appropriate for the goal
- Ensure item names are clear and specific`

const nutritionTemplate = `You are a professional nutritionist. Analyze the nutritional content of the following food items.

Food Items:
%s

Provide accurate nutritional breakdown including calories, protein, carbohydrates, and fats.

Output Format (valid JSON only, no markdown):
{
  "meal_nutrition": {
    "total_calories": <number>,
    "macros": {
      "protein": <number in grams>,
      "carbs": <number in grams>,
      "fat": <number in grams>
    },
    "breakdown": [
      {
        "item": "<name> (<quantity>)",
        "calories": <number>,
        "protein": <number in grams>,
        "carbs": <number in grams>,
        "fat": <number in grams>
      }
    ]
  }
}

Important:
- Return ONLY valid JSON, no additional text or explanation
- Provide realistic and accurate nutritional values
- Ensure the breakdown matches the individual food items`

// BuildDietPlanPrompt renders the diet plan prompt for a validated request.
// Pure and deterministic: the same request always yields the same prompt.
func BuildDietPlanPrompt(req *types.DietPlanRequest) string {
	return fmt.Sprintf(dietPlanTemplate,
		req.Name,
		req.Age,
		req.Goal,
		req.Height,
		req.CurrentWeight,
		req.TargetWeight,
		joinOrNone(req.HealthConditions),
		req.Region,
		req.CuisinePreference,
		joinOrNone(req.Allergies),
		req.Region,
	)
}

// BuildNutritionPrompt renders the nutrition analysis prompt, listing each
// food item with its quantity.
func BuildNutritionPrompt(req *types.NutritionRequest) string {
	var foods strings.Builder
	for i, f := range req.Foods {
		if i > 0 {
			foods.WriteString("\n")
		}
		foods.WriteString(fmt.Sprintf("- %s: %s", f.Item, f.Quantity))
	}
	return fmt.Sprintf(nutritionTemplate, foods.String())
}

// joinOrNone renders list fields the model can act on. Empty lists become
// the literal "None" so the prompt never carries empty artifacts.
func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
