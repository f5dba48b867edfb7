package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/backend/internal/types"
)

const validPlanJSON = `{
  "daily_plan": {
    "total_calories": 1800,
    "meals": {
      "breakfast": {"items": ["Idli", "Sambar"], "calories": 400},
      "lunch": {"items": ["Brown rice", "Rasam", "Vegetable curry"], "calories": 700},
      "dinner": {"items": ["Chapathi", "Paneer curry"], "calories": 500}
    },
    "snacks": ["Buttermilk", "Roasted chana"]
  }
}`

func TestResponseParser_Parse(t *testing.T) {
	parser := NewResponseParser()

	t.Run("should decode bare JSON", func(t *testing.T) {
		var resp types.DietPlanResponse
		require.NoError(t, parser.Parse(validPlanJSON, &resp))
		assert.Equal(t, float64(1800), resp.DailyPlan.TotalCalories)
		assert.Equal(t, []string{"Idli", "Sambar"}, resp.DailyPlan.Meals.Breakfast.Items)
	})

	t.Run("should strip json code fence", func(t *testing.T) {
		raw := "```json\n" + validPlanJSON + "\n```"
		var resp types.DietPlanResponse
		require.NoError(t, parser.Parse(raw, &resp))
		assert.Equal(t, float64(1800), resp.DailyPlan.TotalCalories)
	})

	t.Run("should strip bare code fence", func(t *testing.T) {
		raw := "```\n" + validPlanJSON + "\n```"
		var resp types.DietPlanResponse
		require.NoError(t, parser.Parse(raw, &resp))
		assert.Equal(t, float64(500), resp.DailyPlan.Meals.Dinner.Calories)
	})

	t.Run("should tolerate surrounding prose", func(t *testing.T) {
		raw := "Sure! Here is your personalized plan:\n" + validPlanJSON + "\nEnjoy your meals."
		var resp types.DietPlanResponse
		require.NoError(t, parser.Parse(raw, &resp))
		assert.Len(t, resp.DailyPlan.Snacks, 2)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		raw := "```json\n" + validPlanJSON + "\n```"
		var first, second types.DietPlanResponse
		require.NoError(t, parser.Parse(raw, &first))
		require.NoError(t, parser.Parse(raw, &second))
		assert.Equal(t, first, second)
	})

	t.Run("should return ParseError when no block is decodable", func(t *testing.T) {
		var resp types.DietPlanResponse
		err := parser.Parse("I am sorry, I cannot help with that.", &resp)

		require.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
		var upstreamErr *UpstreamError
		assert.NotErrorAs(t, err, &upstreamErr)
	})

	t.Run("should return ParseError on malformed JSON block", func(t *testing.T) {
		var resp types.DietPlanResponse
		err := parser.Parse(`{"daily_plan": {`, &resp)

		require.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("should decode nutrition shape", func(t *testing.T) {
		raw := `{
  "meal_nutrition": {
    "total_calories": 480,
    "macros": {"protein": 14.2, "carbs": 88.0, "fat": 7.5},
    "breakdown": [
      {"item": "Chapathi (4 pieces)", "calories": 480, "protein": 14.2, "carbs": 88.0, "fat": 7.5}
    ]
  }
}`
		var resp types.NutritionBreakdownResponse
		require.NoError(t, parser.Parse(raw, &resp))
		require.Len(t, resp.MealNutrition.Breakdown, 1)
		assert.Equal(t, "Chapathi (4 pieces)", resp.MealNutrition.Breakdown[0].Item)
		assert.Equal(t, 14.2, resp.MealNutrition.Macros.Protein)
	})
}

func TestExtractors(t *testing.T) {
	t.Run("fence extractor prefers json fence", func(t *testing.T) {
		block, ok := fenceExtractor{}.Extract("prose\n```json\n{\"a\":1}\n```\nmore")
		require.True(t, ok)
		assert.Equal(t, `{"a":1}`, block)
	})

	t.Run("fence extractor misses unfenced text", func(t *testing.T) {
		_, ok := fenceExtractor{}.Extract(`{"a":1}`)
		assert.False(t, ok)
	})

	t.Run("brace extractor spans first to last brace", func(t *testing.T) {
		block, ok := braceExtractor{}.Extract(`noise {"a":{"b":2}} trailing`)
		require.True(t, ok)
		assert.Equal(t, `{"a":{"b":2}}`, block)
	})

	t.Run("brace extractor misses braceless text", func(t *testing.T) {
		_, ok := braceExtractor{}.Extract("no json here")
		assert.False(t, ok)
	})
}
