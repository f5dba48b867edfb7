package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/backend/internal/types"
)

// stubGenerator records prompts and returns a canned reply
type stubGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.last = prompt
	return g.reply, g.err
}

func TestDietService_GenerateDietPlan(t *testing.T) {
	t.Run("should decode upstream reply into a plan", func(t *testing.T) {
		gen := &stubGenerator{reply: validPlanJSON}
		svc := NewDietService(gen, zerolog.Nop())

		resp, err := svc.GenerateDietPlan(context.Background(), dietPlanRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, gen.calls)
		assert.Equal(t, float64(1800), resp.DailyPlan.TotalCalories)
		assert.Contains(t, gen.last, "Arjun")
	})

	t.Run("should propagate UpstreamError", func(t *testing.T) {
		gen := &stubGenerator{err: &UpstreamError{Err: assert.AnError}}
		svc := NewDietService(gen, zerolog.Nop())

		_, err := svc.GenerateDietPlan(context.Background(), dietPlanRequest())

		require.Error(t, err)
		var upstreamErr *UpstreamError
		assert.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("should surface ParseError on unusable reply", func(t *testing.T) {
		gen := &stubGenerator{reply: "I cannot produce a plan right now."}
		svc := NewDietService(gen, zerolog.Nop())

		_, err := svc.GenerateDietPlan(context.Background(), dietPlanRequest())

		require.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestDietService_NutritionBreakdown(t *testing.T) {
	req := &types.NutritionRequest{
		Foods: []types.FoodItem{{Item: "Chapathi", Quantity: "4 pieces"}},
	}

	t.Run("should decode upstream reply into a breakdown", func(t *testing.T) {
		gen := &stubGenerator{reply: `{
			"meal_nutrition": {
				"total_calories": 480,
				"macros": {"protein": 14.2, "carbs": 88, "fat": 7.5},
				"breakdown": [{"item": "Chapathi (4 pieces)", "calories": 480, "protein": 14.2, "carbs": 88, "fat": 7.5}]
			}
		}`}
		svc := NewDietService(gen, zerolog.Nop())

		resp, err := svc.NutritionBreakdown(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 1, gen.calls)
		require.Len(t, resp.MealNutrition.Breakdown, 1)
		assert.Equal(t, "Chapathi (4 pieces)", resp.MealNutrition.Breakdown[0].Item)
		assert.Contains(t, gen.last, "- Chapathi: 4 pieces")
	})

	t.Run("should surface ParseError on unusable reply", func(t *testing.T) {
		gen := &stubGenerator{reply: "no structured content"}
		svc := NewDietService(gen, zerolog.Nop())

		_, err := svc.NutritionBreakdown(context.Background(), req)

		require.Error(t, err)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
