package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/internal/types"
)

// DietService runs the validate-prompt-call-parse pipeline for both
// endpoints. It holds no per-request state; every request flows through in
// local variables.
type DietService struct {
	gen    Generator
	parser *ResponseParser
	logger zerolog.Logger
}

// NewDietService creates a DietService backed by the given generator.
func NewDietService(gen Generator, logger zerolog.Logger) *DietService {
	return &DietService{
		gen:    gen,
		parser: NewResponseParser(),
		logger: logger.With().Str("component", "diet_service").Logger(),
	}
}

// GenerateDietPlan builds the diet plan prompt, performs one upstream call
// and decodes the reply. Parsed numbers are trusted as-is; no cross-check of
// macro arithmetic is performed.
func (s *DietService) GenerateDietPlan(ctx context.Context, req *types.DietPlanRequest) (*types.DietPlanResponse, error) {
	s.logger.Info().Str("user", req.Name).Msg("generating diet plan")

	raw, err := s.gen.Generate(ctx, BuildDietPlanPrompt(req))
	if err != nil {
		return nil, err
	}

	var resp types.DietPlanResponse
	if err := s.parser.Parse(raw, &resp); err != nil {
		s.logger.Error().Err(err).Msg("diet plan response not parseable")
		return nil, err
	}

	s.logger.Info().Float64("total_calories", resp.DailyPlan.TotalCalories).Msg("diet plan generated")
	return &resp, nil
}

// NutritionBreakdown estimates calories and macros for a list of foods via
// one upstream call.
func (s *DietService) NutritionBreakdown(ctx context.Context, req *types.NutritionRequest) (*types.NutritionBreakdownResponse, error) {
	s.logger.Info().Int("foods", len(req.Foods)).Msg("analyzing nutrition")

	raw, err := s.gen.Generate(ctx, BuildNutritionPrompt(req))
	if err != nil {
		return nil, err
	}

	var resp types.NutritionBreakdownResponse
	if err := s.parser.Parse(raw, &resp); err != nil {
		s.logger.Error().Err(err).Msg("nutrition response not parseable")
		return nil, err
	}

	return &resp, nil
}
