package types

// DietPlanRequest represents the request body for generating a diet plan
type DietPlanRequest struct {
	Name              string   `json:"name" binding:"required"`
	Age               int      `json:"age" binding:"required,gt=0"`
	Goal              string   `json:"goal" binding:"required"`
	Height            float64  `json:"height" binding:"required,gt=0"`
	CurrentWeight     float64  `json:"current_weight" binding:"required,gt=0"`
	TargetWeight      float64  `json:"target_weight" binding:"required,gt=0"`
	HealthConditions  []string `json:"health_conditions"`
	Region            string   `json:"region" binding:"required"`
	CuisinePreference string   `json:"cuisine_preference" binding:"required"`
	Allergies         []string `json:"allergies"`
}

// FoodItem represents a single food item with a free-form quantity
type FoodItem struct {
	Item     string `json:"item" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// NutritionRequest represents the request body for a nutrition breakdown
type NutritionRequest struct {
	Foods []FoodItem `json:"foods" binding:"required,min=1,dive"`
}
