package request_models

type RecommendRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Dates       []string `json:"dates"`
	Companions  []string `json:"companions"`
	Styles      []string `json:"styles"`
	HasPet      bool     `json:"has_pet"`
	Budget      int      `json:"budget"`

	SelectedPlaces []string `json:"selected_places"`

	// Free-text refinement, e.g. "바다가 보이는 곳".
	Query string `json:"query"`

	// Restaurant filter: 한식, 양식, 중식, 일식, 카페, 패스트푸드.
	FoodCategories []string `json:"food_categories"`
}

type SelectionRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Places      []string `json:"places" binding:"required"`
}
