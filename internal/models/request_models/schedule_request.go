package request_models

type ScheduleRequest struct {
	Location       string   `json:"location" binding:"required"`
	Days           int      `json:"days" binding:"required,min=1,max=14"`
	Style          string   `json:"style"`
	Companions     []string `json:"companions"`
	Budget         int      `json:"budget"`
	SelectedPlaces []string `json:"selected_places"`
	// YYYY-MM-DD
	TravelDate string `json:"travel_date"`
	Count      int    `json:"count"`
}
