package request_models

type ChatContext struct {
	Location   string `json:"location"`
	Days       int    `json:"days"`
	Budget     int    `json:"budget"`
	TravelDate string `json:"travel_date"`
}

type ChatRequest struct {
	Message        string       `json:"message" binding:"required"`
	ItineraryIndex int          `json:"itineraryIndex"`
	ItineraryText  string       `json:"itineraryText"`
	Context        *ChatContext `json:"context"`
}
