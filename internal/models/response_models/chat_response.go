package response_models

type ChatResponse struct {
	Reply            string `json:"reply"`
	UpdatedItinerary string `json:"updatedItinerary,omitempty"`
}
