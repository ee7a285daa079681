package response_models

type Place struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Address     string  `json:"address,omitempty"`
	Telephone   string  `json:"telephone,omitempty"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
	NaverURL    string  `json:"naver_url,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
}

type RecommendResponse struct {
	Places []Place `json:"places"`
}
