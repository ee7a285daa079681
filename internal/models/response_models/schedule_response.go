package response_models

type ScheduleItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type BasePoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ScheduleResponse struct {
	Schedules []ScheduleItem `json:"schedules"`
	BasePoint *BasePoint     `json:"base_point,omitempty"`
}

// Schedule is one entry of the saved-trip listing.
type Schedule struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Dates string `json:"dates"`
}
