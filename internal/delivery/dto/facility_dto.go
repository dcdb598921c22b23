package dto

// Response DTOs

type ReviewResponse struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

type QueueStatusResponse struct {
	Tier  string `json:"tier"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type FacilityResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Address      string              `json:"address"`
	QueueCount   int                 `json:"queueCount"`
	Rating       float64             `json:"rating"`
	TotalReviews int                 `json:"totalReviews"`
	Reviews      []ReviewResponse    `json:"reviews"`
	Services     []ServiceResponse   `json:"services"`
	QueueStatus  QueueStatusResponse `json:"queueStatus"`
	PriceRange   string              `json:"priceRange"`
}
