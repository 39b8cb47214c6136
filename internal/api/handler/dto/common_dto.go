package dto

// ErrorResponse is the body of every REST error.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Customer not found"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
