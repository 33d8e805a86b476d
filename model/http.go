package model

type ClassifyRequestBody struct {
	Notes []uint8 `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
