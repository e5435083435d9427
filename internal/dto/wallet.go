package dto

import "time"

type BalanceResponseDTO struct {
	Currency string  `json:"currency" example:"USD"`
	Balance  float64 `json:"balance" example:"500.5"`
}

type MovementResponseDTO struct {
	UUID      string    `json:"uuid" example:"7d8fd7d5-6c53-4f4a-9e8f-2b8f3c1f9a11"`
	Type      string    `json:"type" example:"credit"`
	Amount    float64   `json:"amount" example:"100"`
	Rate      float64   `json:"rate,omitempty" example:"6.96"`
	Status    string    `json:"status" example:"committed"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-14T16:09:57+03:00"`
}

type ConvertResponseDTO struct {
	Amount float64 `json:"amount" example:"696"`
	Rate   float64 `json:"rate" example:"6.96"`
}
