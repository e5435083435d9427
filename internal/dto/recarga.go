package dto

type SolicitarRecargaRequestDTO struct {
	Currency    string  `json:"currency" example:"USD"`
	Type        string  `json:"type" example:"credit"`
	Amount      float64 `json:"amount,omitempty" example:"150.5"`
	Reference   string  `json:"reference,omitempty" example:"79927398713"`
	Description string  `json:"description,omitempty" example:"bank deposit slip 4411"`
}

type SolicitudResponseDTO struct {
	ID        int     `json:"id" example:"12"`
	UUID      string  `json:"uuid" example:"7d8fd7d5-6c53-4f4a-9e8f-2b8f3c1f9a11"`
	Type      string  `json:"type" example:"credit"`
	Amount    float64 `json:"amount,omitempty" example:"150.5"`
	State     string  `json:"state" example:"pendiente"`
	Motivo    string  `json:"motivo,omitempty" example:"deposit slip unreadable"`
	CreatedAt string  `json:"created_at" example:"2025-01-14T16:09:57+03:00"`
}

type VerificarRequestDTO struct {
	Amount float64 `json:"amount" example:"150.5"`
}

type RechazarRequestDTO struct {
	Motivo string `json:"motivo" example:"deposit slip unreadable"`
}

type RehabilitarRequestDTO struct {
	Observacion string `json:"observacion,omitempty" example:"re-uploaded slip"`
}
