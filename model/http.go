package model

type ParseRequestBody struct {
	RTTTL  string `json:"rtttl"`
	Strict bool   `json:"strict"`
}

type ParseResponse struct {
	Title         string          `json:"title"`
	Notes         []ConvertedNote `json:"notes"`
	TotalDuration float64         `json:"total_duration"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
	Kind  string `json:"kind,omitempty"`
}
