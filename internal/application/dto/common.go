package dto

// Envelope es la forma común de todas las respuestas HTTP.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"statusCode"`
	// Code identificador estable del error (VALIDATION, NOT_FOUND, ...). Vacío en éxito.
	Code string `json:"code,omitempty"`
}

// ErrorResponse cuerpo de error HTTP (documentación swagger).
type ErrorResponse struct {
	Success    bool   `json:"success" example:"false"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
}

// Ref referencia resuelta a otro documento.
type Ref struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
