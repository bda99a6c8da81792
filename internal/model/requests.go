package model

// Request payloads use the frontend's Spanish field names. Price fields bind
// as raw values because the frontend sends them as JSON numbers or numeric
// strings; the handlers parse them into decimals so currency never passes
// through a float. Pointer fields distinguish absent from zero.

// ProductoRequest is the create/update payload for gym shop articles
type ProductoRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      any     `json:"precio"`
	Stock       *int    `json:"stock"`
	ImagenURL   *string `json:"imagen_url"`
}

// ClaseRequest is the create/update payload for scheduled classes
type ClaseRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Instructor  string  `json:"instructor"`
	Horario     string  `json:"horario"`
	Duracion    *int    `json:"duracion"`
	CupoMaximo  *int    `json:"cupo_maximo"`
}

// PlanRequest is the create/update payload for membership plans
type PlanRequest struct {
	Nombre       string  `json:"nombre"`
	Descripcion  *string `json:"descripcion"`
	Precio       any     `json:"precio"`
	DuracionDias *int    `json:"duracion_dias"`
}

// LoginRequest carries the ID token issued by the external identity provider
type LoginRequest struct {
	IDToken string `json:"idToken"`
}
