package dto

// CreateCatalogItemRequest entrada para crear un valor de catálogo.
// Code solo aplica a colores.
type CreateCatalogItemRequest struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	SortOrder int    `json:"sortOrder"`
}

// UpdateCatalogItemRequest actualización parcial de un valor de catálogo.
type UpdateCatalogItemRequest struct {
	Name      *string `json:"name"`
	Code      *string `json:"code"`
	SortOrder *int    `json:"sortOrder"`
}

// CatalogItemResponse salida de un valor de catálogo.
type CatalogItemResponse struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

// CatalogListResponse lista de un catálogo, ordenada por sortOrder y nombre.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
}
