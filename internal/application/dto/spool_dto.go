package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Las fechas viajan como "YYYY-MM-DD" (igual que en el CSV) para que el
// round-trip exportar/importar sea sin pérdidas.
const DateLayout = "2006-01-02"

// CreateSpoolRequest entrada para crear un carrete.
type CreateSpoolRequest struct {
	Name            string           `json:"name"`
	Material        string           `json:"material"`
	ColorName       string           `json:"colorName"`
	ColorCode       string           `json:"colorCode"`
	Manufacturer    string           `json:"manufacturer"`
	Diameter        *decimal.Decimal `json:"diameter"`
	PrintTemp       *int             `json:"printTemp"`
	TotalWeight     decimal.Decimal  `json:"totalWeight"`
	RemainingPct    decimal.Decimal  `json:"remainingPercentage"`
	PurchaseDate    *string          `json:"purchaseDate"`
	PurchasePrice   *decimal.Decimal `json:"purchasePrice"`
	Status          string           `json:"status"`
	SpoolType       string           `json:"spoolType"`
	DryerCount      int              `json:"dryerCount"`
	LastDryingDate  *string          `json:"lastDryingDate"`
	StorageLocation string           `json:"storageLocation"`
}

// UpdateSpoolRequest entrada para actualización parcial: solo los campos
// presentes se escriben. Se usa tanto en el patch individual como en el
// broadcast del batch (un mismo patch aplicado a N filas).
type UpdateSpoolRequest struct {
	Name            *string          `json:"name"`
	Material        *string          `json:"material"`
	ColorName       *string          `json:"colorName"`
	ColorCode       *string          `json:"colorCode"`
	Manufacturer    *string          `json:"manufacturer"`
	Diameter        *decimal.Decimal `json:"diameter"`
	PrintTemp       *int             `json:"printTemp"`
	TotalWeight     *decimal.Decimal `json:"totalWeight"`
	RemainingPct    *decimal.Decimal `json:"remainingPercentage"`
	PurchaseDate    *string          `json:"purchaseDate"`
	PurchasePrice   *decimal.Decimal `json:"purchasePrice"`
	Status          *string          `json:"status"`
	SpoolType       *string          `json:"spoolType"`
	DryerCount      *int             `json:"dryerCount"`
	LastDryingDate  *string          `json:"lastDryingDate"`
	StorageLocation *string          `json:"storageLocation"`
}

// SpoolResponse salida de un carrete.
type SpoolResponse struct {
	ID              int64            `json:"id"`
	OwnerID         string           `json:"ownerId"`
	Name            string           `json:"name"`
	Material        string           `json:"material"`
	ColorName       string           `json:"colorName,omitempty"`
	ColorCode       string           `json:"colorCode,omitempty"`
	Manufacturer    string           `json:"manufacturer,omitempty"`
	Diameter        *decimal.Decimal `json:"diameter,omitempty"`
	PrintTemp       *int             `json:"printTemp,omitempty"`
	TotalWeight     decimal.Decimal  `json:"totalWeight"`
	RemainingPct    decimal.Decimal  `json:"remainingPercentage"`
	PurchaseDate    *string          `json:"purchaseDate,omitempty"`
	PurchasePrice   *decimal.Decimal `json:"purchasePrice,omitempty"`
	Status          string           `json:"status,omitempty"`
	SpoolType       string           `json:"spoolType,omitempty"`
	DryerCount      int              `json:"dryerCount"`
	LastDryingDate  *string          `json:"lastDryingDate,omitempty"`
	StorageLocation string           `json:"storageLocation,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// SpoolListResponse lista paginada de carretes.
type SpoolListResponse struct {
	Items []SpoolResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// BatchUpdateRequest patch broadcast: un solo objeto de actualización aplicado
// a cada id de la lista. Los ids pueden venir como números o strings numéricos.
type BatchUpdateRequest struct {
	IDs     []any               `json:"ids"`
	Updates *UpdateSpoolRequest `json:"updates"`
}

// BatchUpdateResponse cuenta de filas realmente actualizadas (puede ser menor
// que la cantidad de ids enviados).
type BatchUpdateResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// BatchDeleteRequest borrado por lote.
type BatchDeleteRequest struct {
	IDs []any `json:"ids"`
}

// BatchDeleteResponse cuenta de filas realmente borradas.
type BatchDeleteResponse struct {
	DeletedCount int `json:"deletedCount"`
}

// ImportCSVRequest cuerpo de importación CSV.
type ImportCSVRequest struct {
	CSVData string `json:"csvData"`
}

// ImportJSONRequest cuerpo de importación JSON (debe ser un array).
type ImportJSONRequest struct {
	JSONData json.RawMessage `json:"jsonData"`
}

// ImportOutcomeResponse resultado efímero de una importación: la suma de los
// tres contadores es el número de filas de datos no vacías procesadas.
type ImportOutcomeResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// PublicOwner identidad mínima del dueño en la vista pública.
type PublicOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublicSpoolsResponse vista pública filtrada del inventario de un dueño.
type PublicSpoolsResponse struct {
	Spools []SpoolResponse `json:"spools"`
	Owner  PublicOwner     `json:"owner"`
}
