package dto

// SharingRuleDTO una regla de compartición: materialId nil es la regla global.
type SharingRuleDTO struct {
	MaterialID *int64 `json:"materialId"`
	IsPublic   bool   `json:"isPublic"`
}

// PutSharingRequest reemplaza el conjunto completo de reglas del dueño.
type PutSharingRequest struct {
	Rules []SharingRuleDTO `json:"rules"`
}

// SharingRulesResponse reglas vigentes del dueño.
type SharingRulesResponse struct {
	Rules []SharingRuleDTO `json:"rules"`
}
