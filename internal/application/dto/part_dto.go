package dto

// CreatePartRequest alta de parte en el catálogo.
type CreatePartRequest struct {
	PN                   string `json:"pn"`
	Description          string `json:"description"`
	ATAChapter           string `json:"ataChapter"`
	Manufacturer         string `json:"manufacturer"`
	Condition            string `json:"condition"`
	UnitOfMeasure        string `json:"unitOfMeasure"`
	TraceabilityRequired bool   `json:"traceabilityRequired"`
	ShelfLife            bool   `json:"shelfLife"`
	Hazardous            bool   `json:"hazardous"`
	AlternatePN          string `json:"alternatePn"`
	SupersededPN         string `json:"supersededPn"`
}

// UpdatePartRequest merge parcial: solo los campos presentes se aplican.
type UpdatePartRequest struct {
	PN                   *string `json:"pn"`
	Description          *string `json:"description"`
	ATAChapter           *string `json:"ataChapter"`
	Manufacturer         *string `json:"manufacturer"`
	Condition            *string `json:"condition"`
	UnitOfMeasure        *string `json:"unitOfMeasure"`
	TraceabilityRequired *bool   `json:"traceabilityRequired"`
	ShelfLife            *bool   `json:"shelfLife"`
	Hazardous            *bool   `json:"hazardous"`
	AlternatePN          *string `json:"alternatePn"`
	SupersededPN         *string `json:"supersededPn"`
}
