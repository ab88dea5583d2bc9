package entity

import "time"

// Condiciones de parte aeronáutica (código estándar del mercado).
const (
	ConditionNew = "NEW" // nueva de fábrica
	ConditionOH  = "OH"  // overhauled
	ConditionSV  = "SV"  // serviceable
	ConditionAR  = "AR"  // as removed
	ConditionNS  = "NS"  // new surplus
	ConditionREP = "REP" // reparada
)

// Unidades de medida.
const (
	UnitEA  = "EA"
	UnitLB  = "LB"
	UnitGAL = "GAL"
	UnitFT  = "FT"
	UnitSET = "SET"
	UnitKIT = "KIT"
)

// Part representa una parte del catálogo (identidad inmutable, atributos editables).
// La eliminación no hace cascada: las referencias huérfanas se toleran.
type Part struct {
	ID                   string    `json:"id"`
	PN                   string    `json:"pn"` // part number
	Description          string    `json:"description"`
	ATAChapter           string    `json:"ataChapter"`
	Manufacturer         string    `json:"manufacturer"`
	Condition            string    `json:"condition"`
	UnitOfMeasure        string    `json:"unitOfMeasure"`
	TraceabilityRequired bool      `json:"traceabilityRequired"`
	ShelfLife            bool      `json:"shelfLife"`
	Hazardous            bool      `json:"hazardous"`
	AlternatePN          string    `json:"alternatePn,omitempty"`
	SupersededPN         string    `json:"supersededPn,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
