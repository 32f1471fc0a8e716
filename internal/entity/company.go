package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
)

// OwnerScope is the visibility scope a company or job belongs to.
// ScopeID is the creating user for PERSONAL, the organization for
// ORGANIZATION, and uuid.Nil for SYSTEM.
type OwnerScope struct {
	Type    constants.ScopeType `json:"type"`
	ScopeID uuid.UUID           `json:"scope_id"`
}

// Company represents a resolved company for data transfer between layers.
type Company struct {
	ID        uuid.UUID  `json:"id"`
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name"`
	Sector    *string    `json:"sector,omitempty"`
	MarketCap *float64   `json:"market_cap,omitempty"`
	Scope     OwnerScope `json:"scope"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CompanyInput carries the attributes a row supplies when resolving a
// company. Symbol is matched case-insensitively; the mutable fields
// overwrite whatever an earlier resolution stored.
type CompanyInput struct {
	Symbol    string
	Name      string
	Sector    *string
	MarketCap *float64
	Scope     OwnerScope
}
