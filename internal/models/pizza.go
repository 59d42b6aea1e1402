package models

// Pizza categories used by the catalog
const (
	CategoryVeg     = "veg"
	CategoryNonVeg  = "non-veg"
	CategorySpecial = "special"
)

// Pizza represents a catalog entry. The catalog is read-only reference data seeded
// at startup; orders snapshot name and cost instead of referencing it live.
type Pizza struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"not null"`
	Cost      float64 `json:"cost"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}
