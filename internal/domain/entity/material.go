package entity

import "time"

// Valid material categories.
const (
	CategoryCement = "cement"
	CategorySteel  = "steel"
	CategoryTiles  = "tiles"
	CategoryOther  = "other"
)

// ValidCategory reports whether s is one of the closed category set.
func ValidCategory(s string) bool {
	switch s {
	case CategoryCement, CategorySteel, CategoryTiles, CategoryOther:
		return true
	}
	return false
}

// Material is a shared catalog entry. There is no per-distributor ownership;
// any distributor or manufacturer may edit the catalog.
type Material struct {
	ID           string
	Name         string
	Category     string // cement, steel, tiles, other
	Manufacturer string
	Grade        string
	Type         string
	Description  string
	Unit         string // unit of measure, defaults to "piece"
	CreatedAt    time.Time
}
