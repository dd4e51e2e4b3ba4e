package benefit

import (
	"time"

	"github.com/google/uuid"
)

// Program is a catalog entry describing an assistance scheme. Immutable
// reference data, seeded once and read-only during claim processing.
type Program struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	MaxAmount         float64   `json:"max_amount"`
	EligibleRegions   []string  `json:"eligible_regions"`
	EligibleWorkTypes []string  `json:"eligible_work_types"`
	RequiredDocuments []string  `json:"required_documents"`
	ProcessingTime    string    `json:"processing_time"`
	CreatedAt         time.Time `json:"created_at"`
}

// Covers reports whether the program accepts the given region and work
// type. Both dimensions must qualify.
func (p *Program) Covers(region, workType string) bool {
	return contains(p.EligibleRegions, region) && contains(p.EligibleWorkTypes, workType)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
