package benefit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeedPrograms is the sample catalog used for development and demos.
func SeedPrograms(now time.Time) []*Program {
	return []*Program{
		{
			ID:                uuid.New(),
			Name:              "Unemployment Insurance",
			Type:              "unemployment",
			Description:       "Financial support for workers who have lost their jobs through no fault of their own.",
			MaxAmount:         2000,
			EligibleRegions:   []string{"California", "New York", "Texas", "Florida"},
			EligibleWorkTypes: []string{"full-time", "part-time", "contract"},
			RequiredDocuments: []string{"ID", "Employment History", "Bank Statement"},
			ProcessingTime:    "2-3 weeks",
			CreatedAt:         now,
		},
		{
			ID:                uuid.New(),
			Name:              "Health Insurance Subsidy",
			Type:              "health",
			Description:       "Subsidies to help reduce the cost of health insurance premiums.",
			MaxAmount:         800,
			EligibleRegions:   []string{"California", "New York", "Texas", "Florida", "Illinois"},
			EligibleWorkTypes: []string{"gig", "freelance", "part-time"},
			RequiredDocuments: []string{"ID", "Income Statement", "Health Insurance Quote"},
			ProcessingTime:    "1-2 weeks",
			CreatedAt:         now,
		},
		{
			ID:                uuid.New(),
			Name:              "Housing Assistance",
			Type:              "housing",
			Description:       "Financial assistance for rent and housing costs for low-income workers.",
			MaxAmount:         1500,
			EligibleRegions:   []string{"California", "New York", "Illinois"},
			EligibleWorkTypes: []string{"gig", "part-time", "seasonal"},
			RequiredDocuments: []string{"ID", "Lease Agreement", "Income Statement"},
			ProcessingTime:    "3-4 weeks",
			CreatedAt:         now,
		},
	}
}

// Seed populates an empty catalog with the sample programs.
func Seed(ctx context.Context, store Store, now time.Time) (bool, error) {
	return store.SeedIfEmpty(ctx, SeedPrograms(now))
}
