package usecases

import (
	"care-connect.backend/internal/domain/entities"
)

// FilterByRadius returns the candidates within radiusKm of origin, computed
// with the great-circle distance. Pure function; safe to run concurrently
// over disjoint candidate sets.
func FilterByRadius(candidates []*entities.CaregiverProfile, origin entities.GeoPoint, radiusKm float64) []*entities.CaregiverMatch {
	var within []*entities.CaregiverMatch
	for _, c := range candidates {
		d := origin.DistanceKm(c.Location)
		if d <= radiusKm {
			within = append(within, &entities.CaregiverMatch{
				Caregiver:  c,
				DistanceKm: d,
			})
		}
	}
	return within
}
