package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CaregiverProfile represents a caregiver entity
type CaregiverProfile struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	Name             string     `json:"name"`
	Location         GeoPoint   `json:"location"`
	Verified         bool       `json:"verified"`
	HourlyRate       float64    `json:"hourlyRate"`
	Specializations  []string   `json:"specializations"`
	Qualifications   []string   `json:"qualifications"`
	ServicesOffered  []string   `json:"servicesOffered"`
	AvailabilityDays []string   `json:"availabilityDays"`
	Languages        []string   `json:"languages"`
	Bio              string     `json:"bio"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"-"`
}

// OffersService reports whether the caregiver offers the given service (case-insensitive)
func (c *CaregiverProfile) OffersService(service string) bool {
	for _, s := range c.ServicesOffered {
		if strings.EqualFold(s, service) {
			return true
		}
	}
	return false
}

// Document returns the caregiver's attribute text used for relevance scoring
func (c *CaregiverProfile) Document() string {
	parts := make([]string, 0, 6)
	for _, list := range [][]string{c.Specializations, c.Qualifications, c.ServicesOffered, c.AvailabilityDays, c.Languages} {
		if len(list) > 0 {
			parts = append(parts, strings.Join(list, " "))
		}
	}
	if c.Bio != "" {
		parts = append(parts, c.Bio)
	}
	return strings.Join(parts, " ")
}

// SeekerQuery represents a match request; it is never persisted
type SeekerQuery struct {
	Location     GeoPoint `json:"location"`
	CareType     string   `json:"careType"`
	Schedule     string   `json:"schedule"`
	SpecialNeeds string   `json:"specialNeeds"`
}

// Document returns the query text used for relevance scoring
func (q *SeekerQuery) Document() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{q.CareType, q.SpecialNeeds, q.Schedule} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// CaregiverMatch represents one ranked entry in a match result
type CaregiverMatch struct {
	Caregiver  *CaregiverProfile `json:"caregiver"`
	DistanceKm float64           `json:"distanceKm"`
	Score      float64           `json:"score"`
}
