package usecases

const (
	// DefaultRadiusKm is the search radius applied to match requests
	DefaultRadiusKm = 25.0

	// MaxMatchResults caps the number of caregivers returned per match
	MaxMatchResults = 5
)
