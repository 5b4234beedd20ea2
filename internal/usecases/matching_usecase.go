package usecases

import (
	"context"
	"sort"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/domain/repositories"
)

// MatchingUsecase finds and ranks caregivers for a seeker query. It is
// read-only and stateless; concurrent calls share no mutable state.
type MatchingUsecase struct {
	caregiverRepo repositories.CaregiverRepository
	ranker        *RelevanceRanker
	radiusKm      float64
}

// NewMatchingUsecase creates a new matching usecase
func NewMatchingUsecase(caregiverRepo repositories.CaregiverRepository, radiusKm float64) *MatchingUsecase {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &MatchingUsecase{
		caregiverRepo: caregiverRepo,
		ranker:        NewRelevanceRanker(),
		radiusKm:      radiusKm,
	}
}

// Match returns up to MaxMatchResults verified caregivers within the search
// radius, ranked by relevance to the query. Ties are broken by caregiver ID
// so results are deterministic.
func (u *MatchingUsecase) Match(ctx context.Context, query *entities.SeekerQuery) ([]*entities.CaregiverMatch, error) {
	matchRequestsTotal.Inc()

	candidates, err := u.caregiverRepo.ListVerifiedNear(ctx, query.Location, u.radiusKm)
	if err != nil {
		return nil, err
	}

	// The repository returns a bounding-box superset; apply the exact
	// great-circle test here.
	within := FilterByRadius(candidates, query.Location, u.radiusKm)
	if len(within) == 0 {
		return nil, domainerrors.NotFound("no caregivers in area")
	}

	queryDoc := query.Document()
	for _, m := range within {
		m.Score = u.ranker.Score(queryDoc, m.Caregiver.Document())
	}

	sort.SliceStable(within, func(i, j int) bool {
		if within[i].Score != within[j].Score {
			return within[i].Score > within[j].Score
		}
		return within[i].Caregiver.ID.String() < within[j].Caregiver.ID.String()
	})

	if len(within) > MaxMatchResults {
		within = within[:MaxMatchResults]
	}
	return within, nil
}
