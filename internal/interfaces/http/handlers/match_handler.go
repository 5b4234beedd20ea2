package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/interfaces/http/response"
)

type MatchService interface {
	Match(ctx context.Context, query *entities.SeekerQuery) ([]*entities.CaregiverMatch, error)
}

// MatchRequest is the match boundary request body
type MatchRequest struct {
	Location     []float64 `json:"location" binding:"required"`
	CareType     string    `json:"careType" binding:"required"`
	Schedule     string    `json:"schedule,omitempty"`
	SpecialNeeds string    `json:"specialNeeds,omitempty"`
}

// CaregiverSummary is one ranked result entry
type CaregiverSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	HourlyRate      float64  `json:"hourlyRate"`
	Specializations []string `json:"specializations"`
	ServicesOffered []string `json:"servicesOffered"`
	Languages       []string `json:"languages"`
	Bio             string   `json:"bio"`
	DistanceKm      float64  `json:"distanceKm"`
	Score           float64  `json:"score"`
}

// MatchHandler handles the match boundary
type MatchHandler struct {
	matchUsecase MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchUsecase MatchService) *MatchHandler {
	return &MatchHandler{matchUsecase: matchUsecase}
}

// Match finds caregivers for a seeker query
// POST /api/v1/matches
func (h *MatchHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if len(req.Location) != 2 {
		response.Error(c, domainerrors.BadRequest("location must be [lng, lat]"))
		return
	}

	location, err := entities.NewGeoPoint(req.Location[0], req.Location[1])
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid coordinates"))
		return
	}

	matches, err := h.matchUsecase.Match(c.Request.Context(), &entities.SeekerQuery{
		Location:     location,
		CareType:     req.CareType,
		Schedule:     req.Schedule,
		SpecialNeeds: req.SpecialNeeds,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	summaries := make([]CaregiverSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, CaregiverSummary{
			ID:              m.Caregiver.ID.String(),
			Name:            m.Caregiver.Name,
			HourlyRate:      m.Caregiver.HourlyRate,
			Specializations: m.Caregiver.Specializations,
			ServicesOffered: m.Caregiver.ServicesOffered,
			Languages:       m.Caregiver.Languages,
			Bio:             m.Caregiver.Bio,
			DistanceKm:      m.DistanceKm,
			Score:           m.Score,
		})
	}

	response.Success(c, http.StatusOK, gin.H{"matches": summaries})
}
