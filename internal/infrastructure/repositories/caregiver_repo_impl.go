package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"care-connect.backend/internal/domain/entities"
	domainerrors "care-connect.backend/internal/domain/errors"
	"care-connect.backend/internal/infrastructure/models"
)

// kmPerDegreeLat is the approximate north-south span of one degree of latitude.
const kmPerDegreeLat = 111.045

// CaregiverRepository implements caregiver data operations
type CaregiverRepository struct {
	db *gorm.DB
}

// NewCaregiverRepository creates a new caregiver repository
func NewCaregiverRepository(db *gorm.DB) *CaregiverRepository {
	return &CaregiverRepository{db: db}
}

// Create creates a new caregiver profile
func (r *CaregiverRepository) Create(ctx context.Context, caregiver *entities.CaregiverProfile) error {
	m, err := toCaregiverModel(caregiver)
	if err != nil {
		return err
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	caregiver.ID = m.ID
	return nil
}

// GetByID gets a caregiver by ID
func (r *CaregiverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error) {
	var m models.Caregiver
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCaregiverEntity(&m)
}

// GetByIDForUpdate gets a caregiver by ID with a row-level lock. Must run
// inside a UnitOfWork transaction to be effective.
func (r *CaregiverRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error) {
	var m models.Caregiver
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCaregiverEntity(&m)
}

// GetByUserID gets a caregiver by owning account ID
func (r *CaregiverRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CaregiverProfile, error) {
	var m models.Caregiver
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCaregiverEntity(&m)
}

// ListVerifiedNear lists verified caregivers inside a bounding box around
// origin. The box over-approximates the radius; callers apply the exact
// distance test.
func (r *CaregiverRepository) ListVerifiedNear(ctx context.Context, origin entities.GeoPoint, radiusKm float64) ([]*entities.CaregiverProfile, error) {
	dLat := radiusKm / kmPerDegreeLat
	dLng := radiusKm / (kmPerDegreeLat * math.Cos(origin.Lat*math.Pi/180))
	if math.IsInf(dLng, 0) || math.IsNaN(dLng) || dLng > 180 {
		dLng = 180
	}

	var ms []models.Caregiver
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("verified = ?", true).
		Where("lat BETWEEN ? AND ?", origin.Lat-dLat, origin.Lat+dLat).
		Where("lng BETWEEN ? AND ?", origin.Lng-dLng, origin.Lng+dLng).
		Order("id").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	return toCaregiverEntities(ms)
}

// List lists all caregivers
func (r *CaregiverRepository) List(ctx context.Context) ([]*entities.CaregiverProfile, error) {
	var ms []models.Caregiver
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Order("created_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toCaregiverEntities(ms)
}

// SetVerified updates the verified flag
func (r *CaregiverRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Caregiver{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":   verified,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toCaregiverModel(c *entities.CaregiverProfile) (*models.Caregiver, error) {
	m := &models.Caregiver{
		ID:         c.ID,
		UserID:     c.UserID,
		Name:       c.Name,
		Lng:        c.Location.Lng,
		Lat:        c.Location.Lat,
		Verified:   c.Verified,
		HourlyRate: c.HourlyRate,
		Bio:        c.Bio,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	for _, f := range []struct {
		src []string
		dst *string
	}{
		{c.Specializations, &m.Specializations},
		{c.Qualifications, &m.Qualifications},
		{c.ServicesOffered, &m.ServicesOffered},
		{c.AvailabilityDays, &m.AvailabilityDays},
		{c.Languages, &m.Languages},
	} {
		b, err := json.Marshal(f.src)
		if err != nil {
			return nil, err
		}
		*f.dst = string(b)
	}

	return m, nil
}

func toCaregiverEntity(m *models.Caregiver) (*entities.CaregiverProfile, error) {
	location, err := entities.NewGeoPoint(m.Lng, m.Lat)
	if err != nil {
		return nil, err
	}

	c := &entities.CaregiverProfile{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Location:   location,
		Verified:   m.Verified,
		HourlyRate: m.HourlyRate,
		Bio:        m.Bio,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	for _, f := range []struct {
		src string
		dst *[]string
	}{
		{m.Specializations, &c.Specializations},
		{m.Qualifications, &c.Qualifications},
		{m.ServicesOffered, &c.ServicesOffered},
		{m.AvailabilityDays, &c.AvailabilityDays},
		{m.Languages, &c.Languages},
	} {
		if f.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.src), f.dst); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func toCaregiverEntities(ms []models.Caregiver) ([]*entities.CaregiverProfile, error) {
	var caregivers []*entities.CaregiverProfile
	for i := range ms {
		c, err := toCaregiverEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		caregivers = append(caregivers, c)
	}
	return caregivers, nil
}
