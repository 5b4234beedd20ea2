package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"care-connect.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock CaregiverRepository
type MockCaregiverRepository struct {
	mock.Mock
}

func (m *MockCaregiverRepository) Create(ctx context.Context, caregiver *entities.CaregiverProfile) error {
	args := m.Called(ctx, caregiver)
	return args.Error(0)
}

func (m *MockCaregiverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.CaregiverProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CaregiverProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverRepository) ListVerifiedNear(ctx context.Context, origin entities.GeoPoint, radiusKm float64) ([]*entities.CaregiverProfile, error) {
	args := m.Called(ctx, origin, radiusKm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverRepository) List(ctx context.Context) ([]*entities.CaregiverProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CaregiverProfile), args.Error(1)
}

func (m *MockCaregiverRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

// Mock BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBySeekerID(ctx context.Context, seekerID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	args := m.Called(ctx, seekerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepository) GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Booking, int, error) {
	args := m.Called(ctx, caregiverID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepository) HasAcceptedOverlap(ctx context.Context, caregiverID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, caregiverID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

// Mock ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByCaregiverID(ctx context.Context, caregiverID uuid.UUID, limit, offset int) ([]*entities.Review, int, error) {
	args := m.Called(ctx, caregiverID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Review), args.Int(1), args.Error(2)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAccountStatus(ctx context.Context, id uuid.UUID, status entities.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock BookingEventPublisher
type MockBookingEventPublisher struct {
	mock.Mock
}

func (m *MockBookingEventPublisher) PublishStatusChange(ctx context.Context, event *entities.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, recipient, template string, data map[string]interface{}) error {
	args := m.Called(ctx, recipient, template, data)
	return args.Error(0)
}
