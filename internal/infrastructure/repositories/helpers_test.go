package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"care-connect.backend/internal/domain/entities"
)

// newTestDB opens an isolated in-memory SQLite database with the production
// schema. Table definitions mirror the GORM models; SQLite has no native uuid
// or jsonb types so those columns degrade to text.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			account_status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE caregivers (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			lng REAL NOT NULL,
			lat REAL NOT NULL,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			hourly_rate REAL NOT NULL,
			specializations TEXT DEFAULT '[]',
			qualifications TEXT DEFAULT '[]',
			services_offered TEXT DEFAULT '[]',
			availability_days TEXT DEFAULT '[]',
			languages TEXT DEFAULT '[]',
			bio TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			caregiver_id TEXT NOT NULL,
			seeker_id TEXT NOT NULL,
			start DATETIME NOT NULL,
			"end" DATETIME NOT NULL,
			service TEXT NOT NULL,
			price REAL NOT NULL,
			location TEXT,
			notes TEXT,
			cancel_reason TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE reviews (
			id TEXT PRIMARY KEY,
			booking_id TEXT NOT NULL UNIQUE,
			caregiver_id TEXT NOT NULL,
			seeker_id TEXT NOT NULL,
			rating INTEGER NOT NULL,
			comment TEXT,
			created_at DATETIME
		)`,
		`CREATE INDEX idx_bookings_caregiver_status_start ON bookings (caregiver_id, status, start)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role entities.UserRole, status entities.AccountStatus) *entities.User {
	t.Helper()
	id := uuid.New()
	user := &entities.User{
		ID:            id,
		Email:         fmt.Sprintf("%s@example.com", id),
		Name:          "Test User",
		Role:          role,
		AccountStatus: status,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Exec(
		`INSERT INTO users (id, email, name, role, account_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, string(user.Role), string(user.AccountStatus),
		user.CreatedAt, user.UpdatedAt,
	).Error)
	return user
}

func seedCaregiver(t *testing.T, db *gorm.DB, userID uuid.UUID, lng, lat float64, verified bool) *entities.CaregiverProfile {
	t.Helper()
	caregiver := &entities.CaregiverProfile{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "Grace",
		Location:        entities.GeoPoint{Type: "Point", Lng: lng, Lat: lat},
		Verified:        verified,
		HourlyRate:      20,
		ServicesOffered: []string{"elderly care"},
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
	require.NoError(t, db.Exec(
		`INSERT INTO caregivers (id, user_id, name, lng, lat, verified, hourly_rate, services_offered, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		caregiver.ID, caregiver.UserID, caregiver.Name,
		caregiver.Location.Lng, caregiver.Location.Lat,
		caregiver.Verified, caregiver.HourlyRate, `["elderly care"]`,
		caregiver.CreatedAt, caregiver.UpdatedAt,
	).Error)
	return caregiver
}

func seedBooking(t *testing.T, db *gorm.DB, caregiverID, seekerID uuid.UUID, start, end time.Time, status entities.BookingStatus) *entities.Booking {
	t.Helper()
	booking := &entities.Booking{
		ID:          uuid.New(),
		CaregiverID: caregiverID,
		SeekerID:    seekerID,
		Start:       start,
		End:         end,
		Service:     "elderly care",
		Price:       40,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, db.Exec(
		`INSERT INTO bookings (id, caregiver_id, seeker_id, start, "end", service, price, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.ID, booking.CaregiverID, booking.SeekerID,
		booking.Start, booking.End, booking.Service, booking.Price,
		string(booking.Status), booking.CreatedAt, booking.UpdatedAt,
	).Error)
	return booking
}
