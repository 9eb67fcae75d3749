package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// ErrNotFound is returned by adapters when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Catalog is the read side of the profile and service collaborators.
type Catalog interface {
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetProvider(ctx context.Context, id uint) (*models.HairdresserProfile, error)
	GetProviderByUserID(ctx context.Context, userID uint) (*models.HairdresserProfile, error)
}

type ListFilter struct {
	ClientID   *uint
	ProviderID *uint
	Status     *Status

	// zero Limit means no paging
	Limit  int
	Offset int
}

type Stats struct {
	Total          int64
	CreatedSince   int64
	ByStatus       map[Status]int64
	CompletedTotal decimal.Decimal
}

type Repository interface {
	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		providerID uint,
		date schedule.Date,
	) ([]schedule.Clock, error)

	// -------- Appointment (create / conflict) --------

	// Book inserts ap unless a live appointment already holds its slot,
	// in which case it returns Conflict(slot_taken).
	Book(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	List(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, int64, error)

	// -------- Appointment (state change) --------

	// UpdateStatus writes ap's status only while the stored row is still
	// in status from. A row that moved on returns InvalidTransition; a
	// row that is gone returns ErrNotFound. Moving back into a live
	// status over a slot someone else holds returns Conflict(slot_taken).
	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Admin --------
	Stats(
		ctx context.Context,
		since time.Time,
	) (*Stats, error)
}
