package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

const listOrder = "appointment_date DESC, appointment_time DESC, id DESC"

func (r *AppointmentGormRepository) enriched(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Client").
		Preload("HairdresserProfile.User").
		Preload("Service")
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	providerID uint,
	date schedule.Date,
) ([]schedule.Clock, error) {

	var times []schedule.Clock
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"hairdresser_profile_id = ? AND appointment_date = ? AND status IN ?",
			providerID,
			date,
			domain.LiveStatuses(),
		).
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, fmt.Errorf("list booked times: %w", err)
	}
	return times, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) Book(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"hairdresser_profile_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
				ap.HairdresserProfileID,
				ap.AppointmentDate,
				ap.AppointmentTime,
				domain.LiveStatuses(),
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.Conflict("slot_taken")
		}

		// idx_appointments_live_slot settles races the count above misses
		return tx.Omit(clause.Associations).Create(ap).Error
	})

	return translateBookErr(err)
}

// translateBookErr maps a losing insert on idx_appointments_live_slot to
// Conflict(slot_taken).
func translateBookErr(err error) error {
	switch {
	case err == nil:
		return nil
	case httperr.KindOf(err) != "":
		return err
	case isUniqueViolation(err):
		return httperr.Conflict("slot_taken")
	default:
		return fmt.Errorf("book appointment: %w", err)
	}
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.enriched(r.db.WithContext(ctx)).
		First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.ProviderID != nil {
		q = q.Where("hairdresser_profile_id = ?", *f.ProviderID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	q = r.enriched(q).Order(listOrder)
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var list []models.Appointment
	if err := q.Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	return list, total, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	ap.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":              ap.Status,
			"cancellation_reason": ap.CancellationReason,
			"updated_at":          ap.UpdatedAt,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return httperr.Conflict("slot_taken")
		}
		return fmt.Errorf("update appointment %d: %w", ap.ID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var current models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "status").
		First(&current, ap.ID).Error; err != nil {
		return notFound(err)
	}
	return httperr.InvalidTransition("invalid_transition")
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete appointment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *AppointmentGormRepository) Stats(
	ctx context.Context,
	since time.Time,
) (*domain.Stats, error) {

	db := r.db.WithContext(ctx)
	stats := &domain.Stats{ByStatus: map[domain.Status]int64{}}

	if err := db.Model(&models.Appointment{}).
		Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	if err := db.Model(&models.Appointment{}).
		Where("created_at >= ?", since).
		Count(&stats.CreatedSince).Error; err != nil {
		return nil, fmt.Errorf("count recent appointments: %w", err)
	}

	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	for _, row := range rows {
		stats.ByStatus[domain.Status(row.Status)] = row.Count
	}

	var revenue decimal.Decimal
	if err := db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("status = ?", string(domain.StatusCompleted)).
		Row().Scan(&revenue); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	stats.CompletedTotal = revenue

	return stats, nil
}
