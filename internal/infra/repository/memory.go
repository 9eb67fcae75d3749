package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/models"
)

// Memory is an in-process Repository and Catalog. Book enforces the same
// live-slot uniqueness as idx_appointments_live_slot.
type Memory struct {
	mu sync.Mutex

	users        map[uint]models.User
	providers    map[uint]models.HairdresserProfile
	services     map[uint]models.Service
	appointments map[uint]models.Appointment

	nextID uint
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users:        map[uint]models.User{},
		providers:    map[uint]models.HairdresserProfile{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		now:          time.Now,
	}
}

var (
	_ domain.Repository = (*Memory)(nil)
	_ domain.Catalog    = (*Memory)(nil)
)

// SetClock replaces the time source used for CreatedAt.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (m *Memory) PutUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *Memory) PutProvider(p models.HairdresserProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[p.ID] = p
}

func (m *Memory) PutService(s models.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.services[s.ID] = s
}

// PutAppointment stores ap as is, bypassing the slot check.
func (m *Memory) PutAppointment(ap models.Appointment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ap.ID > m.nextID {
		m.nextID = ap.ID
	}
	m.appointments[ap.ID] = ap
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (m *Memory) GetService(_ context.Context, id uint) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *Memory) GetProvider(_ context.Context, id uint) (*models.HairdresserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.providers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (m *Memory) GetProviderByUserID(_ context.Context, userID uint) (*models.HairdresserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.providers {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// --------------------------------------------------
// Repository
// --------------------------------------------------

func (m *Memory) ListBookedTimes(
	_ context.Context,
	providerID uint,
	date schedule.Date,
) ([]schedule.Clock, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var times []schedule.Clock
	for _, ap := range m.appointments {
		if ap.HairdresserProfileID == providerID &&
			ap.AppointmentDate == date &&
			domain.Status(ap.Status).IsLive() {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (m *Memory) Book(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slotHeldByOther(*ap) {
		return httperr.Conflict("slot_taken")
	}

	m.nextID++
	now := m.now()

	ap.ID = m.nextID
	ap.CreatedAt = now
	ap.UpdatedAt = now

	stored := *ap
	stored.Client = models.User{}
	stored.HairdresserProfile = models.HairdresserProfile{}
	stored.Service = models.Service{}
	m.appointments[ap.ID] = stored
	return nil
}

func (m *Memory) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	enriched := m.enrich(ap)
	return &enriched, nil
}

func (m *Memory) List(_ context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var list []models.Appointment
	for _, ap := range m.appointments {
		if f.ClientID != nil && ap.ClientID != *f.ClientID {
			continue
		}
		if f.ProviderID != nil && ap.HairdresserProfileID != *f.ProviderID {
			continue
		}
		if f.Status != nil && ap.Status != string(*f.Status) {
			continue
		}
		list = append(list, m.enrich(ap))
	}

	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if c := a.AppointmentDate.Compare(b.AppointmentDate); c != 0 {
			return c > 0
		}
		if a.AppointmentTime != b.AppointmentTime {
			return a.AppointmentTime > b.AppointmentTime
		}
		return a.ID > b.ID
	})

	total := int64(len(list))
	if f.Limit > 0 {
		if f.Offset >= len(list) {
			return []models.Appointment{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(list) {
			end = len(list)
		}
		list = list[f.Offset:end]
	}
	return list, total, nil
}

func (m *Memory) UpdateStatus(
	_ context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != string(from) {
		return httperr.InvalidTransition("invalid_transition")
	}

	if domain.Status(ap.Status).IsLive() && m.slotHeldByOther(stored) {
		return httperr.Conflict("slot_taken")
	}

	ap.UpdatedAt = m.now()
	stored.Status = ap.Status
	stored.CancellationReason = ap.CancellationReason
	stored.UpdatedAt = ap.UpdatedAt
	m.appointments[ap.ID] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *Memory) Stats(_ context.Context, since time.Time) (*domain.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &domain.Stats{
		ByStatus:       map[domain.Status]int64{},
		CompletedTotal: decimal.Zero,
	}

	for _, ap := range m.appointments {
		stats.Total++
		if !ap.CreatedAt.Before(since) {
			stats.CreatedSince++
		}
		stats.ByStatus[domain.Status(ap.Status)]++
		if ap.Status == string(domain.StatusCompleted) {
			stats.CompletedTotal = stats.CompletedTotal.Add(ap.TotalPrice)
		}
	}
	return stats, nil
}

// slotHeldByOther reports whether a live appointment other than ap holds
// ap's slot. Must be called with m.mu held.
func (m *Memory) slotHeldByOther(ap models.Appointment) bool {
	for id, other := range m.appointments {
		if id != ap.ID &&
			other.HairdresserProfileID == ap.HairdresserProfileID &&
			other.AppointmentDate == ap.AppointmentDate &&
			other.AppointmentTime == ap.AppointmentTime &&
			domain.Status(other.Status).IsLive() {
			return true
		}
	}
	return false
}

// enrich must be called with m.mu held.
func (m *Memory) enrich(ap models.Appointment) models.Appointment {
	ap.Client = m.users[ap.ClientID]

	p := m.providers[ap.HairdresserProfileID]
	p.User = m.users[p.UserID]
	ap.HairdresserProfile = p

	ap.Service = m.services[ap.ServiceID]
	return ap
}
