package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/dto"
)

const recentWindow = 30 * 24 * time.Hour

type GetStats struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo, now: time.Now}
}

func (uc *GetStats) Execute(ctx context.Context) (*dto.AppointmentStatsDTO, error) {
	stats, err := uc.repo.Stats(ctx, uc.now().Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int64{
		string(domain.StatusPending):   0,
		string(domain.StatusConfirmed): 0,
		string(domain.StatusCompleted): 0,
		string(domain.StatusCancelled): 0,
	}
	for st, n := range stats.ByStatus {
		byStatus[string(st)] = n
	}

	return &dto.AppointmentStatsDTO{
		TotalAppointments:  stats.Total,
		RecentAppointments: stats.CreatedSince,
		ByStatus:           byStatus,
		Revenue:            stats.CompletedTotal.StringFixed(2),
	}, nil
}
