package response

import (
	"time"

	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
)

type DashboardStatsResponse struct {
	TotalBooks        int64            `json:"totalBooks"`
	TotalUsers        int64            `json:"totalUsers"`
	TotalReservations int64            `json:"totalReservations"`
	ActiveLoans       int64            `json:"activeLoans"`
	OverdueBooks      int64            `json:"overdueBooks"`
	ByStatus          map[string]int64 `json:"byStatus"`
}

func FromDashboardStats(s *queries.DashboardStats) (*DashboardStatsResponse, error) {
	return copyOne[queries.DashboardStats, DashboardStatsResponse](s)
}

type SweepResponse struct {
	Affected int64     `json:"affected"`
	RanAt    time.Time `json:"ranAt"`
	Skipped  bool      `json:"skipped"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{Affected: r.Affected, RanAt: r.RanAt, Skipped: r.Skipped}
}
