// Package query builds read-only projections over the ledger store. Nothing
// here mutates a report.
package query

import (
	"casechain/backend/internal/config"
	"casechain/backend/internal/storage"
)

// StatusCounts breaks the case load down by lifecycle status.
type StatusCounts struct {
	Pending               int `json:"pending"`
	UnderInvestigation    int `json:"under_investigation"`
	InvestigationComplete int `json:"investigation_complete"`
	Completed             int `json:"completed"`
}

// CriticalityCounts buckets reports into high (>=4), medium (3) and low (<=2).
type CriticalityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// InvestigatorLoad is the per-investigator slice of the statistics view.
type InvestigatorLoad struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ActiveReports    int    `json:"activeReports"`
	CompletedReports int    `json:"completedReports"`
}

// Statistics is the aggregate view served to investigator and management
// portals.
type Statistics struct {
	TotalReports  int                `json:"totalReports"`
	ByStatus      StatusCounts       `json:"byStatus"`
	ByCriticality CriticalityCounts  `json:"byCriticality"`
	Investigators []InvestigatorLoad `json:"investigators"`
}

// Service answers read-only questions by scanning the ledger store.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Statistics aggregates every stored report into counts by status,
// criticality bucket and investigator load.
func (s *Service) Statistics() (*Statistics, error) {
	reports, err := s.Storage.GetAllReports()
	if err != nil {
		return nil, err
	}

	stats := &Statistics{TotalReports: len(reports)}
	loads := make(map[string]*InvestigatorLoad)

	for _, r := range reports {
		switch r.Status {
		case config.StatusPending:
			stats.ByStatus.Pending++
		case config.StatusUnderInvestigation:
			stats.ByStatus.UnderInvestigation++
		case config.StatusInvestigationComplete:
			stats.ByStatus.InvestigationComplete++
		case config.StatusCompleted:
			stats.ByStatus.Completed++
		}

		switch {
		case r.Criticality >= config.HighCriticalityFloor:
			stats.ByCriticality.High++
		case r.Criticality <= config.LowCriticalityCeiling:
			stats.ByCriticality.Low++
		default:
			stats.ByCriticality.Medium++
		}

		if r.AssignedTo == "" {
			continue
		}
		load, ok := loads[r.AssignedTo]
		if !ok {
			load = &InvestigatorLoad{ID: r.AssignedTo, Name: r.AssignedToName}
			loads[r.AssignedTo] = load
		}
		switch r.Status {
		case config.StatusUnderInvestigation:
			load.ActiveReports++
		case config.StatusInvestigationComplete, config.StatusCompleted:
			load.CompletedReports++
		}
	}

	stats.Investigators = make([]InvestigatorLoad, 0, len(loads))
	for _, load := range loads {
		stats.Investigators = append(stats.Investigators, *load)
	}
	return stats, nil
}
