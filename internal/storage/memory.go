package storage

import (
	"sort"
	"sync"

	"github.com/lib/pq"

	"casechain/backend/internal/models"
)

// MemoryStore is an in-memory Storage implementation. It stands in for the
// ledger in tests and local runs; the per-report atomicity contract is
// upheld with a single mutex around every read-modify-write cycle.
type MemoryStore struct {
	mu      sync.Mutex
	reports map[string]models.Report
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]models.Report),
	}
}

func (m *MemoryStore) SaveReport(report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.ID] = cloneReport(*report)
	return nil
}

func (m *MemoryStore) GetReportByID(reportID string) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report, ok := m.reports[reportID]
	if !ok {
		return nil, nil
	}
	copied := cloneReport(report)
	return &copied, nil
}

// UpdateReport mutates a copy under the lock and commits it only if mutate
// succeeds, so a failed transition never leaves a half-written report.
func (m *MemoryStore) UpdateReport(reportID string, mutate func(*models.Report) error) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.reports[reportID]
	if !ok {
		return nil, nil
	}

	working := cloneReport(stored)
	if err := mutate(&working); err != nil {
		return nil, err
	}

	m.reports[reportID] = cloneReport(working)
	return &working, nil
}

func (m *MemoryStore) GetReportsByStatus(status string) ([]models.Report, error) {
	return m.filter(func(r models.Report) bool { return r.Status == status }), nil
}

func (m *MemoryStore) GetUnassignedReports() ([]models.Report, error) {
	return m.filter(func(r models.Report) bool { return r.AssignedTo == "" }), nil
}

func (m *MemoryStore) GetReportsByAssignee(investigatorID string) ([]models.Report, error) {
	return m.filter(func(r models.Report) bool { return r.AssignedTo == investigatorID }), nil
}

func (m *MemoryStore) GetAllReports() ([]models.Report, error) {
	return m.filter(func(models.Report) bool { return true }), nil
}

func (m *MemoryStore) filter(keep func(models.Report) bool) []models.Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Report
	for _, report := range m.reports {
		if keep(report) {
			out = append(out, cloneReport(report))
		}
	}
	// Most critical first, matching the database ordering.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Criticality > out[j].Criticality
	})
	return out
}

func cloneReport(r models.Report) models.Report {
	copied := r
	copied.ChatHistory = append([]models.ChatMessage(nil), r.ChatHistory...)
	copied.Attachments = append([]models.Attachment(nil), r.Attachments...)
	copied.ReopenReasons = append(pq.StringArray(nil), r.ReopenReasons...)
	return copied
}
