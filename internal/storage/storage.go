package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"casechain/backend/internal/models"
)

// Storage is the ledger store consumed by the lifecycle engine. The
// read-modify-write discipline is part of the contract: UpdateReport is the
// only mutating primitive for existing reports and implementations must
// serialize concurrent mutations per report ID.
type Storage interface {
	SaveReport(report *models.Report) error
	GetReportByID(reportID string) (*models.Report, error)

	// UpdateReport runs mutate against the current stored report under a
	// per-report lock and persists the result. The whole cycle is atomic:
	// if mutate returns an error nothing is written and the error is
	// returned unchanged. A nil report with nil error means not found.
	UpdateReport(reportID string, mutate func(*models.Report) error) (*models.Report, error)

	GetReportsByStatus(status string) ([]models.Report, error)
	GetUnassignedReports() ([]models.Report, error)
	GetReportsByAssignee(investigatorID string) ([]models.Report, error)
	GetAllReports() ([]models.Report, error)
}

// Publisher fans out events to report-scoped channels. Fire-and-forget from
// the engine's point of view.
type Publisher interface {
	PublishEvent(channel string, event models.Event) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveReport creates the report row. Used only at submission; later
// mutations go through UpdateReport.
func (s *Service) SaveReport(report *models.Report) error {
	if err := s.DB.Create(report).Error; err != nil {
		log.Printf("ERROR: Failed to save report %s: %v", report.ID, err)
		return err
	}
	return nil
}

func (s *Service) GetReportByID(reportID string) (*models.Report, error) {
	var report models.Report
	err := s.DB.Where("id = ?", reportID).First(&report).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get report %s: %v", reportID, err)
		return nil, err
	}
	return &report, nil
}

// UpdateReport performs the fetch-mutate-store cycle inside a transaction
// holding a row lock, so concurrent mutations of the same report serialize
// at the database.
func (s *Service) UpdateReport(reportID string, mutate func(*models.Report) error) (*models.Report, error) {
	var updated *models.Report

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var report models.Report
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", reportID).
			First(&report).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // updated stays nil, caller maps to not found
		}
		if err != nil {
			return err
		}

		if err := mutate(&report); err != nil {
			return err
		}

		if err := tx.Save(&report).Error; err != nil {
			return err
		}
		updated = &report
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetReportsByStatus returns reports with the given status, most critical
// first.
func (s *Service) GetReportsByStatus(status string) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("status = ?", status).
		Order("criticality desc").
		Find(&reports).Error; err != nil {
		log.Printf("ERROR: Failed to list reports by status %s: %v", status, err)
		return nil, err
	}
	return reports, nil
}

func (s *Service) GetUnassignedReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("assigned_to = ?", "").
		Order("criticality desc").
		Find(&reports).Error; err != nil {
		log.Printf("ERROR: Failed to list unassigned reports: %v", err)
		return nil, err
	}
	return reports, nil
}

func (s *Service) GetReportsByAssignee(investigatorID string) ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Where("assigned_to = ?", investigatorID).
		Order("criticality desc").
		Find(&reports).Error; err != nil {
		log.Printf("ERROR: Failed to list reports for investigator %s: %v", investigatorID, err)
		return nil, err
	}
	return reports, nil
}

func (s *Service) GetAllReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Order("criticality desc").Find(&reports).Error; err != nil {
		log.Printf("ERROR: Failed to list all reports: %v", err)
		return nil, err
	}
	return reports, nil
}

// PublishEvent publishes the event to a Redis Pub/Sub channel. Callers treat
// this as best-effort.
func (s *Service) PublishEvent(channel string, event models.Event) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, channel, string(eventBytes)).Err(); err != nil {
		return err
	}
	return nil
}

// SubscribeToReportChannels subscribes to every report-scoped channel plus
// the broadcast channel. The hub consumes this.
func (s *Service) SubscribeToReportChannels() *redis.PubSub {
	return s.Redis.PSubscribe(s.Ctx, "report:*", models.BroadcastChannel)
}
