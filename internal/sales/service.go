package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service renders sale reports and keeps them in a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateReport builds a Sale from the input, renders it and stores the result.
func (s *Service) CreateReport(in Input) (*Report, error) {
	sale, err := in.Sale()
	if err != nil {
		s.logger.Warn("invalid sale input", zap.Error(err))
		return nil, err
	}

	metrics, err := sale.Calculate()
	if err != nil {
		s.logger.Error("failed to calculate sale metrics", zap.String("address", sale.Address), zap.Error(err))
		return nil, err
	}

	text, err := Render(sale)
	if err != nil {
		s.logger.Error("failed to render sale", zap.String("address", sale.Address), zap.Error(err))
		return nil, err
	}

	report := &Report{
		ID:        uuid.NewString(),
		Address:   sale.Address,
		Metrics:   metrics,
		Text:      text,
		CreatedAt: s.now(),
	}

	if err := s.storage.Set(report); err != nil {
		s.logger.Error("failed to save report", zap.String("report_id", report.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("report created",
		zap.String("report_id", report.ID),
		zap.String("address", report.Address),
		zap.Float64("net_profit", metrics.NetProfit),
		zap.Float64("annual_return_percent", metrics.AnnualReturnPercent),
	)
	return report, nil
}

// GetReport returns a previously created report.
func (s *Service) GetReport(id string) (*Report, error) {
	report, err := s.storage.Read(id)
	if err != nil {
		s.logger.Debug("report lookup failed", zap.String("report_id", id), zap.Error(err))
		return nil, err
	}
	return report, nil
}

// ListReports returns every report created so far, oldest first.
func (s *Service) ListReports() ([]*Report, error) {
	reports, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to list reports", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	return reports, nil
}
