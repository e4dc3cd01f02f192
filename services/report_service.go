package services

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/repository"
	"elevatorops-console/utils/logger"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ReportService handles post-repair reports. A report exported by this process
// is immutable from then on.
type ReportService struct {
	reportRepo repository.ReportRepositoryInterface
	refresher  CollectionRefresher
	logger     logger.Logger
	exportDir  string

	mu       sync.RWMutex
	exported map[models.ID]struct{}
}

func NewReportService(reportRepo repository.ReportRepositoryInterface, refresher CollectionRefresher, logger logger.Logger, exportDir string) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		refresher:  refresher,
		logger:     logger,
		exportDir:  exportDir,
		exported:   make(map[models.ID]struct{}),
	}
}

func (s *ReportService) GetReport(ctx context.Context, id models.ID) (*models.Report, error) {
	return s.reportRepo.Get(ctx, id)
}

func (s *ReportService) CreateReport(ctx context.Context, input *models.CreateReportInput) (*models.Report, error) {
	if input == nil {
		return nil, models.NewGuardFailure(models.ErrValidation, "report payload is required")
	}
	input.ProblemType = strings.TrimSpace(input.ProblemType)
	input.SolutionDescription = strings.TrimSpace(input.SolutionDescription)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := s.reportRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	// the parent request now carries a report
	s.refresh(ctx, repository.CollectionReports, repository.CollectionRequests)
	return created, nil
}

func (s *ReportService) UpdateReport(ctx context.Context, id models.ID, input *models.UpdateReportInput) (*models.Report, error) {
	if err := s.guardExported(id); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, models.NewGuardFailure(models.ErrValidation, "report payload is required")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated, err := s.reportRepo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, repository.CollectionReports)
	return updated, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id models.ID) error {
	if err := s.guardExported(id); err != nil {
		return err
	}
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx, repository.CollectionReports, repository.CollectionRequests)
	return nil
}

// ExportReport renders the report as an XLSX workbook, writes it to the export
// directory when one is configured and marks the report immutable
func (s *ReportService) ExportReport(ctx context.Context, id models.ID) (*models.ReportExport, error) {
	report, err := s.reportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := renderReportWorkbook(report)
	if err != nil {
		s.logger.Errorf("Failed to render report %s: %v", id, err)
		return nil, err
	}

	export := &models.ReportExport{
		ReportID:    report.ID,
		FileName:    exportFileName(report),
		ContentType: xlsxContentType,
		Content:     content,
	}
	if s.exportDir != "" {
		path := filepath.Join(s.exportDir, export.FileName)
		if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write export file: %w", err)
		}
		export.Path = path
	}

	s.mu.Lock()
	s.exported[report.ID] = struct{}{}
	s.mu.Unlock()

	s.logger.Infof("Exported report %s (%d bytes)", report.ID, len(content))
	return export, nil
}

// IsExported reports whether the report was exported by this process
func (s *ReportService) IsExported(id models.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.exported[id]
	return ok
}

func (s *ReportService) guardExported(id models.ID) error {
	if s.IsExported(id) {
		return models.NewGuardFailure(models.ErrReportExported, "report %s was exported and can no longer change", id)
	}
	return nil
}

func (s *ReportService) refresh(ctx context.Context, collections ...string) {
	if s.refresher == nil {
		return
	}
	for _, c := range collections {
		if err := s.refresher.RefreshCollection(ctx, c); err != nil {
			s.logger.Warnf("Failed to refresh %s views after write: %v", c, err)
		}
	}
}
