package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Service orchestrates a report submission end-to-end: persist first,
// notify strictly after the commit.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates report service
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// SubmitReport persists a content report filed by reporterID and triggers
// the staff notification once the row is durably committed. reporterID
// must come from the verified caller identity, never from the request
// body. A notification failure is logged but does not fail the
// submission; the report is already committed at that point.
func (s *Service) SubmitReport(ctx context.Context, reporterID int64, req *ContentReportRequest) (*ContentReport, error) {
	contentReport := &ContentReport{
		Subject:        req.Subject,
		ContentRef:     req.ContentRef,
		Description:    req.Description,
		ReporterUserID: reporterID,
		UserAgent:      req.UserAgent,
		Page:           req.Page,
	}

	if req.ContentOwnerUserID != 0 {
		contentReport.ContentOwnerUserID = sql.NullInt64{Int64: req.ContentOwnerUserID, Valid: true}
	}

	if err := s.repo.RecordReport(ctx, contentReport); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	if err := s.notifier.ReportFiled(ctx, contentReport); err != nil {
		// The report is committed; notification failures must not undo
		// that or surface to the caller, but they may never be silent.
		log.Error().Err(err).
			Int64("report_id", contentReport.ID).
			Int64("reporter_user_id", contentReport.ReporterUserID).
			Msg("Content report notification failed")
	}

	return contentReport, nil
}
