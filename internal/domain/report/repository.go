package report

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines report data access interface
type Repository interface {
	// RecordReport durably persists the report and fills in its assigned
	// id and creation time. The write is atomic: on error no row is
	// observable. It triggers no side effects beyond the insert.
	RecordReport(ctx context.Context, report *ContentReport) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new report repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RecordReport(ctx context.Context, report *ContentReport) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO content_reports (
			subject, content_ref, content_owner_user_id,
			description, reporter_user_id, user_agent, page
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id, created_at
	`
	err = tx.QueryRowxContext(ctx, query,
		report.Subject,
		report.ContentRef,
		report.ContentOwnerUserID,
		report.Description,
		report.ReporterUserID,
		report.UserAgent,
		report.Page,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}
