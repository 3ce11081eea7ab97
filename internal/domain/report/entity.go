package report

import (
	"database/sql"
	"time"
)

// ContentReport represents one user-submitted flag against a piece of
// content. Rows are created exactly once at submission and are never
// mutated or deleted here; the review workflow owns the rest of the
// lifecycle.
type ContentReport struct {
	ID                 int64         `db:"id" json:"id"`
	Subject            string        `db:"subject" json:"subject"`
	ContentRef         string        `db:"content_ref" json:"content_ref"`
	ContentOwnerUserID sql.NullInt64 `db:"content_owner_user_id" json:"content_owner_user_id,omitempty"`
	Description        string        `db:"description" json:"description"`
	ReporterUserID     int64         `db:"reporter_user_id" json:"reporter_user_id"`
	UserAgent          string        `db:"user_agent" json:"user_agent"`
	Page               string        `db:"page" json:"page"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
}
