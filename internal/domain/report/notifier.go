package report

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/homeroam/homeroam-api/internal/pkg/email"
)

// Notifier is the post-commit trigger that tells staff about a newly
// filed report. Implementations must only ever be invoked with a report
// that is already durably committed.
type Notifier interface {
	ReportFiled(ctx context.Context, report *ContentReport) error
}

// EmailNotifier delivers report notifications to the moderation inbox
type EmailNotifier struct {
	mail email.Sender
	to   string
}

// NewEmailNotifier creates a notifier backed by the email service
func NewEmailNotifier(mail email.Sender, moderationEmail string) *EmailNotifier {
	return &EmailNotifier{mail: mail, to: moderationEmail}
}

// ReportFiled sends the content report email
func (n *EmailNotifier) ReportFiled(ctx context.Context, report *ContentReport) error {
	return n.mail.SendSync(ctx, n.to, "Moderation Team", "content_report",
		"New content report: "+report.Subject,
		map[string]string{
			"ReportID":       strconv.FormatInt(report.ID, 10),
			"Subject":        report.Subject,
			"ContentRef":     report.ContentRef,
			"ContentOwner":   formatOwner(report.ContentOwnerUserID),
			"ReporterUserID": strconv.FormatInt(report.ReporterUserID, 10),
			"Description":    report.Description,
			"UserAgent":      report.UserAgent,
			"Page":           report.Page,
		},
	)
}

func formatOwner(owner sql.NullInt64) string {
	if !owner.Valid {
		return "none"
	}
	return "user #" + strconv.FormatInt(owner.Int64, 10)
}
