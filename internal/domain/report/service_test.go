package report

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFakeConnectivity = errors.New("simulated connectivity loss")

type fakeRepo struct {
	recorded []*ContentReport
	nextID   int64
	err      error
}

func (f *fakeRepo) RecordReport(ctx context.Context, report *ContentReport) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	report.ID = f.nextID
	report.CreatedAt = time.Now()
	f.recorded = append(f.recorded, report)
	return nil
}

// recordingNotifier captures every trigger invocation together with a
// snapshot of what the store held at that moment, so the
// persist-before-notify ordering is directly assertable.
type recordingNotifier struct {
	repo  *fakeRepo
	calls []*ContentReport
	// persistedAtCall[i] is true if the i-th notified report was already
	// in the store when the trigger fired
	persistedAtCall []bool
	err             error
}

func (n *recordingNotifier) ReportFiled(ctx context.Context, report *ContentReport) error {
	n.calls = append(n.calls, report)
	persisted := false
	for _, r := range n.repo.recorded {
		if r.ID == report.ID {
			persisted = true
		}
	}
	n.persistedAtCall = append(n.persistedAtCall, persisted)
	return n.err
}

func TestSubmitReportPersistsThenNotifies(t *testing.T) {
	repo := &fakeRepo{nextID: 100}
	notifier := &recordingNotifier{repo: repo}
	svc := NewService(repo, notifier)

	req := &ContentReportRequest{
		Subject:            "spam",
		ContentRef:         "msg:42",
		ContentOwnerUserID: 7,
		Description:        "unsolicited ad",
		UserAgent:          "UA",
		Page:               "/messages/42",
	}

	report, err := svc.SubmitReport(context.Background(), 3, req)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	if len(repo.recorded) != 1 {
		t.Fatalf("expected 1 persisted report, got %d", len(repo.recorded))
	}
	if report.ID != 101 {
		t.Fatalf("expected assigned id 101, got %d", report.ID)
	}
	if report.ReporterUserID != 3 {
		t.Fatalf("expected reporter_user_id 3, got %d", report.ReporterUserID)
	}
	if report.Subject != "spam" || report.ContentRef != "msg:42" || report.Description != "unsolicited ad" {
		t.Fatalf("report fields not stored verbatim: %+v", report)
	}
	if !report.ContentOwnerUserID.Valid || report.ContentOwnerUserID.Int64 != 7 {
		t.Fatalf("expected content owner 7, got %+v", report.ContentOwnerUserID)
	}
	if report.UserAgent != "UA" || report.Page != "/messages/42" {
		t.Fatalf("context metadata not stored verbatim: %+v", report)
	}

	if len(notifier.calls) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifier.calls))
	}
	if notifier.calls[0].ID != 101 {
		t.Fatalf("notification must carry the assigned id, got %d", notifier.calls[0].ID)
	}
	if !notifier.persistedAtCall[0] {
		t.Fatal("notification fired before the report was persisted")
	}
}

func TestSubmitReportOmitsContentOwnerWhenZero(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &recordingNotifier{repo: repo})

	report, err := svc.SubmitReport(context.Background(), 5, &ContentReportRequest{
		Subject:    "abuse",
		ContentRef: "profile:9",
	})
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if report.ContentOwnerUserID.Valid {
		t.Fatalf("expected null content owner, got %+v", report.ContentOwnerUserID)
	}
}

func TestSubmitReportStorageFailureSkipsNotification(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	notifier := &recordingNotifier{repo: repo}
	svc := NewService(repo, notifier)

	_, err := svc.SubmitReport(context.Background(), 3, &ContentReportRequest{
		Subject:    "spam",
		ContentRef: "msg:42",
	})
	if !errors.Is(err, ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("expected zero notifications after failed commit, got %d", len(notifier.calls))
	}
}

func TestSubmitReportNotificationFailureDoesNotFailSubmission(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo, err: errors.New("smtp down")}
	svc := NewService(repo, notifier)

	report, err := svc.SubmitReport(context.Background(), 3, &ContentReportRequest{
		Subject:    "spam",
		ContentRef: "msg:42",
	})
	if err != nil {
		t.Fatalf("submission must succeed despite notification failure, got %v", err)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("expected report to stay committed, got %d rows", len(repo.recorded))
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected the trigger to have been invoked once, got %d", len(notifier.calls))
	}
	if report.ID == 0 {
		t.Fatal("expected assigned id on the returned report")
	}
}
