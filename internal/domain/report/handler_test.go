package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homeroam/homeroam-api/internal/middleware"
)

func newTestHandler(repo *fakeRepo, notifier *recordingNotifier) *Handler {
	return NewHandler(NewService(repo, notifier))
}

func postReport(t *testing.T, h *Handler, body []byte, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	h.Submit(rr, req)
	return rr
}

func TestSubmitHandlerHappyPath(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	body, _ := json.Marshal(ContentReportRequest{
		Subject:            "spam",
		ContentRef:         "msg:42",
		ContentOwnerUserID: 7,
		Description:        "unsolicited ad",
		UserAgent:          "UA",
		Page:               "/messages/42",
	})

	rr := postReport(t, h, body, 3)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success envelope")
	}
	if len(out.Data) != 0 {
		t.Fatalf("expected empty acknowledgment, got data=%s", out.Data)
	}

	if len(repo.recorded) != 1 {
		t.Fatalf("expected one persisted report, got %d", len(repo.recorded))
	}
	if repo.recorded[0].ReporterUserID != 3 {
		t.Fatalf("expected reporter 3, got %d", repo.recorded[0].ReporterUserID)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.calls))
	}
}

func TestSubmitHandlerRequiresAuthentication(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	body, _ := json.Marshal(ContentReportRequest{Subject: "spam", ContentRef: "msg:42"})
	rr := postReport(t, h, body, 0)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if len(repo.recorded) != 0 || len(notifier.calls) != 0 {
		t.Fatal("unauthenticated request must not persist or notify")
	}
}

func TestSubmitHandlerIgnoresClientSuppliedReporter(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	// An attacker smuggling a reporter id of the right shape into the
	// body must not influence the persisted row
	body := []byte(`{"subject":"spam","content_ref":"msg:42","reporter_user_id":999}`)
	rr := postReport(t, h, body, 3)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if repo.recorded[0].ReporterUserID != 3 {
		t.Fatalf("expected reporter from auth context (3), got %d", repo.recorded[0].ReporterUserID)
	}
}

func TestSubmitHandlerValidatesInput(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	body, _ := json.Marshal(ContentReportRequest{ContentRef: "msg:42"}) // missing subject
	rr := postReport(t, h, body, 3)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	if len(repo.recorded) != 0 {
		t.Fatal("invalid request must not be persisted")
	}
}

func TestSubmitHandlerStorageFailure(t *testing.T) {
	repo := &fakeRepo{err: errFakeConnectivity}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	body, _ := json.Marshal(ContentReportRequest{Subject: "spam", ContentRef: "msg:42"})
	rr := postReport(t, h, body, 3)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var out struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Error == nil || out.Error.Code != "STORAGE_ERROR" {
		t.Fatalf("expected STORAGE_ERROR, got %+v", out.Error)
	}
	if len(notifier.calls) != 0 {
		t.Fatalf("expected zero notifications, got %d", len(notifier.calls))
	}
}

func TestSubmitHandlerFallsBackToTransportUserAgent(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{repo: repo}
	h := newTestHandler(repo, notifier)

	body, _ := json.Marshal(ContentReportRequest{Subject: "spam", ContentRef: "msg:42"})
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "transport-ua/1.0")
	req = req.WithContext(middleware.WithUserID(req.Context(), 3))
	rr := httptest.NewRecorder()

	h.Submit(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if repo.recorded[0].UserAgent != "transport-ua/1.0" {
		t.Fatalf("expected transport user agent fallback, got %q", repo.recorded[0].UserAgent)
	}
}
