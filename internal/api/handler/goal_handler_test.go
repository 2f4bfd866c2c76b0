package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/goaltracker/goal-tracker-api/internal/api/middleware"
	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

type stubGoalService struct {
	createFn func(ctx context.Context, ownerID, text string) (*domain.Goal, error)
	getFn    func(ctx context.Context, ownerID, goalID string) (*domain.Goal, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.Goal, error)
	updateFn func(ctx context.Context, ownerID, goalID, text string) (*domain.Goal, error)
	deleteFn func(ctx context.Context, ownerID, goalID string) error
}

func (s *stubGoalService) Create(ctx context.Context, ownerID, text string) (*domain.Goal, error) {
	return s.createFn(ctx, ownerID, text)
}

func (s *stubGoalService) Get(ctx context.Context, ownerID, goalID string) (*domain.Goal, error) {
	return s.getFn(ctx, ownerID, goalID)
}

func (s *stubGoalService) List(ctx context.Context, ownerID string) ([]*domain.Goal, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubGoalService) Update(ctx context.Context, ownerID, goalID, text string) (*domain.Goal, error) {
	return s.updateFn(ctx, ownerID, goalID, text)
}

func (s *stubGoalService) Delete(ctx context.Context, ownerID, goalID string) error {
	return s.deleteFn(ctx, ownerID, goalID)
}

// authedContext builds an echo context carrying an already-resolved user, as
// the access guard would leave it.
func authedContext(t *testing.T, method, path, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserKey, user)
	}
	return c, rec
}

var alice = &domain.User{ID: "u_alice", Name: "alice", Email: "a@x.com"}

func TestGoalHandler_Create_Success(t *testing.T) {
	stub := &stubGoalService{
		createFn: func(_ context.Context, ownerID, text string) (*domain.Goal, error) {
			if ownerID != alice.ID {
				t.Fatalf("owner must come from context, got %q", ownerID)
			}
			return &domain.Goal{ID: "g1", UserID: ownerID, Text: text}, nil
		},
	}
	h := NewGoalHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/api/goals", `{"text":"learn go"}`, alice)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var goal domain.Goal
	if err := json.Unmarshal(rec.Body.Bytes(), &goal); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if goal.ID != "g1" || goal.UserID != alice.ID || goal.Text != "learn go" {
		t.Fatalf("unexpected goal: %+v", goal)
	}
}

func TestGoalHandler_Create_EmptyText(t *testing.T) {
	stub := &stubGoalService{
		createFn: func(context.Context, string, string) (*domain.Goal, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewGoalHandler(stub)

	c, _ := authedContext(t, http.MethodPost, "/api/goals", `{"text":""}`, alice)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGoalHandler_Create_NoAuthenticatedUser(t *testing.T) {
	stub := &stubGoalService{
		createFn: func(context.Context, string, string) (*domain.Goal, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewGoalHandler(stub)

	// No guard ran: context carries no user. The handler fails closed.
	c, _ := authedContext(t, http.MethodPost, "/api/goals", `{"text":"x"}`, nil)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGoalHandler_List_OwnerScoped(t *testing.T) {
	stub := &stubGoalService{
		listFn: func(_ context.Context, ownerID string) ([]*domain.Goal, error) {
			if ownerID != alice.ID {
				t.Fatalf("list must be scoped to the caller, got %q", ownerID)
			}
			return []*domain.Goal{{ID: "g1", UserID: ownerID, Text: "mine"}}, nil
		},
	}
	h := NewGoalHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/api/goals", "", alice)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var goals []domain.Goal
	if err := json.Unmarshal(rec.Body.Bytes(), &goals); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(goals) != 1 || goals[0].UserID != alice.ID {
		t.Fatalf("unexpected list: %+v", goals)
	}
}

func TestGoalHandler_Update_OwnershipDenied(t *testing.T) {
	stub := &stubGoalService{
		updateFn: func(context.Context, string, string, string) (*domain.Goal, error) {
			return nil, domain.ErrNotAuthorized
		},
	}
	h := NewGoalHandler(stub)

	c, _ := authedContext(t, http.MethodPut, "/api/goals/abc", `{"text":"hijack"}`, alice)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	// The sentinel propagates; the central error handler renders 401.
	if err := h.Update(c); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestGoalHandler_Delete_Success(t *testing.T) {
	stub := &stubGoalService{
		deleteFn: func(_ context.Context, ownerID, goalID string) error {
			if ownerID != alice.ID || goalID != "g9" {
				t.Fatalf("unexpected args: %s %s", ownerID, goalID)
			}
			return nil
		},
	}
	h := NewGoalHandler(stub)

	c, rec := authedContext(t, http.MethodDelete, "/api/goals/g9", "", alice)
	c.SetParamNames("id")
	c.SetParamValues("g9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"g9"`) {
		t.Fatalf("expected deleted id in body, got %s", rec.Body.String())
	}
}

func TestGoalHandler_Get_NotFound(t *testing.T) {
	stub := &stubGoalService{
		getFn: func(context.Context, string, string) (*domain.Goal, error) {
			return nil, domain.ErrGoalNotFound
		},
	}
	h := NewGoalHandler(stub)

	c, _ := authedContext(t, http.MethodGet, "/api/goals/zzz", "", alice)
	c.SetParamNames("id")
	c.SetParamValues("zzz")

	if err := h.Get(c); err != domain.ErrGoalNotFound {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}
