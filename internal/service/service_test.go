package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/events"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/storage/sqlite"
	"github.com/mmynk/consorcio/pkg/api"
	"github.com/mmynk/consorcio/pkg/api/apiconnect"
)

// callerHeader carries the acting participant in tests, in place of a JWT.
const callerHeader = "X-Test-Participant"

func callerInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if id := req.Header().Get(callerHeader); id != "" {
				ctx = middleware.WithParticipantID(ctx, id, "")
			}
			return next(ctx, req)
		}
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	participants apiconnect.ParticipantServiceClient
	expenses     apiconnect.ExpenseServiceClient
	payments     apiconnect.PaymentServiceClient
	summary      apiconnect.SummaryServiceClient
	summarySvc   *SummaryService
	store        *sqlite.SQLiteStore
	publisher    *recordingPublisher
}

// setupTestServer serves every domain service over a temp SQLite database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	publisher := &recordingPublisher{}
	summarySvc := NewSummaryService(store, publisher)
	summarySvc.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }

	interceptors := connect.WithInterceptors(callerInterceptor())
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewParticipantServiceHandler(NewParticipantService(store), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, publisher), interceptors))
	mux.Handle(apiconnect.NewPaymentServiceHandler(NewPaymentService(store, publisher), interceptors))
	mux.Handle(apiconnect.NewSummaryServiceHandler(summarySvc, interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		participants: apiconnect.NewParticipantServiceClient(http.DefaultClient, server.URL),
		expenses:     apiconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		payments:     apiconnect.NewPaymentServiceClient(http.DefaultClient, server.URL),
		summary:      apiconnect.NewSummaryServiceClient(http.DefaultClient, server.URL),
		summarySvc:   summarySvc,
		store:        store,
		publisher:    publisher,
	}
}

// as builds a request made by the given participant.
func as[T any](participantID string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if participantID != "" {
		req.Header().Set(callerHeader, participantID)
	}
	return req
}

func (env *testEnv) mustParticipant(t *testing.T, name, email, unit string) *api.Participant {
	t.Helper()
	resp, err := env.participants.CreateParticipant(context.Background(), connect.NewRequest(&api.CreateParticipantRequest{
		Name:  name,
		Email: email,
		Unit:  unit,
	}))
	if err != nil {
		t.Fatalf("CreateParticipant(%s) failed: %v", name, err)
	}
	return resp.Msg.Participant
}

func (env *testEnv) mustExpense(t *testing.T, payer *api.Participant, amount, date, category string) *api.Expense {
	t.Helper()
	resp, err := env.expenses.CreateExpense(context.Background(), as(payer.ID, &api.CreateExpenseRequest{
		Description: "Gasto " + category,
		Amount:      amount,
		Date:        date,
		Category:    category,
		PayerID:     payer.ID,
	}))
	if err != nil {
		t.Fatalf("CreateExpense(%s) failed: %v", amount, err)
	}
	return resp.Msg.Expense
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("code = %v, want %v (err: %v)", got, code, err)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}
