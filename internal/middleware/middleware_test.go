package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/models"
)

type ping struct{}

func echoIdentity(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
	return connect.NewResponse(&ping{}), nil
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	token, err := jwtManager.Generate(models.NewUser("p1", "maria@email.com", "hash"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode connect.Code
		wantID   string
	}{
		{name: "valid token", header: "Bearer " + token, wantID: "p1"},
		{name: "missing header", header: "", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + token, wantCode: connect.CodeUnauthenticated},
		{name: "garbage token", header: "Bearer not-a-jwt", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				seen = GetParticipantID(ctx)
				return echoIdentity(ctx, req)
			}

			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := RequireAuth(jwtManager)(next)(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("code = %v, want %v", connect.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen != tt.wantID {
				t.Errorf("participant id = %q, want %q", seen, tt.wantID)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetParticipantID(ctx)
		return echoIdentity(ctx, req)
	}

	req := connect.NewRequest(&ping{})
	req.Header().Set("Authorization", "Bearer broken")
	if _, err := OptionalAuth(jwtManager)(next)(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "" {
		t.Errorf("participant id = %q, want empty", seen)
	}
}

func TestWithParticipantID(t *testing.T) {
	ctx := WithParticipantID(context.Background(), "p2", "carlos@email.com")
	if got := GetParticipantID(ctx); got != "p2" {
		t.Errorf("GetParticipantID() = %q, want p2", got)
	}
	if got := GetEmail(ctx); got != "carlos@email.com" {
		t.Errorf("GetEmail() = %q, want carlos@email.com", got)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := NewMetrics()
	intercept := m.Interceptor()

	ok := intercept(echoIdentity)
	failing := intercept(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	})

	for range 2 {
		if _, err := ok(context.Background(), connect.NewRequest(&ping{})); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := failing(context.Background(), connect.NewRequest(&ping{})); err == nil {
		t.Fatal("expected error")
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("", "ok")); got != 2 {
		t.Errorf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("", "not_found")); got != 1 {
		t.Errorf("not_found count = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "consorcio_rpc_requests_total") {
		t.Error("metrics output does not include the request counter")
	}
}

func TestCORS(t *testing.T) {
	handler := CORS("https://consorcio.example", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://consorcio.example" {
		t.Errorf("allow origin = %q", got)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
