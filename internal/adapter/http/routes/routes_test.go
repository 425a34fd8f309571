package routes

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"os_service_api/internal/adapter/http/handlers"
	"os_service_api/internal/adapter/http/handlers/mocks"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
	"os_service_api/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase, *mocks.MockIInsumoUseCase) {
	t.Helper()
	return newTestRouterWithLimits(t, config.RateLimitConfig{})
}

func newTestRouterWithLimits(t *testing.T, limits config.RateLimitConfig) (*gin.Engine, *mocks.MockIServiceOrderUseCase, *mocks.MockIInsumoUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIServiceOrderUseCase(ctrl)
	insumos := mocks.NewMockIInsumoUseCase(ctrl)

	r := NewRouter(Handlers{
		ServiceOrders: handlers.NewServiceOrderHandler(orders),
		Insumos:       handlers.NewInsumoHandler(insumos),
	}, limits, zerolog.New(io.Discard))
	return r, orders, insumos
}

func TestPing(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestActorHeaderReachesUseCase(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ usecase.CreateServiceOrderInput) (entities.ServiceOrder, error) {
			if got := usecase.ActorFromContext(ctx); got != "mecanico-7" {
				t.Fatalf("expected actor mecanico-7, got %q", got)
			}
			return entities.ServiceOrder{ID: "os-1", Status: entities.StatusReceived}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"cliente_id":"c","veiculo_id":"v","servico_id":"s"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, "mecanico-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestStockReturnRoute(t *testing.T) {
	r, _, insumos := newTestRouter(t)
	insumos.EXPECT().ReturnInsumosToStock(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/stock/returns", bytes.NewBufferString(`{"insumos":[{"estoque_id":"oleo","quantidade":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRecoveryReturns500(t *testing.T) {
	r, orders, _ := newTestRouter(t)
	orders.EXPECT().GetByID(gomock.Any(), "boom").DoAndReturn(
		func(context.Context, string) (entities.ServiceOrder, error) {
			panic("unexpected")
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "req-42" {
		t.Fatalf("expected request id req-42, got %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("expected a generated request id")
	}
}

func TestRateLimit(t *testing.T) {
	r, _, _ := newTestRouterWithLimits(t, config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests must pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the burst, got %v", codes)
	}
}

func TestRateLimiterDropsIdleClients(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	first := l.get("10.0.0.1")
	l.get("10.0.0.2")
	if l.get("10.0.0.1") != first {
		t.Fatalf("expected the same bucket for a known client")
	}

	now = now.Add(limiterIdleTTL / 2)
	l.get("10.0.0.2")
	now = now.Add(limiterIdleTTL/2 + time.Second)
	l.sweep(now)

	if _, ok := l.limiters.Load("10.0.0.1"); ok {
		t.Fatalf("expected idle client to be dropped")
	}
	if _, ok := l.limiters.Load("10.0.0.2"); !ok {
		t.Fatalf("expected recently seen client to be kept")
	}
}

func TestRateLimiterSweepsPeriodically(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.get("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Second)
	for i := 1; i < limiterSweepEvery; i++ {
		l.get("10.0.0.2")
	}

	if _, ok := l.limiters.Load("10.0.0.1"); ok {
		t.Fatalf("expected the sweep to run within %d lookups", limiterSweepEvery)
	}
}
