package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	analyticsdomain "github.com/stocklight/stocklight/internal/analytics/domain"
	"github.com/stocklight/stocklight/internal/config"
	productdomain "github.com/stocklight/stocklight/internal/product/domain"
	historydomain "github.com/stocklight/stocklight/internal/stockhistory/domain"
	"go.uber.org/zap"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]productdomain.Response, error)
	createFn func(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Response, error)
	updateFn func(ctx context.Context, id string, req productdomain.UpdateRequest) (*productdomain.Response, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context) ([]productdomain.Response, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Create(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Response, error) {
	return s.createFn(ctx, req)
}

func (s *stubProductService) Update(ctx context.Context, id string, req productdomain.UpdateRequest) (*productdomain.Response, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubHistoryService struct {
	queryFn func(ctx context.Context, req historydomain.QueryRequest) ([]historydomain.Response, error)
}

func (s *stubHistoryService) LogChange(ctx context.Context, change historydomain.ChangeInput) error {
	return nil
}

func (s *stubHistoryService) Query(ctx context.Context, req historydomain.QueryRequest) ([]historydomain.Response, error) {
	return s.queryFn(ctx, req)
}

type stubAnalyticsService struct {
	summaryFn func(ctx context.Context) (*analyticsdomain.Summary, error)
}

func (s *stubAnalyticsService) Summary(ctx context.Context) (*analyticsdomain.Summary, error) {
	return s.summaryFn(ctx)
}

func newTestServer(t *testing.T, products *stubProductService, history *stubHistoryService, analytics *stubAnalyticsService) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	return NewServer(ServerParams{
		Gin:          gin.New(),
		Cfg:          config.Config{Environment: "test"},
		Log:          zap.NewNop(),
		ProductSvc:   products,
		HistorySvc:   history,
		AnalyticsSvc: analytics,
	})
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestCreateProductReturns201(t *testing.T) {
	products := &stubProductService{
		createFn: func(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Response, error) {
			if req.Name != "Mouse" || req.SKU != "WM-001" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return &productdomain.Response{ID: "1", Name: req.Name, SKU: "WM-001", Status: productdomain.StatusInStock}, nil
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPost, "/products",
		`{"name":"Mouse","sku":"WM-001","price":29.99,"stock":10,"minStock":2}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp productdomain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateProductMalformedBody(t *testing.T) {
	s := newTestServer(t, &stubProductService{}, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPost, "/products", `{"name":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateProductValidationError(t *testing.T) {
	products := &stubProductService{
		createFn: func(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Response, error) {
			return nil, productdomain.NewValidationError("", "All fields are required")
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPost, "/products", `{"name":"Mouse"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "All fields are required" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestCreateProductSKUConflict(t *testing.T) {
	products := &stubProductService{
		createFn: func(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Response, error) {
			return nil, productdomain.ErrSKUConflict
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPost, "/products",
		`{"name":"Mouse","sku":"WM-001","price":1,"stock":1,"minStock":1}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "SKU must be unique") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	products := &stubProductService{
		updateFn: func(ctx context.Context, id string, req productdomain.UpdateRequest) (*productdomain.Response, error) {
			return nil, productdomain.ErrProductNotFound
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPut, "/products/42", `{"stock":5}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUpdateProductInvalidID(t *testing.T) {
	products := &stubProductService{
		updateFn: func(ctx context.Context, id string, req productdomain.UpdateRequest) (*productdomain.Response, error) {
			return nil, productdomain.ErrInvalidID
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodPut, "/products/not-an-id", `{"stock":5}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid product ID") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDeleteProduct(t *testing.T) {
	products := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "42" {
				t.Fatalf("expected id 42, got %s", id)
			}
			return nil
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodDelete, "/products/42", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Product deleted successfully") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyticsSummaryRoute(t *testing.T) {
	analytics := &stubAnalyticsService{
		summaryFn: func(ctx context.Context) (*analyticsdomain.Summary, error) {
			return &analyticsdomain.Summary{
				TotalProducts:   2,
				LowStockItems:   []productdomain.Response{},
				OutOfStockItems: []productdomain.Response{},
			}, nil
		},
	}
	products := &stubProductService{
		updateFn: func(ctx context.Context, id string, req productdomain.UpdateRequest) (*productdomain.Response, error) {
			t.Fatal("analytics path must not hit the product handler")
			return nil, nil
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, analytics)

	w := doRequest(s, http.MethodGet, "/products/analytics/summary", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalProducts":2`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestStockHistoryRoute(t *testing.T) {
	history := &stubHistoryService{
		queryFn: func(ctx context.Context, req historydomain.QueryRequest) ([]historydomain.Response, error) {
			if req.Limit != 5 || req.ProductID != "7" {
				t.Fatalf("unexpected query: %+v", req)
			}
			return []historydomain.Response{}, nil
		},
	}
	s := newTestServer(t, &stubProductService{}, history, &stubAnalyticsService{})

	w := doRequest(s, http.MethodGet, "/products/stock-history?limit=5&productId=7", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStockHistoryInvalidLimit(t *testing.T) {
	s := newTestServer(t, &stubProductService{}, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodGet, "/products/stock-history?limit=abc", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListProducts(t *testing.T) {
	products := &stubProductService{
		listFn: func(ctx context.Context) ([]productdomain.Response, error) {
			return []productdomain.Response{{ID: "1", Name: "Mouse"}}, nil
		},
	}
	s := newTestServer(t, products, &stubHistoryService{}, &stubAnalyticsService{})

	w := doRequest(s, http.MethodGet, "/products", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []productdomain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Mouse" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
