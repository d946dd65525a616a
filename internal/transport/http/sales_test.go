package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JosephThuku/timberyard/internal/app"
	"github.com/JosephThuku/timberyard/internal/domain"
)

func TestHandleSales_Create(t *testing.T) {
	t.Parallel()

	successSale := domain.Sale{
		ID:        2,
		TimberID:  1,
		Quantity:  3,
		Price:     250,
		CreatedAt: 1700000000,
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"timber_id":1,"quantity":3,"price":250}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"timber_id":1`,
		},
		{
			name:           "invalid json",
			body:           `{"timber_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"invalid_request_body"`,
		},
		{
			name:           "referenced timber missing",
			body:           `{"timber_id":9999,"quantity":1,"price":10}`,
			serviceErr:     &domain.NotFoundError{Kind: "timber", ID: 9999},
			expectedStatus: http.StatusNotFound,
			expectedSubstr: `"code":"timber_not_found"`,
		},
		{
			name:           "zero price",
			body:           `{"timber_id":1,"quantity":1,"price":0}`,
			serviceErr:     &domain.ValidationError{Field: "price"},
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"invalid_price"`,
		},
		{
			name:           "zero quantity",
			body:           `{"timber_id":1,"quantity":0,"price":10}`,
			serviceErr:     &domain.ValidationError{Field: "quantity"},
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"invalid_quantity"`,
		},
		{
			name:           "storage fault",
			body:           `{"timber_id":1,"quantity":1,"price":10}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: `"code":"internal_error"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubSaleService{sale: successSale, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			HandleSales(svc).ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleSales_List(t *testing.T) {
	t.Parallel()

	t.Run("passes parsed filter to the service", func(t *testing.T) {
		t.Parallel()
		svc := &stubSaleService{}
		req := httptest.NewRequest(http.MethodGet, "/sales?timber_id=4&price=100", nil)
		rec := httptest.NewRecorder()

		HandleSales(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.filter.TimberID == nil || *svc.filter.TimberID != 4 {
			t.Fatalf("expected timber_id filter 4, got %+v", svc.filter.TimberID)
		}
		if svc.filter.Price == nil || *svc.filter.Price != 100 {
			t.Fatalf("expected price filter 100, got %+v", svc.filter.Price)
		}
		if svc.filter.Quantity != nil {
			t.Fatalf("expected no quantity filter, got %+v", svc.filter.Quantity)
		}
	})

	t.Run("rejects non-numeric filter value", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/sales?price=cheap", nil)
		rec := httptest.NewRecorder()

		HandleSales(&stubSaleService{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), codeInvalidFilter) {
			t.Fatalf("expected invalid_filter code, got %q", rec.Body.String())
		}
	})

	t.Run("encodes empty result as empty array", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/sales", nil)
		rec := httptest.NewRecorder()

		HandleSales(&stubSaleService{}).ServeHTTP(rec, req)

		if strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
		}
	})
}

func TestHandleSaleByID(t *testing.T) {
	t.Parallel()

	updatedAt := uint64(1700000500)
	sale := domain.Sale{
		ID:        2,
		TimberID:  1,
		Quantity:  3,
		Price:     250,
		CreatedAt: 1700000000,
		UpdatedAt: &updatedAt,
	}

	t.Run("GET returns the record with updated_at", func(t *testing.T) {
		t.Parallel()
		svc := &stubSaleService{sale: sale}
		req := httptest.NewRequest(http.MethodGet, "/sales/2", nil)
		rec := httptest.NewRecorder()

		HandleSaleByID(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var resp saleResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.ID != 2 || resp.UpdatedAt == nil || *resp.UpdatedAt != updatedAt {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("GET missing sale maps to 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubSaleService{err: &domain.NotFoundError{Kind: "sale", ID: 7}}
		req := httptest.NewRequest(http.MethodGet, "/sales/7", nil)
		rec := httptest.NewRecorder()

		HandleSaleByID(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), codeSaleNotFound) {
			t.Fatalf("expected sale_not_found code, got %q", rec.Body.String())
		}
	})

	t.Run("PUT takes quantity and price only", func(t *testing.T) {
		t.Parallel()
		svc := &stubSaleService{sale: sale}
		req := httptest.NewRequest(http.MethodPut, "/sales/2", bytes.NewBufferString(`{"quantity":4,"price":300}`))
		rec := httptest.NewRecorder()

		HandleSaleByID(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.update.Quantity != 4 || svc.update.Price != 300 {
			t.Fatalf("unexpected update forwarded: %+v", svc.update)
		}
	})

	t.Run("PUT rejects a timber_id field", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPut, "/sales/2", bytes.NewBufferString(`{"timber_id":5,"quantity":4,"price":300}`))
		rec := httptest.NewRecorder()

		HandleSaleByID(&stubSaleService{sale: sale}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), codeInvalidRequestBody) {
			t.Fatalf("expected invalid_request_body code, got %q", rec.Body.String())
		}
	})

	t.Run("DELETE echoes the removed record", func(t *testing.T) {
		t.Parallel()
		svc := &stubSaleService{sale: sale}
		req := httptest.NewRequest(http.MethodDelete, "/sales/2", nil)
		rec := httptest.NewRecorder()

		HandleSaleByID(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"price":250`) {
			t.Fatalf("expected deleted record in body, got %q", rec.Body.String())
		}
	})

	t.Run("invalid id is rejected before dispatch", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodDelete, "/sales/two", nil)
		rec := httptest.NewRecorder()

		HandleSaleByID(&stubSaleService{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

type stubSaleService struct {
	sale domain.Sale
	err  error

	id     uint64
	input  app.SaleInput
	update app.SaleUpdateInput
	filter domain.SaleFilter
}

func (s *stubSaleService) Create(_ context.Context, in app.SaleInput) (domain.Sale, error) {
	s.input = in
	return s.sale, s.err
}

func (s *stubSaleService) Get(_ context.Context, id uint64) (domain.Sale, error) {
	s.id = id
	return s.sale, s.err
}

func (s *stubSaleService) Update(_ context.Context, id uint64, in app.SaleUpdateInput) (domain.Sale, error) {
	s.id = id
	s.update = in
	return s.sale, s.err
}

func (s *stubSaleService) Delete(_ context.Context, id uint64) (domain.Sale, error) {
	s.id = id
	return s.sale, s.err
}

func (s *stubSaleService) Query(_ context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	s.filter = filter
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Sale{}, nil
}
