package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/JosephThuku/timberyard/internal/app"
	"github.com/JosephThuku/timberyard/internal/domain"
)

// SaleService is the minimal interface the sale endpoints need.
type SaleService interface {
	Create(ctx context.Context, in app.SaleInput) (domain.Sale, error)
	Get(ctx context.Context, id uint64) (domain.Sale, error)
	Update(ctx context.Context, id uint64, in app.SaleUpdateInput) (domain.Sale, error)
	Delete(ctx context.Context, id uint64) (domain.Sale, error)
	Query(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)
}

// HandleSales returns the handler for the /sales collection: POST creates,
// GET lists with optional timber_id/quantity/price filters.
func HandleSales(svc SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			filter, err := parseSaleFilter(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidFilter, err.Error())
				return
			}
			sales, err := svc.Query(r.Context(), filter)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			resp := make([]saleResponse, 0, len(sales))
			for _, s := range sales {
				resp = append(resp, newSaleResponse(s))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req saleRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			sale, err := svc.Create(r.Context(), app.SaleInput{
				TimberID: req.TimberID,
				Quantity: req.Quantity,
				Price:    req.Price,
			})
			if err != nil {
				writeServiceError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newSaleResponse(sale))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleSaleByID returns the handler for /sales/{id}. PUT accepts quantity
// and price only; the timber reference is fixed at creation.
func HandleSaleByID(svc SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDPath(r.URL.Path, "sales")
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidID, "invalid id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			sale, err := svc.Get(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newSaleResponse(sale))
			return
		case http.MethodPut:
			var req saleUpdateRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			sale, err := svc.Update(r.Context(), id, app.SaleUpdateInput{
				Quantity: req.Quantity,
				Price:    req.Price,
			})
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newSaleResponse(sale))
			return
		case http.MethodDelete:
			sale, err := svc.Delete(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newSaleResponse(sale))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

type saleRequest struct {
	TimberID uint64 `json:"timber_id"`
	Quantity uint64 `json:"quantity"`
	Price    uint64 `json:"price"`
}

type saleUpdateRequest struct {
	Quantity uint64 `json:"quantity"`
	Price    uint64 `json:"price"`
}

type saleResponse struct {
	ID        uint64  `json:"id"`
	TimberID  uint64  `json:"timber_id"`
	Quantity  uint64  `json:"quantity"`
	Price     uint64  `json:"price"`
	CreatedAt uint64  `json:"created_at"`
	UpdatedAt *uint64 `json:"updated_at,omitempty"`
}

func newSaleResponse(s domain.Sale) saleResponse {
	return saleResponse{
		ID:        s.ID,
		TimberID:  s.TimberID,
		Quantity:  s.Quantity,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func parseSaleFilter(r *http.Request) (domain.SaleFilter, error) {
	var filter domain.SaleFilter
	q := r.URL.Query()
	for _, f := range []struct {
		name string
		dst  **uint64
	}{
		{"timber_id", &filter.TimberID},
		{"quantity", &filter.Quantity},
		{"price", &filter.Price},
	} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return domain.SaleFilter{}, err
		}
		*f.dst = &n
	}
	return filter, nil
}
