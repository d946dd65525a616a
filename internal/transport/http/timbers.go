package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/JosephThuku/timberyard/internal/app"
	"github.com/JosephThuku/timberyard/internal/domain"
)

// TimberService is the minimal interface the timber endpoints need.
type TimberService interface {
	Create(ctx context.Context, in app.TimberInput) (domain.Timber, error)
	Get(ctx context.Context, id uint64) (domain.Timber, error)
	Update(ctx context.Context, id uint64, in app.TimberInput) (domain.Timber, error)
	Delete(ctx context.Context, id uint64) (domain.Timber, error)
	Query(ctx context.Context, filter domain.TimberFilter) ([]domain.Timber, error)
}

// HandleTimbers returns the handler for the /timbers collection: POST
// creates, GET lists with optional category/dimension/quantity filters.
func HandleTimbers(svc TimberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			filter, err := parseTimberFilter(r)
			if err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidFilter, err.Error())
				return
			}
			timbers, err := svc.Query(r.Context(), filter)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			resp := make([]timberResponse, 0, len(timbers))
			for _, t := range timbers {
				resp = append(resp, newTimberResponse(t))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req timberRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			timber, err := svc.Create(r.Context(), app.TimberInput{
				Category:  domain.Category(req.Category),
				Dimension: domain.Dimension(req.Dimension),
				Quantity:  req.Quantity,
			})
			if err != nil {
				writeServiceError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newTimberResponse(timber))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleTimberByID returns the handler for /timbers/{id}: GET reads, PUT
// replaces the mutable fields, DELETE removes and echoes the record.
func HandleTimberByID(svc TimberService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDPath(r.URL.Path, "timbers")
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidID, "invalid id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			timber, err := svc.Get(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newTimberResponse(timber))
			return
		case http.MethodPut:
			var req timberRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			timber, err := svc.Update(r.Context(), id, app.TimberInput{
				Category:  domain.Category(req.Category),
				Dimension: domain.Dimension(req.Dimension),
				Quantity:  req.Quantity,
			})
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newTimberResponse(timber))
			return
		case http.MethodDelete:
			timber, err := svc.Delete(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(newTimberResponse(timber))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

type timberRequest struct {
	Category  string `json:"category"`
	Dimension string `json:"dimension"`
	Quantity  uint64 `json:"quantity"`
}

type timberResponse struct {
	ID        uint64  `json:"id"`
	Category  string  `json:"category"`
	Dimension string  `json:"dimension"`
	Quantity  uint64  `json:"quantity"`
	CreatedAt uint64  `json:"created_at"`
	UpdatedAt *uint64 `json:"updated_at,omitempty"`
}

func newTimberResponse(t domain.Timber) timberResponse {
	return timberResponse{
		ID:        t.ID,
		Category:  string(t.Category),
		Dimension: string(t.Dimension),
		Quantity:  t.Quantity,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func parseTimberFilter(r *http.Request) (domain.TimberFilter, error) {
	var filter domain.TimberFilter
	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		c := domain.Category(v)
		filter.Category = &c
	}
	if v := q.Get("dimension"); v != "" {
		d := domain.Dimension(v)
		filter.Dimension = &d
	}
	if v := q.Get("quantity"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return domain.TimberFilter{}, err
		}
		filter.Quantity = &n
	}
	return filter, nil
}

// parseIDPath extracts the numeric id from /{collection}/{id}.
func parseIDPath(path, collection string) (uint64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != collection || parts[1] == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
