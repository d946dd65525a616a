package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JosephThuku/timberyard/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidID          = "invalid_id"
	codeInvalidFilter      = "invalid_filter"
	codeInvalidCategory    = "invalid_category"
	codeInvalidDimension   = "invalid_dimension"
	codeInvalidQuantity    = "invalid_quantity"
	codeInvalidPrice       = "invalid_price"
	codeTimberNotFound     = "timber_not_found"
	codeSaleNotFound       = "sale_not_found"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps domain errors onto HTTP statuses and stable codes.
// Anything unrecognized is a storage fault and surfaces as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, validationCode(ve.Field), ve.Error())
		return
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		code := codeNotFound
		switch nf.Kind {
		case "timber":
			code = codeTimberNotFound
		case "sale":
			code = codeSaleNotFound
		}
		writeError(w, http.StatusNotFound, code, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func validationCode(field string) string {
	switch field {
	case "category":
		return codeInvalidCategory
	case "dimension":
		return codeInvalidDimension
	case "quantity":
		return codeInvalidQuantity
	case "price":
		return codeInvalidPrice
	}
	return codeInvalidRequestBody
}
