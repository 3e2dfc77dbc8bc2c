package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/retail-tracker/internal/ledger"
	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"go.uber.org/zap"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.Warn("failed to write response", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))
	}
}

// writeError maps engine errors to status codes. Unexpected errors are logged
// and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs ledger.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respond(w, r, http.StatusBadRequest, verrs)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrInsufficientStock):
		http.Error(w, "Not enough stock", http.StatusConflict)
	default:
		logFailure(r, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func logFailure(r *http.Request, err error) {
	logger.Error("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
}

// dateParam reads an optional YYYY-MM-DD query parameter. Missing means the zero date.
func dateParam(r *http.Request, name string) (models.Date, error) {
	d, err := models.ParseDate(r.URL.Query().Get(name))
	if err != nil {
		return models.Date{}, ledger.ValidationErrors{{Field: name, Description: err.Error()}}
	}
	return d, nil
}

// intParam reads an optional non-negative integer query parameter.
func intParam(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, ledger.ValidationErrors{{Field: name, Description: name + " must be a non-negative integer"}}
	}
	return &v, nil
}
