// Package v1handler implements the v1 HTTP API for managing subdomain
// enumerations.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"subenum/internal/enumerator"
	"subenum/pkg/domain"
	"subenum/pkg/logger"
	"subenum/pkg/serrors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the client does not provide one.
const DefaultLimit = 20

// MaxLimit caps the page size a client may request.
const MaxLimit = 100

// Deps carries the dependencies the handler needs to serve requests.
type Deps struct {
	Enumerator enumerator.Enumerator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 enumeration routes on the given router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/enumerations", h.CreateEnumeration).Methods(http.MethodPost)
	r.HandleFunc("/enumerations", h.ListEnumerations).Methods(http.MethodGet)
	r.HandleFunc("/enumerations/{id}", h.GetEnumeration).Methods(http.MethodGet)
	r.HandleFunc("/enumerations/{id}", h.DeleteEnumeration).Methods(http.MethodDelete)
}

// Enumeration is the wire representation of a single enumeration.
type Enumeration struct {
	ID        uuid.UUID          `json:"id"`
	Domain    string             `json:"domain"`
	Status    string             `json:"status"`
	Result    *EnumerationResult `json:"result,omitempty"`
	Attempts  uint               `json:"attempts"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

// EnumerationResult is the wire representation of a discovery result.
type EnumerationResult struct {
	Subdomains   []string `json:"subdomains"`
	Certificates int      `json:"certificates"`
}

// EnumerationList is the wire representation of a page of enumerations.
type EnumerationList struct {
	Items      []Enumeration `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

// CreateEnumerationRequest is the payload for creating a new enumeration.
type CreateEnumerationRequest struct {
	Domain string `json:"domain"`
}

// errorResponse is the wire representation of an error.
type errorResponse struct {
	Error string `json:"error"`
}

func domainEnumerationToV1(in *domain.Enumeration) Enumeration {
	out := Enumeration{
		ID:        uuid.UUID(in.ID),
		Domain:    in.Domain,
		Status:    string(in.Status),
		Attempts:  in.Attempts,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		t := in.UpdatedAt
		out.UpdatedAt = &t
	}
	if in.Status == domain.EnumerationStatusCompleted {
		subdomains := in.Result.Subdomains
		if subdomains == nil {
			subdomains = []string{}
		}
		out.Result = &EnumerationResult{
			Subdomains:   subdomains,
			Certificates: in.Result.Certificates,
		}
	}

	return out
}

// statusFromError maps semantic error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// never leak internals to the client
		logger.Error(r.Context(), "request failed", zap.Error(err))
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// CreateEnumeration schedules a new enumeration based on the provided
// request payload. It responds with 202 Accepted unless a cached result
// completed the enumeration immediately.
func (h *Handler) CreateEnumeration(w http.ResponseWriter, r *http.Request) {
	var req CreateEnumerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	enum, err := h.deps.Enumerator.Enqueue(r.Context(), req.Domain)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, domainEnumerationToV1(enum))
}

// ListEnumerations returns a paginated list of enumerations, optionally
// filtered by domain and status.
func (h *Handler) ListEnumerations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := parseLimit(raw)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		limit = parsed
	}

	enums, nextCursor, err := h.deps.Enumerator.Enumerations(r.Context(),
		q.Get("domain"),
		domain.EnumerationStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	items := make([]Enumeration, 0, len(enums))
	for i := range enums {
		items = append(items, domainEnumerationToV1(&enums[i]))
	}

	writeJSON(w, http.StatusOK, EnumerationList{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// GetEnumeration returns details of an enumeration by ID.
func (h *Handler) GetEnumeration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid enumeration id"))

		return
	}

	enum, err := h.deps.Enumerator.Result(r.Context(), domain.EnumerationID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, domainEnumerationToV1(enum))
}

// DeleteEnumeration deletes an enumeration by ID.
func (h *Handler) DeleteEnumeration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid enumeration id"))

		return
	}

	if err := h.deps.Enumerator.Delete(r.Context(), domain.EnumerationID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseLimit(raw string) (uint, error) {
	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
	}
	if limit > MaxLimit {
		return MaxLimit, nil
	}

	return uint(limit), nil
}
