package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"roi-calculator/domain"
	"roi-calculator/service"
)

type setFieldRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sessionResponse struct {
	Session *domain.Collector `json:"session"`
	Ready   bool              `json:"ready"`
	Report  *service.Report   `json:"report,omitempty"`
}

func newSessionResponse(c *domain.Collector) sessionResponse {
	resp := sessionResponse{Session: c, Ready: c.Ready()}
	if c.Result != nil {
		report := service.BuildReport(c.Input, *c.Result)
		resp.Report = &report
	}
	return resp
}

type SessionHandler struct {
	service *service.SessionService
}

func NewSessionHandler(service *service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Create(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, newSessionResponse(c))
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newSessionResponse(c))
}

func (h *SessionHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	c, err := h.service.SetField(r.Context(), chi.URLParam(r, "id"), req.Name, req.Value)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newSessionResponse(c))
}

func (h *SessionHandler) Compute(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Compute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newSessionResponse(c))
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newSessionResponse(c))
}
