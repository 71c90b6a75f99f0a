package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"roi-calculator/domain"
	"roi-calculator/service"
)

type estimateRequest struct {
	Industry        string  `json:"industry"`
	CompanySize     string  `json:"companySize"`
	AnnualRevenue   float64 `json:"annualRevenue"`
	MarketingBudget float64 `json:"marketingBudget"`
	AIAdoption      string  `json:"aiAdoption"`
	PrimaryGoal     string  `json:"primaryGoal"`
	IncludeAICosts  *bool   `json:"includeAICosts"`
}

func (req estimateRequest) toInput() (domain.Input, error) {
	input := domain.NewInput()
	input.AnnualRevenue = req.AnnualRevenue
	input.MarketingBudget = req.MarketingBudget
	if req.IncludeAICosts != nil {
		input.IncludeAICosts = *req.IncludeAICosts
	}

	if req.Industry == "" {
		return input, fmt.Errorf("%w: industry", domain.ErrMissingField)
	}
	if req.CompanySize == "" {
		return input, fmt.Errorf("%w: companySize", domain.ErrMissingField)
	}

	var err error
	if input.Industry, err = domain.ParseIndustry(req.Industry); err != nil {
		return input, err
	}
	if input.CompanySize, err = domain.ParseCompanySize(req.CompanySize); err != nil {
		return input, err
	}
	if input.AIAdoption, err = domain.ParseAIAdoption(req.AIAdoption); err != nil {
		return input, err
	}
	if input.PrimaryGoal, err = domain.ParseGoal(req.PrimaryGoal); err != nil {
		return input, err
	}
	return input, nil
}

type estimateResponse struct {
	Estimate domain.EstimateRecord `json:"estimate"`
	Report   service.Report        `json:"report"`
}

type EstimateHandler struct {
	service *service.ROIService
}

func NewEstimateHandler(service *service.ROIService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

func (h *EstimateHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	record, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, estimateResponse{
		Estimate: record,
		Report:   service.BuildReport(record.Input, record.Result),
	})
}

func (h *EstimateHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, estimateResponse{
		Estimate: record,
		Report:   service.BuildReport(record.Input, record.Result),
	})
}

func (h *EstimateHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}

	records, err := h.service.List(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}
