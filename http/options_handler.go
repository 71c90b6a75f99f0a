package http

import (
	"net/http"

	"roi-calculator/domain"
)

type optionsResponse struct {
	Industries   []domain.Option `json:"industries"`
	CompanySizes []domain.Option `json:"companySizes"`
	AIAdoption   []domain.Option `json:"aiAdoption"`
	Goals        []domain.Option `json:"goals"`
}

func Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, optionsResponse{
		Industries:   domain.IndustryOptions,
		CompanySizes: domain.CompanySizeOptions,
		AIAdoption:   domain.AIAdoptionOptions,
		Goals:        domain.GoalOptions,
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
