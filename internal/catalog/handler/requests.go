package handler

import (
	"net/http"
	"strconv"

	"sciport/internal/domain"
	"sciport/pkg/pagination"
)

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func pageParams(r *http.Request) pagination.Params {
	return pagination.Normalize(queryInt(r, "page"), queryInt(r, "limit"))
}

func projectFilters(r *http.Request) domain.ProjectFilters {
	q := r.URL.Query()
	return domain.ProjectFilters{
		IRN:           q.Get("irn"),
		Status:        q.Get("status"),
		Region:        q.Get("region"),
		FinancingType: q.Get("financingType"),
		Priority:      q.Get("priority"),
		Applicant:     q.Get("applicant"),
		Query:         q.Get("q"),
	}
}

func employeeFilters(r *http.Request) domain.EmployeeFilters {
	q := r.URL.Query()
	return domain.EmployeeFilters{
		Region:    q.Get("region"),
		Position:  q.Get("position"),
		Degree:    q.Get("degree"),
		MinHIndex: queryFloat(r, "minHIndex"),
		MaxHIndex: queryFloat(r, "maxHIndex"),
		Query:     q.Get("q"),
	}
}

func publicationFilters(r *http.Request) domain.PublicationFilters {
	q := r.URL.Query()
	return domain.PublicationFilters{
		Year:  queryInt(r, "year"),
		Type:  q.Get("type"),
		Query: q.Get("q"),
	}
}
