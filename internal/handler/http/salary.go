package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wintararaj-cmd/Attendance/internal/domain/salary"
	"github.com/wintararaj-cmd/Attendance/internal/handler/http/response"
)

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	structureService salary.StructureService
}

func NewSalaryHandler(structureService salary.StructureService) SalaryHandler {
	return &salaryHandlerImpl{structureService: structureService}
}

func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.structureService.GetStructure(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req salary.UpsertStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.structureService.UpsertStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure saved", result)
}
