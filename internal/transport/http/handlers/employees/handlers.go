package employeeshandler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payrolld/internal/domain/employee"
	"payrolld/internal/domain/validation"
	"payrolld/internal/transport/http/api"
	"payrolld/internal/transport/http/middleware"
	"payrolld/internal/transport/http/shared"
)

type Store interface {
	FindByID(ctx context.Context, employeeID int) (*employee.Employee, error)
	List(ctx context.Context) ([]*employee.Employee, error)
	Create(ctx context.Context, emp *employee.Employee) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.HandleList)
	r.Get("/employees/{id}", h.HandleGet)
	r.Post("/employees", h.HandleCreate)
}

type employeeJSON struct {
	ID                int     `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	FullName          string  `json:"fullName"`
	BirthDate         string  `json:"birthDate,omitempty"`
	Age               int     `json:"age"`
	BasicSalary       float64 `json:"basicSalary"`
	Status            string  `json:"status"`
	Position          string  `json:"position"`
	RiceSubsidy       float64 `json:"riceSubsidy"`
	PhoneAllowance    float64 `json:"phoneAllowance"`
	ClothingAllowance float64 `json:"clothingAllowance"`
	TotalAllowances   float64 `json:"totalAllowances"`
}

func toJSON(emp *employee.Employee) employeeJSON {
	out := employeeJSON{
		ID:                emp.ID(),
		FirstName:         emp.FirstName(),
		LastName:          emp.LastName(),
		FullName:          emp.FullName(),
		Age:               emp.Age(),
		BasicSalary:       emp.BasicSalary(),
		Status:            emp.Status(),
		Position:          emp.Position(),
		RiceSubsidy:       emp.RiceSubsidy(),
		PhoneAllowance:    emp.PhoneAllowance(),
		ClothingAllowance: emp.ClothingAllowance(),
		TotalAllowances:   emp.TotalAllowances(),
	}
	if birth := emp.BirthDate(); birth != nil {
		out.BirthDate = birth.Format("2006-01-02")
	}
	return out
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employees, err := h.Store.List(r.Context())
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	out := make([]employeeJSON, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toJSON(emp))
	}
	api.Success(w, out, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employee id must be an integer", requestID)
		return
	}

	emp, err := h.Store.FindByID(r.Context(), id)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	if emp == nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}
	api.Success(w, toJSON(emp), requestID)
}

type createEmployeeRequest struct {
	ID                int     `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	BirthDate         string  `json:"birthDate"`
	BasicSalary       float64 `json:"basicSalary"`
	Status            string  `json:"status"`
	Position          string  `json:"position"`
	RiceSubsidy       float64 `json:"riceSubsidy"`
	PhoneAllowance    float64 `json:"phoneAllowance"`
	ClothingAllowance float64 `json:"clothingAllowance"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}

	emp, err := buildEmployee(req)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	if err := h.Store.Create(r.Context(), emp); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Created(w, toJSON(emp), requestID)
}

func buildEmployee(req createEmployeeRequest) (*employee.Employee, error) {
	emp := employee.New()
	if err := emp.SetID(req.ID); err != nil {
		return nil, err
	}
	if err := emp.SetFirstName(req.FirstName); err != nil {
		return nil, err
	}
	if err := emp.SetLastName(req.LastName); err != nil {
		return nil, err
	}
	if req.BirthDate != "" {
		birth, err := shared.ParseDate(req.BirthDate)
		if err != nil {
			return nil, validation.Fieldf("birth date must be RFC3339 or YYYY-MM-DD")
		}
		if !birth.IsZero() {
			emp.SetBirthDate(&birth)
		}
	}
	if err := emp.SetBasicSalary(req.BasicSalary); err != nil {
		return nil, err
	}
	emp.SetStatus(req.Status)
	emp.SetPosition(req.Position)
	if err := emp.SetRiceSubsidy(req.RiceSubsidy); err != nil {
		return nil, err
	}
	if err := emp.SetPhoneAllowance(req.PhoneAllowance); err != nil {
		return nil, err
	}
	if err := emp.SetClothingAllowance(req.ClothingAllowance); err != nil {
		return nil, err
	}
	return emp, nil
}
