package payrollhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"payrolld/internal/domain/payroll"
	"payrolld/internal/domain/reports"
	"payrolld/internal/transport/http/api"
	"payrolld/internal/transport/http/middleware"
	"payrolld/internal/transport/http/shared"
)

// Store is everything the payroll endpoints need: the engine's read
// collaborators plus result persistence, which stays on this side of the
// engine boundary.
type Store interface {
	payroll.StoreAPI
	SaveResult(ctx context.Context, result *payroll.Result) error
	ResultsForPeriod(ctx context.Context, start, end time.Time) ([]*payroll.Result, error)
}

type Handler struct {
	Store  Store
	Engine *payroll.Engine
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store, Engine: payroll.NewEngine(store)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payroll/calculate", h.HandleCalculate)
	r.Get("/payroll/results", h.HandleResults)
	r.Get("/payroll/payslip/{employeeId}", h.HandlePayslip)
	r.Get("/payroll/register.xlsx", h.HandleRegister)
}

type resultJSON struct {
	EmployeeID      int     `json:"employeeId"`
	PeriodStart     string  `json:"periodStart"`
	PeriodEnd       string  `json:"periodEnd"`
	MonthlyRate     float64 `json:"monthlyRate"`
	DaysWorked      int     `json:"daysWorked"`
	OvertimeHours   float64 `json:"overtimeHours"`
	GrossPay        float64 `json:"grossPay"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`
}

func toJSON(result *payroll.Result) resultJSON {
	return resultJSON{
		EmployeeID:      result.EmployeeID(),
		PeriodStart:     result.PeriodStart().Format("2006-01-02"),
		PeriodEnd:       result.PeriodEnd().Format("2006-01-02"),
		MonthlyRate:     result.MonthlyRate(),
		DaysWorked:      result.DaysWorked(),
		OvertimeHours:   result.OvertimeHours(),
		GrossPay:        result.GrossPay(),
		TotalDeductions: result.TotalDeductions(),
		NetPay:          result.NetPay(),
	}
}

type calculateRequest struct {
	EmployeeID  int    `json:"employeeId"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
}

func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}

	start, err := shared.ParseDate(req.PeriodStart)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "periodStart must be RFC3339 or YYYY-MM-DD", requestID)
		return
	}
	end, err := shared.ParseDate(req.PeriodEnd)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "periodEnd must be RFC3339 or YYYY-MM-DD", requestID)
		return
	}

	result, err := h.Engine.CalculatePayroll(r.Context(), req.EmployeeID, start, end)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	// The engine never persists; storing the result is this caller's job.
	if err := h.Store.SaveResult(r.Context(), result); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Success(w, toJSON(result), requestID)
}

func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	start, end, ok := h.periodParams(w, r, requestID)
	if !ok {
		return
	}

	results, err := h.Store.ResultsForPeriod(r.Context(), start, end)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	out := make([]resultJSON, 0, len(results))
	for _, result := range results {
		out = append(out, toJSON(result))
	}
	api.Success(w, out, requestID)
}

func (h *Handler) HandlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.Atoi(chi.URLParam(r, "employeeId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employee id must be an integer", requestID)
		return
	}

	start, end, ok := h.periodParams(w, r, requestID)
	if !ok {
		return
	}

	result, err := h.Engine.CalculatePayroll(r.Context(), employeeID, start, end)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	emp, err := h.Store.FindEmployeeByID(r.Context(), employeeID)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	if emp == nil {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
		return
	}

	pdf, err := payroll.RenderPayslipPDF(emp, result)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=payslip-%d-%s.pdf", employeeID, start.Format("2006-01-02")))
	_, _ = w.Write(pdf)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	start, end, ok := h.periodParams(w, r, requestID)
	if !ok {
		return
	}

	results, err := h.Store.ResultsForPeriod(r.Context(), start, end)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	book, err := reports.PayrollRegisterXLSX(results)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=payroll-register-%s.xlsx", start.Format("2006-01-02")))
	_, _ = w.Write(book)
}

func (h *Handler) periodParams(w http.ResponseWriter, r *http.Request, requestID string) (time.Time, time.Time, bool) {
	start, err := shared.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "start must be RFC3339 or YYYY-MM-DD", requestID)
		return time.Time{}, time.Time{}, false
	}
	end, err := shared.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "end must be RFC3339 or YYYY-MM-DD", requestID)
		return time.Time{}, time.Time{}, false
	}
	if start.IsZero() || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "start and end are required", requestID)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
