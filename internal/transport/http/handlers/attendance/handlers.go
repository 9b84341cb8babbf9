package attendancehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"payrolld/internal/domain/attendance"
	"payrolld/internal/domain/validation"
	"payrolld/internal/transport/http/api"
	"payrolld/internal/transport/http/middleware"
	"payrolld/internal/transport/http/shared"
)

type Store interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*attendance.Record, error)
	Log(ctx context.Context, record *attendance.Record) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/attendance/{employeeId}", h.HandleList)
	r.Post("/attendance", h.HandleLog)
}

type recordJSON struct {
	EmployeeID  int     `json:"employeeId"`
	Date        string  `json:"date"`
	LogIn       string  `json:"logIn,omitempty"`
	LogOut      string  `json:"logOut,omitempty"`
	WorkedHours float64 `json:"workedHours"`
}

func toJSON(record *attendance.Record) recordJSON {
	out := recordJSON{
		EmployeeID:  record.EmployeeID(),
		Date:        record.Date().Format("2006-01-02"),
		WorkedHours: record.WorkedHours(),
	}
	if logIn := record.LogIn(); logIn != nil {
		out.LogIn = logIn.Format(time.RFC3339)
	}
	if logOut := record.LogOut(); logOut != nil {
		out.LogOut = logOut.Format(time.RFC3339)
	}
	return out
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employeeID, err := strconv.Atoi(chi.URLParam(r, "employeeId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employee id must be an integer", requestID)
		return
	}

	start, err := shared.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "start must be RFC3339 or YYYY-MM-DD", requestID)
		return
	}
	end, err := shared.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "end must be RFC3339 or YYYY-MM-DD", requestID)
		return
	}
	if start.IsZero() || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "start and end are required", requestID)
		return
	}

	records, err := h.Store.FindByEmployeeAndPeriod(r.Context(), employeeID, start, end)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	out := make([]recordJSON, 0, len(records))
	for _, record := range records {
		out = append(out, toJSON(record))
	}
	api.Success(w, out, requestID)
}

type logRequest struct {
	EmployeeID int    `json:"employeeId"`
	Date       string `json:"date"`
	LogIn      string `json:"logIn"`
	LogOut     string `json:"logOut"`
}

func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON body", requestID)
		return
	}

	record, err := buildRecord(req)
	if err != nil {
		api.FailDomain(w, err, requestID)
		return
	}

	if err := h.Store.Log(r.Context(), record); err != nil {
		api.FailDomain(w, err, requestID)
		return
	}
	api.Created(w, toJSON(record), requestID)
}

func buildRecord(req logRequest) (*attendance.Record, error) {
	record := attendance.NewRecord()
	if err := record.SetEmployeeID(req.EmployeeID); err != nil {
		return nil, err
	}

	date, err := shared.ParseDate(req.Date)
	if err != nil {
		return nil, validation.Fieldf("date must be RFC3339 or YYYY-MM-DD")
	}
	if err := record.SetDate(date); err != nil {
		return nil, err
	}

	if req.LogIn != "" {
		logIn, err := time.Parse(time.RFC3339, req.LogIn)
		if err != nil {
			return nil, validation.Fieldf("logIn must be RFC3339")
		}
		record.SetLogIn(&logIn)
	}
	if req.LogOut != "" {
		logOut, err := time.Parse(time.RFC3339, req.LogOut)
		if err != nil {
			return nil, validation.Fieldf("logOut must be RFC3339")
		}
		record.SetLogOut(&logOut)
	}
	return record, nil
}
