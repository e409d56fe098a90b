package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/directory"
	"nomina/internal/domain/payroll"
	"nomina/internal/transport/http/api"
	"nomina/internal/transport/http/middleware"
	"nomina/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Roster  *directory.Store
}

func NewHandler(service *payroll.Service, roster *directory.Store) *Handler {
	return &Handler{Service: service, Roster: roster}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/periods", h.handleListPeriods)
		r.Post("/periods", h.handleCreatePeriod)
		r.Get("/periods/{periodID}", h.handleGetPeriod)
		r.Delete("/periods/{periodID}", h.handleDeletePeriod)
		r.Post("/periods/{periodID}/generate", h.handleGenerateEntries)
		r.Post("/periods/{periodID}/process", h.handleProcessPayroll)
		r.Get("/periods/{periodID}/entries", h.handleListEntries)
		r.Get("/periods/{periodID}/export/register", h.handleExportRegister)
		r.Get("/entries/{entryID}", h.handleGetEntry)
		r.Put("/entries/{entryID}", h.handleUpdateEntry)
		r.Get("/estimate", h.handleEstimate)
	})
}

type createPeriodPayload struct {
	PeriodName  string `json:"periodName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	PaymentDate string `json:"paymentDate"`
	Notes       string `json:"notes"`
}

func (h *Handler) handleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createPeriodPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("periodName", payload.PeriodName, "period name is required")
	startDate, _ := v.Date("startDate", payload.StartDate)
	endDate, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", startDate, "endDate", endDate)
	paymentDate, _ := v.OptionalDate("paymentDate", payload.PaymentDate)
	if v.Reject(w, requestID) {
		return
	}

	params := payroll.CreatePeriodParams{
		PeriodName: payload.PeriodName,
		StartDate:  startDate,
		EndDate:    endDate,
		Notes:      payload.Notes,
	}
	if !paymentDate.IsZero() {
		params.PaymentDate = &paymentDate
	}

	period, err := h.Service.CreatePeriod(r.Context(), params)
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Created(w, periodToView(period), requestID)
}

func (h *Handler) handleListPeriods(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	summaries, total, err := h.Service.ListPeriods(r.Context(), page.Limit, page.Offset)
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}

	views := make([]periodSummaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, summaryToView(summary))
	}
	api.Success(w, map[string]any{"periods": views, "total": total}, requestID)
}

func (h *Handler) handleGetPeriod(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	detail, err := h.Service.GetPeriod(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}

	entries := make([]entryView, 0, len(detail.Entries))
	for _, entry := range detail.Entries {
		entries = append(entries, entryToView(entry))
	}
	api.Success(w, map[string]any{"period": periodToView(detail.Period), "entries": entries}, requestID)
}

func (h *Handler) handleDeletePeriod(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := h.Service.DeletePeriod(r.Context(), chi.URLParam(r, "periodID")); err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) handleGenerateEntries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	created, err := h.Service.GenerateEntries(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, map[string]int{"entriesCreated": created}, requestID)
}

type processPayload struct {
	PaymentDate string `json:"paymentDate"`
}

func (h *Handler) handleProcessPayroll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload processPayload
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
			return
		}
	}

	v := shared.NewValidator()
	paymentDate, _ := v.OptionalDate("paymentDate", payload.PaymentDate)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.ProcessPayroll(r.Context(), chi.URLParam(r, "periodID"), paymentDate)
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, processResultToView(result), requestID)
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	detail, err := h.Service.GetPeriod(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}

	entries := make([]entryView, 0, len(detail.Entries))
	for _, entry := range detail.Entries {
		entries = append(entries, entryToView(entry))
	}
	api.Success(w, entries, requestID)
}

func (h *Handler) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	entry, err := h.Service.GetEntry(r.Context(), chi.URLParam(r, "entryID"))
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, entryToView(entry), requestID)
}

type entryUpdatePayload struct {
	BaseSalary      moneyField `json:"baseSalary"`
	OvertimeHours   moneyField `json:"overtimeHours"`
	OvertimePay     moneyField `json:"overtimePay"`
	Bonuses         moneyField `json:"bonuses"`
	Commissions     moneyField `json:"commissions"`
	OtherEarnings   moneyField `json:"otherEarnings"`
	ISRTax          moneyField `json:"isrTax"`
	IMSSEmployee    moneyField `json:"imssEmployee"`
	Infonavit       moneyField `json:"infonavit"`
	LoansDeduction  moneyField `json:"loansDeduction"`
	OtherDeductions moneyField `json:"otherDeductions"`
	Notes           string     `json:"notes"`
}

func (h *Handler) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload entryUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	changes := payroll.EntryChanges{
		BaseSalary:      v.Amount("baseSalary", payload.BaseSalary.raw),
		OvertimeHours:   v.Amount("overtimeHours", payload.OvertimeHours.raw),
		OvertimePay:     v.Amount("overtimePay", payload.OvertimePay.raw),
		Bonuses:         v.Amount("bonuses", payload.Bonuses.raw),
		Commissions:     v.Amount("commissions", payload.Commissions.raw),
		OtherEarnings:   v.Amount("otherEarnings", payload.OtherEarnings.raw),
		ISRTax:          v.Amount("isrTax", payload.ISRTax.raw),
		IMSSEmployee:    v.Amount("imssEmployee", payload.IMSSEmployee.raw),
		Infonavit:       v.Amount("infonavit", payload.Infonavit.raw),
		LoansDeduction:  v.Amount("loansDeduction", payload.LoansDeduction.raw),
		OtherDeductions: v.Amount("otherDeductions", payload.OtherDeductions.raw),
		Notes:           payload.Notes,
	}
	if v.Reject(w, requestID) {
		return
	}

	entry, err := h.Service.UpdateEntry(r.Context(), chi.URLParam(r, "entryID"), changes)
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	api.Success(w, entryToView(entry), requestID)
}

func (h *Handler) handleExportRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	detail, err := h.Service.GetPeriod(r.Context(), chi.URLParam(r, "periodID"))
	if err != nil {
		h.writeDomainError(w, err, requestID)
		return
	}
	if len(detail.Entries) == 0 {
		api.Fail(w, http.StatusConflict, "conflict", "period has no entries to export", requestID)
		return
	}

	pdfBytes, err := payroll.BuildRegisterPDF(detail.Period, detail.Entries)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_export_failed", "failed to render register", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", registerFileName(detail.Period)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	estimate, err := h.Roster.EstimateBiweekly(r.Context())
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "dependency_error", "employee directory unavailable", requestID)
		return
	}
	api.Success(w, estimate, requestID)
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, payroll.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, payroll.ErrConflict):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case errors.Is(err, payroll.ErrDependency):
		api.Fail(w, http.StatusBadGateway, "dependency_error", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "payroll operation failed", requestID)
	}
}

func registerFileName(period payroll.Period) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(period.PeriodName), " ", "-"))
	if name == "" {
		name = period.ID
	}
	return "registro-" + name + ".pdf"
}
