package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-report-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Monthly attendance report (statistics + calendar)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// Monthly attendance report as PDF download
	GetMonthlyReportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseMonthlyReportRequest(r *http.Request) (report.MonthlyReportRequest, error) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return report.MonthlyReportRequest{}, fmt.Errorf("invalid month parameter")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return report.MonthlyReportRequest{}, fmt.Errorf("invalid year parameter")
	}

	return report.MonthlyReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      month,
		Year:       year,
	}, nil
}

// GetMonthlyReport handles GET /reports/monthly
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseMonthlyReportRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyReportPDF handles GET /reports/monthly/pdf
func (h *reportHandlerImpl) GetMonthlyReportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseMonthlyReportRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	document, err := h.reportService.RenderMonthlyReportPDF(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-report-%s-%04d-%02d.pdf", req.EmployeeID, req.Year, req.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}
