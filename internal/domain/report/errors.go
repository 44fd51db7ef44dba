package report

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrInvalidMonth           = errors.New("month must be between 1 and 12")
	ErrInvalidYear            = errors.New("year must be a valid year")
	ErrReportGenerationFailed = errors.New("failed to generate report")
	ErrPDFRenderFailed        = errors.New("failed to render report PDF")
)
