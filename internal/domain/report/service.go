package report

import (
	"context"
)

type Service interface {
	// Monthly derives the whole month's attendance and aggregates it per
	// employee.
	Monthly(ctx context.Context, req MonthlyRequest) (MonthlyReport, error)

	// MonthlyXLSX renders the same report as an Excel workbook.
	MonthlyXLSX(ctx context.Context, req MonthlyRequest) ([]byte, error)
}
