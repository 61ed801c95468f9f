package queries

import (
	"context"
	"log/slog"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type RevenueReportQuery struct {
	Month string
}

type RevenueReportResult struct {
	Report ports.RevenueReport
}

type RevenueReportUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

// Execute aggregates completed ledger entries for one calendar month.
func (u RevenueReportUseCase) Execute(ctx context.Context, query RevenueReportQuery) (RevenueReportResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if _, err := time.Parse("2006-01", query.Month); err != nil {
		return RevenueReportResult{}, domainerrors.ErrInvalidReportMonth
	}

	report, err := u.Ledger.BuildMonthlyReport(ctx, query.Month)
	if err != nil {
		logger.Error("revenue report failed",
			"event", "revenue_report_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"month", query.Month,
			"error", err.Error(),
		)
		return RevenueReportResult{}, err
	}
	return RevenueReportResult{Report: report}, nil
}
