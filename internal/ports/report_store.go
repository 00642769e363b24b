package ports

import "github.com/aalvaropc/solidkit/internal/domain"

// ReportStore persists scenario reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
