package domain

import "time"

// PeriodStatus gates posting into a fiscal period.
type PeriodStatus string

const (
	PeriodOpen      PeriodStatus = "OPEN"
	PeriodSoftClose PeriodStatus = "SOFT_CLOSE"
	PeriodClosed    PeriodStatus = "CLOSED"
)

// Valid reports whether s is a known period status.
func (s PeriodStatus) Valid() bool {
	return s == PeriodOpen || s == PeriodSoftClose || s == PeriodClosed
}

// FiscalPeriod is a numbered date range within a fiscal year.
type FiscalPeriod struct {
	PeriodID       string       `json:"periodID"`
	OrganizationID string       `json:"organizationID"`
	FiscalYear     int          `json:"fiscalYear"`
	PeriodNumber   int          `json:"periodNumber"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether date falls inside the period, both ends inclusive.
func (p FiscalPeriod) Contains(date time.Time) bool {
	d := date.UTC().Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.UTC().Truncate(24*time.Hour)) && !d.After(p.EndDate.UTC().Truncate(24*time.Hour))
}
