package models

import "time"

type FiscalPeriod struct {
	PeriodID       string    `db:"period_id"`
	OrganizationID string    `db:"organization_id"`
	FiscalYear     int       `db:"fiscal_year"`
	PeriodNumber   int       `db:"period_number"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Status         string    `db:"status"`
	AuditFields
}
