package models

// Account is a row of the accounts table. AccountType is kept as stored text
// and parsed when mapped to the domain.
type Account struct {
	AccountID           string `db:"account_id"`
	OrganizationID      string `db:"organization_id"`
	Name                string `db:"name"`
	AccountType         string `db:"account_type"`
	Subtype             string `db:"subtype"`
	CurrencyCode        string `db:"currency_code"`
	IsActive            bool   `db:"is_active"`
	AllowsDirectPosting bool   `db:"allows_direct_posting"`
	AuditFields
}
