package models

import "time"

// Company is the organization a user belongs to. A fresh deployment seeds a
// single company record from the configured company identity.
type Company struct {
	// CompanyID is the internal unique identifier of the company.
	CompanyID int64 `json:"id"`

	// Name is the legal company name.
	Name string `json:"name"`

	// Address is the free-form postal address.
	Address string `json:"address"`

	// Phone is the primary contact phone number.
	Phone string `json:"phone"`

	// Email is the primary contact address.
	Email string `json:"email"`

	// TaxID is the fiscal identifier of the company.
	TaxID string `json:"tax_id"`

	// BaseCurrency is the ISO 4217 code amounts are reported in.
	BaseCurrency string `json:"base_currency"`

	// Status is the lifecycle state of the company record.
	Status string `json:"status"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}
