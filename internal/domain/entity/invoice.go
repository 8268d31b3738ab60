// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType discriminates the two documents generated per confirmation.
type InvoiceType string

const (
	// InvoiceTypeClient is the customer-facing invoice.
	InvoiceTypeClient InvoiceType = "CLIENT"
	// InvoiceTypeAudit is the internal audit record.
	InvoiceTypeAudit InvoiceType = "AUDIT"
)

// String returns the string representation of the InvoiceType.
func (t InvoiceType) String() string {
	return string(t)
}

// Label returns the document title printed on the rendered invoice.
func (t InvoiceType) Label() string {
	if t == InvoiceTypeClient {
		return "INVOICE"
	}

	return "AUDIT RECORD"
}

// InvoiceDetails is the immutable snapshot of order data handed to the
// renderer. Both documents of a confirmation share one snapshot, including
// the InvoiceDate, and differ only in Type.
type InvoiceDetails struct {
	OrderID          string
	CustomerName     string
	CustomerAddress  ShippingAddress
	Items            []CartItem
	TotalAmount      decimal.Decimal
	ConfirmationName string
	InvoiceDate      time.Time
	Type             InvoiceType
}
