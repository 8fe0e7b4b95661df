package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest alta de transacción manual.
type CreateTransactionRequest struct {
	CustomerID    string          `json:"customer_id"`
	Type          string          `json:"type"` // receita | despesa
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          string          `json:"date"` // YYYY-MM-DD
	DueDate       string          `json:"due_date"`
	PaymentStatus string          `json:"payment_status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	ContractID    string          `json:"contract_id"`
	RecurrenceID  string          `json:"recurrence_id"`
	AttachmentURL string          `json:"attachment_url"`
}

// UpdateTransactionRequest edición parcial de transacción.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type"`
	Amount        *decimal.Decimal `json:"amount"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Date          *string          `json:"date"`
	DueDate       *string          `json:"due_date"`
	PaymentStatus *string          `json:"payment_status"`
	PaidAmount    *decimal.Decimal `json:"paid_amount"`
	ContractID    *string          `json:"contract_id"`
	AttachmentURL *string          `json:"attachment_url"`
}

// TransactionResponse respuesta de transacción.
type TransactionResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	DueDate       string          `json:"due_date,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	SaleID        string          `json:"sale_id,omitempty"`
	ContractID    string          `json:"contract_id,omitempty"`
	RecurrenceID  string          `json:"recurrence_id,omitempty"`
	AttachmentURL string          `json:"attachment_url,omitempty"`
}

// CreateOrganizerRequest alta de organizador financiero.
type CreateOrganizerRequest struct {
	Title              string          `json:"title"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Type               string          `json:"type"`      // conta_mensal | assinatura | recebimento | outro
	Frequency          string          `json:"frequency"` // monthly | weekly
	DueDay             int             `json:"due_day"`
	Active             *bool           `json:"active"`
	CurrentInstallment int             `json:"current_installment"`
	TotalInstallments  int             `json:"total_installments"`
}

// OrganizerResponse respuesta de organizador.
type OrganizerResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Type               string          `json:"type"`
	Frequency          string          `json:"frequency"`
	DueDay             int             `json:"due_day"`
	Active             bool            `json:"active"`
	CurrentInstallment int             `json:"current_installment,omitempty"`
	TotalInstallments  int             `json:"total_installments,omitempty"`
}
