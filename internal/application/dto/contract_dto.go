package dto

// CreateContractRequest alta de contrato (el PDF ya fue subido al storage).
type CreateContractRequest struct {
	CustomerID string `json:"customer_id"`
	Title      string `json:"title"`
	PDFURL     string `json:"pdf_url"`
}

// AttachProofRequest adjunta o reemplaza el comprobante de pago del contrato.
type AttachProofRequest struct {
	PaymentProofURL string `json:"payment_proof_url"`
}

// ContractResponse respuesta de contrato.
type ContractResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Title           string `json:"title"`
	PDFURL          string `json:"pdf_url"`
	PaymentProofURL string `json:"payment_proof_url,omitempty"`
	CreatedAt       string `json:"created_at"`
}
