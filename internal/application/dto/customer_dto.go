package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
