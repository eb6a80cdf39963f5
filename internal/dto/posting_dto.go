package dto

// PostingResponse acknowledges a journal write or rewrite.
type PostingResponse struct {
	TenantID      string `json:"tenantId"`
	TransactionID string `json:"transactionId"`
	Kind          string `json:"kind"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
