package payment

// tokenResponse is PayTR's answer to the get-token exchange.
type tokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

type CallbackForm struct {
	MerchantOID string `form:"merchant_oid" binding:"required"`
	Status      string `form:"status" binding:"required"`
	TotalAmount string `form:"total_amount" binding:"required"`
	Hash        string `form:"hash" binding:"required"`
}
