package scan

// BillScanResult is the single output shape of a bill scan. Every failure
// mode is folded into it; no error escapes to the caller. Warnings keep a
// stable order: biller, amount, date.
type BillScanResult struct {
	Success    bool     `json:"success"`
	BillerName string   `json:"billerName,omitempty"`
	DueDate    string   `json:"dueDate,omitempty"` // ISO 8601, YYYY-MM-DD
	Amount     float64  `json:"amount,omitempty"`  // 2 fractional digits, (0, 50000)
	Currency   string   `json:"currency,omitempty"`
	Category   string   `json:"category,omitempty"` // derived from biller, not scored
	RawText    string   `json:"rawText,omitempty"`  // truncated echo for review
	Warnings   []string `json:"warnings"`
	Error      string   `json:"error,omitempty"`
}

// ReceiptScanResult mirrors BillScanResult for purchase receipts. Warnings
// keep the order store, amount, date.
type ReceiptScanResult struct {
	Success     bool     `json:"success"`
	StoreName   string   `json:"storeName,omitempty"`
	ReceiptDate string   `json:"receiptDate,omitempty"`
	Amount      float64  `json:"amount,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Category    string   `json:"category,omitempty"`
	RawText     string   `json:"rawText,omitempty"`
	Warnings    []string `json:"warnings"`
	Error       string   `json:"error,omitempty"`
}
