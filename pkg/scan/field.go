package scan

// Field is one extracted bill/receipt field after scoring. Value is the
// normalized form ("350.75", "2025-06-12", "Enerjisa", "TRY"); Confidence is
// 0 exactly when Value is empty.
type Field struct {
	Value      string
	Confidence float64
	Evidence   []string
}

// Found reports whether the extractor produced a candidate at all.
func (f Field) Found() bool {
	return f.Value != ""
}

// ParsedField is the wire form of a Field for the field-level OCR endpoints.
type ParsedField struct {
	Value      *string  `json:"value"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

func (f Field) parsed() ParsedField {
	p := ParsedField{Confidence: f.Confidence, Evidence: f.Evidence}
	if p.Evidence == nil {
		p.Evidence = []string{}
	}
	if f.Found() {
		v := f.Value
		p.Value = &v
	}
	return p
}

// ParsedBillData carries the per-field extraction output (value, confidence,
// evidence) before gating. Consumed by the /api/ocr/bill endpoint.
type ParsedBillData struct {
	BillerName ParsedField `json:"biller_name"`
	DueDate    ParsedField `json:"due_date"`
	AmountDue  ParsedField `json:"amount_due"`
	Currency   ParsedField `json:"currency"`
}

// ParsedReceiptData is the receipt-side equivalent of ParsedBillData.
type ParsedReceiptData struct {
	StoreName   ParsedField `json:"store_name"`
	ReceiptDate ParsedField `json:"receipt_date"`
	TotalAmount ParsedField `json:"total_amount"`
	Currency    ParsedField `json:"currency"`
}
