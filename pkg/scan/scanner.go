package scan

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"butce/pkg/ocr"
)

// minTextLen guards against logo shots and blurry frames: anything shorter
// than this after trimming is treated as an unreadable image.
const minTextLen = 10

// rawTextLimit caps the rawText echo in scan results.
const rawTextLimit = 500

// User-facing messages (the app is Turkish-market).
const (
	msgNoImage         = "Görüntü alınamadı, lütfen tekrar deneyin"
	msgUnreadable      = "Metin bulunamadı. Faturanın net bir fotoğrafını çektiğinizden emin olun"
	msgOCRTimeout      = "Tarama zaman aşımına uğradı, lütfen tekrar deneyin"
	msgOCRUnauthorized = "Tarama servisine erişilemedi (yetkilendirme hatası)"
	msgOCRFailed       = "Tarama sırasında bir hata oluştu, lütfen tekrar deneyin"
	msgPartialBill     = "Fatura bilgileri tam okunamadı, lütfen alanları elle doldurun"
	msgPartialReceipt  = "Fiş bilgileri tam okunamadı, lütfen alanları elle doldurun"
)

// Field labels used in verify warnings.
const (
	labelBiller      = "Fatura kesen kurum"
	labelAmount      = "Tutar"
	labelDueDate     = "Son ödeme tarihi"
	labelStore       = "Mağaza"
	labelReceiptDate = "Fiş tarihi"
)

// Scanner orchestrates one scan: recognize, extract, gate, assemble. It
// holds no mutable state, so independent scans may run concurrently.
type Scanner struct {
	rec ocr.Recognizer
	now func() time.Time
}

// NewScanner wires a scanner to a text recognizer.
func NewScanner(rec ocr.Recognizer) *Scanner {
	return &Scanner{rec: rec, now: time.Now}
}

// ScanBill runs the full pipeline on one bill photo. All failures come back
// inside the result; no error escapes.
func (s *Scanner) ScanBill(ctx context.Context, image []byte, mimeType string) BillScanResult {
	text, fail := s.recognize(ctx, image, mimeType)
	if fail != "" {
		return BillScanResult{Success: false, Error: fail, Warnings: []string{}}
	}
	return ParseBillText(text, s.now())
}

// ScanReceipt is the receipt-side pipeline.
func (s *Scanner) ScanReceipt(ctx context.Context, image []byte, mimeType string) ReceiptScanResult {
	text, fail := s.recognize(ctx, image, mimeType)
	if fail != "" {
		return ReceiptScanResult{Success: false, Error: fail, Warnings: []string{}}
	}
	return ParseReceiptText(text, s.now())
}

// Recognize exposes the raw text for the field-level OCR endpoints.
func (s *Scanner) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	return s.rec.Recognize(ctx, image, mimeType)
}

// recognize acquires text and converts every failure into a user-facing
// message. Empty string means the pipeline may continue.
func (s *Scanner) recognize(ctx context.Context, image []byte, mimeType string) (string, string) {
	if len(image) == 0 {
		return "", msgNoImage
	}
	text, err := s.rec.Recognize(ctx, image, mimeType)
	if err != nil {
		log.Printf("scan: recognize failed: %v", err)
		switch {
		case errors.Is(err, ocr.ErrTimeout) || errors.Is(err, context.DeadlineExceeded):
			return "", msgOCRTimeout
		case errors.Is(err, ocr.ErrUnauthorized):
			return "", msgOCRUnauthorized
		case errors.Is(err, ocr.ErrNoImage):
			return "", msgNoImage
		default:
			return "", msgOCRFailed
		}
	}
	if len(strings.TrimSpace(text)) < minTextLen {
		return "", msgUnreadable
	}
	return text, ""
}

// ParseBillText is the pure core: raw OCR text plus "now" in, gated result
// out. Extractors are independent over the same immutable text; warnings
// keep the fixed order biller, amount, date.
func ParseBillText(raw string, now time.Time) BillScanResult {
	t := NewText(raw)
	billerF, category := extractBiller(t)
	amountV, amountF := extractAmount(t)
	dateF := extractDueDate(t, now)
	currencyF := detectCurrency(t)

	res := BillScanResult{
		Success:  true,
		RawText:  truncate(raw, rawTextLimit),
		Warnings: []string{},
	}
	accepted := 0
	if d := Decide(billerF); d.Accept {
		res.BillerName = billerF.Value
		res.Category = category
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelBiller, billerF.Value))
		}
	}
	if d := Decide(amountF); d.Accept {
		res.Amount = amountV
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelAmount, amountF.Value))
		}
	}
	if d := Decide(dateF); d.Accept {
		res.DueDate = dateF.Value
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelDueDate, dateF.Value))
		}
	}
	if Decide(currencyF).Accept {
		res.Currency = currencyF.Value
	}
	if accepted == 0 {
		// soft shortfall: text was there, nothing passed the gate
		res.Error = msgPartialBill
	}
	return res
}

// ParseReceiptText mirrors ParseBillText for purchase receipts; warnings
// keep the order store, amount, date.
func ParseReceiptText(raw string, now time.Time) ReceiptScanResult {
	t := NewText(raw)
	storeF := extractStore(t)
	amountV, amountF := extractReceiptTotal(t)
	dateF := extractReceiptDate(t, now)
	currencyF := detectCurrency(t)

	res := ReceiptScanResult{
		Success:  true,
		RawText:  truncate(raw, rawTextLimit),
		Warnings: []string{},
	}
	accepted := 0
	if d := Decide(storeF); d.Accept {
		res.StoreName = storeF.Value
		res.Category = detectReceiptCategory(storeF.Value, t)
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelStore, storeF.Value))
		}
	}
	if d := Decide(amountF); d.Accept {
		res.Amount = amountV
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelAmount, amountF.Value))
		}
	}
	if d := Decide(dateF); d.Accept {
		res.ReceiptDate = dateF.Value
		accepted++
		if d.Level == LevelMedium {
			res.Warnings = append(res.Warnings, verifyWarning(labelReceiptDate, dateF.Value))
		}
	}
	if Decide(currencyF).Accept {
		res.Currency = currencyF.Value
	}
	if accepted == 0 {
		res.Error = msgPartialReceipt
	}
	return res
}

// ParseBillFields exposes the ungated per-field view (value, confidence,
// evidence) used by the /api/ocr/bill endpoint.
func ParseBillFields(raw string, now time.Time) ParsedBillData {
	t := NewText(raw)
	billerF, _ := extractBiller(t)
	_, amountF := extractAmount(t)
	dateF := extractDueDate(t, now)
	currencyF := detectCurrency(t)
	return ParsedBillData{
		BillerName: billerF.parsed(),
		DueDate:    dateF.parsed(),
		AmountDue:  amountF.parsed(),
		Currency:   currencyF.parsed(),
	}
}

// ParseReceiptFields is the receipt-side field view for /api/ocr/receipt.
func ParseReceiptFields(raw string, now time.Time) ParsedReceiptData {
	t := NewText(raw)
	storeF := extractStore(t)
	_, amountF := extractReceiptTotal(t)
	dateF := extractReceiptDate(t, now)
	currencyF := detectCurrency(t)
	return ParsedReceiptData{
		StoreName:   storeF.parsed(),
		ReceiptDate: dateF.parsed(),
		TotalAmount: amountF.parsed(),
		Currency:    currencyF.parsed(),
	}
}
