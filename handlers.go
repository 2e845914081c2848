package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"butce/pkg/ocr"
	"butce/pkg/scan"

	"github.com/gin-gonic/gin"
)

// ocrRawTextLimit caps the rawText echo on the field-level OCR endpoints.
const ocrRawTextLimit = 2000

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/", rootHandler)
	api.GET("/health", healthHandler)
	api.GET("/categories", func(c *gin.Context) { c.JSON(http.StatusOK, billCategories) })
	api.GET("/category-groups", func(c *gin.Context) { c.JSON(http.StatusOK, billCategoryGroups) })
	api.GET("/receipt-categories", func(c *gin.Context) { c.JSON(http.StatusOK, receiptCategories) })
	api.GET("/receipt-category-groups", func(c *gin.Context) { c.JSON(http.StatusOK, receiptCategoryGroups) })

	scanGroup := api.Group("", appSecretMiddleware())
	scanGroup.POST("/ocr/bill", ocrBillHandler)
	scanGroup.POST("/ocr/receipt", ocrReceiptHandler)
	scanGroup.POST("/bills/scan", scanBillHandler)
	scanGroup.POST("/receipts/scan", scanReceiptHandler)
}

// appSecretMiddleware gates the scan endpoints behind the shared app secret
// the mobile client sends. This is request gating, not user auth.
func appSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if appSecret == "" || c.GetHeader("x-app-secret") != appSecret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Bütçe Asistanı API", "status": "ok"})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type ocrImageRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MimeType    string `json:"mimeType"`
}

// decode strips an optional data-URL prefix and returns the image bytes.
func (r *ocrImageRequest) decode() ([]byte, string, error) {
	b64 := r.ImageBase64
	if strings.HasPrefix(b64, "data:") {
		if i := strings.Index(b64, ","); i != -1 {
			b64 = b64[i+1:]
		}
	}
	img, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", err
	}
	mime := r.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	return img, mime, nil
}

type ocrBillResponse struct {
	RawText string              `json:"rawText"`
	Parsed  scan.ParsedBillData `json:"parsed"`
}

type ocrReceiptResponse struct {
	RawText string                 `json:"rawText"`
	Parsed  scan.ParsedReceiptData `json:"parsed"`
}

func bindImage(c *gin.Context) ([]byte, string, bool) {
	var req ocrImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", false
	}
	img, mime, err := req.decode()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image"})
		return nil, "", false
	}
	return img, mime, true
}

// ocrBillHandler returns the ungated per-field extraction (value,
// confidence, evidence); the mobile form applies its own fill policy on top
// of /bills/scan, while this endpoint feeds the review screen.
func ocrBillHandler(c *gin.Context) {
	img, mime, ok := bindImage(c)
	if !ok {
		return
	}
	text, err := scanner.Recognize(c.Request.Context(), img, mime)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("ocr bill: recognize failed: %v", err)
		}
		c.JSON(http.StatusOK, ocrBillResponse{RawText: "", Parsed: emptyBillFields()})
		return
	}
	log.Printf("ocr bill: recognized %d chars snippet=%q", len(text), ocr.Snippet(text, 120))
	c.JSON(http.StatusOK, ocrBillResponse{
		RawText: clip(text, ocrRawTextLimit),
		Parsed:  scan.ParseBillFields(text, time.Now()),
	})
}

func ocrReceiptHandler(c *gin.Context) {
	img, mime, ok := bindImage(c)
	if !ok {
		return
	}
	text, err := scanner.Recognize(c.Request.Context(), img, mime)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("ocr receipt: recognize failed: %v", err)
		}
		c.JSON(http.StatusOK, ocrReceiptResponse{RawText: "", Parsed: emptyReceiptFields()})
		return
	}
	c.JSON(http.StatusOK, ocrReceiptResponse{
		RawText: clip(text, ocrRawTextLimit),
		Parsed:  scan.ParseReceiptFields(text, time.Now()),
	})
}

// scanBillHandler is the form-fill endpoint: gated values, warnings in
// stable order, uniform result shape on every failure.
func scanBillHandler(c *gin.Context) {
	img, mime, ok := bindImage(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scanner.ScanBill(c.Request.Context(), img, mime))
}

func scanReceiptHandler(c *gin.Context) {
	img, mime, ok := bindImage(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scanner.ScanReceipt(c.Request.Context(), img, mime))
}

func emptyBillFields() scan.ParsedBillData {
	e := scan.ParsedField{Evidence: []string{}}
	return scan.ParsedBillData{BillerName: e, DueDate: e, AmountDue: e, Currency: e}
}

func emptyReceiptFields() scan.ParsedReceiptData {
	e := scan.ParsedField{Evidence: []string{}}
	return scan.ParsedReceiptData{StoreName: e, ReceiptDate: e, TotalAmount: e, Currency: e}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
