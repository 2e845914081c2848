package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"

	"butce/pkg/ocr"
	"butce/pkg/scan"

	"github.com/gin-gonic/gin"
)

var (
	appSecret string // loaded from env APP_SHARED_SECRET
	scanner   *scan.Scanner
)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	appSecret = os.Getenv("APP_SHARED_SECRET")
	if appSecret == "" {
		log.Printf("WARN: APP_SHARED_SECRET not set; scan endpoints will reject all requests")
	}

	scanner = scan.NewScanner(buildRecognizer())

	r := gin.Default()
	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	r.Run(":" + port)
}

// buildRecognizer picks the OCR collaborator: Google Vision when a key is
// configured (or OCR_ENGINE=vision), local Tesseract otherwise.
func buildRecognizer() ocr.Recognizer {
	engine := os.Getenv("OCR_ENGINE")
	key := os.Getenv("VISION_API_KEY")
	if engine == "tesseract" || (engine == "" && key == "") {
		log.Printf("recognizer: local tesseract")
		return ocr.NewTesseractRecognizer()
	}
	if key == "" {
		log.Fatalf("OCR_ENGINE=%s requires VISION_API_KEY", engine)
	}
	log.Printf("recognizer: google vision")
	return ocr.NewVisionClient(key)
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
