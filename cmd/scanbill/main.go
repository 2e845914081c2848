// Command scanbill runs the scan pipeline on a single image and prints the
// result JSON. Handy for checking extraction quality on sample photos.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"butce/pkg/ocr"
	"butce/pkg/scan"
)

func main() {
	receipt := flag.Bool("receipt", false, "parse as purchase receipt instead of bill")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: scanbill [-receipt] <image>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)
	img, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	var rec ocr.Recognizer
	if key := os.Getenv("VISION_API_KEY"); key != "" {
		rec = ocr.NewVisionClient(key)
	} else {
		rec = ocr.NewTesseractRecognizer()
	}
	s := scan.NewScanner(rec)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	mime := "image/jpeg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		mime = "image/png"
	}

	var out any
	if *receipt {
		out = s.ScanReceipt(ctx, img, mime)
	} else {
		out = s.ScanBill(ctx, img, mime)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(data))
}
