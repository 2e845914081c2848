// Command process scans a directory of bill photos, runs the extraction
// pipeline on each and writes a <name>.scan.json sidecar next to the image.
// With -watch it keeps processing files as they appear.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"butce/pkg/ocr"
	"butce/pkg/scan"
)

// global flags (parsed in main)
var (
	verbose  bool
	receipts bool
)

var scanner *scan.Scanner

func main() {
	dirFlag := flag.String("dir", "inbox", "directory to scan for bill images")
	watch := flag.Bool("watch", false, "Watch directory for new files")
	workers := flag.Int("workers", 0, "Worker pool size (default NumCPU)")
	dryRun := flag.Bool("dry-run", false, "List candidate files without running OCR or writing sidecars")
	flag.BoolVar(&verbose, "verbose", false, "Verbose per-file logging")
	flag.BoolVar(&receipts, "receipts", false, "Treat images as purchase receipts instead of bills")
	flag.Parse()

	files := listImageFiles(*dirFlag)
	if *dryRun {
		log.Printf("Dry-run: %d candidate files in %s", len(files), *dirFlag)
		for _, f := range files {
			log.Printf("  %s", f)
		}
		return
	}

	scanner = scan.NewScanner(buildRecognizer())

	log.Printf("Scanning %d files (workers=%d)", len(files), effectiveWorkers(*workers))
	runWorkerPool(*dirFlag, files, effectiveWorkers(*workers))

	if *watch {
		if err := watchDirectory(*dirFlag, effectiveWorkers(*workers)); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func buildRecognizer() ocr.Recognizer {
	if key := os.Getenv("VISION_API_KEY"); key != "" {
		return ocr.NewVisionClient(key)
	}
	return ocr.NewTesseractRecognizer()
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func isSupportedExt(name string) bool {
	_, ok := extMime[strings.ToLower(filepath.Ext(name))]
	return ok
}

func sidecarPath(dir, name string) string {
	return filepath.Join(dir, name+".scan.json")
}

// runWorkerPool fans filenames out to workers; extra channels keep feeding
// it in watch mode.
func runWorkerPool(dir string, initial []string, workers int, extraCh ...<-chan string) {
	fileCh := make(chan string, 1024)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				processSingleFile(dir, name)
			}
		}()
	}
	go func() {
		for _, f := range initial {
			fileCh <- f
		}
		for _, ch := range extraCh {
			go func(c <-chan string) {
				for n := range c {
					fileCh <- n
				}
			}(ch)
		}
		if len(extraCh) == 0 {
			close(fileCh)
		}
	}()
	if len(extraCh) == 0 {
		wg.Wait()
	}
}

// processSingleFile is idempotent: a file with an existing sidecar is
// skipped, so re-runs and watch races are harmless.
func processSingleFile(dir, name string) {
	out := sidecarPath(dir, name)
	if _, err := os.Stat(out); err == nil {
		logV("SKIP sidecar exists %s", name)
		return
	}
	img, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		log.Printf("ERROR read %s: %v", name, err)
		return
	}
	mime := extMime[strings.ToLower(filepath.Ext(name))]

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var payload any
	if receipts {
		res := scanner.ScanReceipt(ctx, img, mime)
		log.Printf("RECEIPT %s success=%v store=%q amount=%s warnings=%d",
			name, res.Success, res.StoreName, scan.FormatAmount(res.Amount), len(res.Warnings))
		payload = res
	} else {
		res := scanner.ScanBill(ctx, img, mime)
		log.Printf("BILL %s success=%v biller=%q amount=%s due=%s warnings=%d",
			name, res.Success, res.BillerName, scan.FormatAmount(res.Amount), res.DueDate, len(res.Warnings))
		payload = res
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Printf("ERROR marshal %s: %v", name, err)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Printf("ERROR write sidecar %s: %v", out, err)
	}
}

func watchDirectory(dir string, workers int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", dir)

	fileCh := make(chan string, 256)
	go func() {
		// simple debounce map of pending files
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					close(fileCh)
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create {
					name := filepath.Base(ev.Name)
					if !isSupportedExt(name) {
						continue
					}
					pending[name] = time.Now()
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond { // stable
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					close(fileCh)
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()

	go runWorkerPool(dir, nil, workers, fileCh)
	// block forever (Ctrl+C to exit)
	select {}
}
