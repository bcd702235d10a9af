package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glowpage/backend/internal/domain"
)

// Artifact file names written per pipeline run
const (
	ProductPageFile = "product_page.json"
	FAQFile         = "faq.json"
	ComparisonFile  = "comparison_page.json"
)

// Writer persists the generated page artifacts as indented JSON files.
type Writer struct {
	outDir string
}

// NewWriter creates a writer targeting outDir. The directory is created on
// first write.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// WriteArtifacts writes product_page.json, faq.json, and
// comparison_page.json. Returns a map of logical artifact names to the
// written file paths.
func (w *Writer) WriteArtifacts(pages *domain.GeneratedPages) (map[string]string, error) {
	if pages == nil {
		return nil, fmt.Errorf("nil pages")
	}

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", w.outDir, err)
	}

	paths := map[string]string{}

	productPath, err := w.writeJSON(ProductPageFile, pages.ProductPage)
	if err != nil {
		return nil, err
	}
	paths["product_page"] = productPath

	faqPath, err := w.writeJSON(FAQFile, pages.FAQ)
	if err != nil {
		return nil, err
	}
	paths["faq"] = faqPath

	comparisonPath, err := w.writeJSON(ComparisonFile, pages.Comparison)
	if err != nil {
		return nil, err
	}
	paths["comparison_page"] = comparisonPath

	log.Printf("[WRITE] Wrote %d artifacts to %s", len(paths), w.outDir)
	return paths, nil
}

// writeJSON marshals v with indentation, keeping non-ASCII characters
// (₹, en dashes) unescaped.
func (w *Writer) writeJSON(name string, v interface{}) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
