// Package loader reads a directory of PDF brochures into documents,
// one logical document per file with page boundaries preserved.
package loader

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"travelassist/internal/domain"
	"travelassist/internal/logger"
)

// Ensure DirSource implements the domain interface.
var _ domain.DocumentSource = (*DirSource)(nil)

// DirSource loads documents from a filesystem directory. Files without a
// .pdf extension are ignored.
type DirSource struct {
	dir string
}

// NewDirSource creates a source over the given directory.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load enumerates the directory and extracts one document per PDF file.
// A file that fails to parse is skipped with a warning; zero loaded
// documents is reported as an empty corpus.
func (s *DirSource) Load() ([]domain.Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus dir %s: %w", s.dir, err)
	}
	var documents []domain.Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		doc, err := readPDF(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			continue
		}
		documents = append(documents, doc)
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("%w: no readable PDF documents in %s", domain.ErrEmptyCorpus, s.dir)
	}
	return documents, nil
}

func readPDF(path string) (domain.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var pages []domain.Page
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			logger.Debug("page %d of %s unreadable: %v", i, path, err)
			continue
		}
		pages = append(pages, domain.Page{Number: i, Text: text})
	}
	if len(pages) == 0 {
		return domain.Document{}, fmt.Errorf("no extractable text")
	}
	return domain.Document{ID: hashString(path), Path: path, Pages: pages}, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
