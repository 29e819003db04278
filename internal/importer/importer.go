package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"perfume-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts or updates products by
// name. Expected headers: name, description, price, price_15ml, price_35ml,
// price_100ml, category, notes, image_url. Only name and price are required;
// notes are separated by ";".
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

var sizeColumns = map[domain.Size]string{
	domain.Size15ml:  "price_15ml",
	domain.Size35ml:  "price_35ml",
	domain.Size100ml: "price_100ml",
}

// Run parses CSV rows and upserts one product per non-blank row. It stops at
// the first invalid row; products before it stay written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required column \"name\"")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
		imported++
	}
	return imported, nil
}

func parseRow(record []string, index map[string]int) (domain.Product, error) {
	name := pick(record, index, "name")
	if name == "" {
		return domain.Product{}, errors.New("name required")
	}

	price, err := parsePrice(pick(record, index, "price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("price for %q: %w", name, err)
	}
	if price == 0 {
		return domain.Product{}, fmt.Errorf("price required for %q", name)
	}

	category := domain.DefaultCategory
	if raw := pick(record, index, "category"); raw != "" {
		c, ok := domain.ParseCategory(raw)
		if !ok {
			return domain.Product{}, fmt.Errorf("unknown category %q for %q", raw, name)
		}
		category = c
	}

	p := domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		Category:    category,
		PriceCents:  price,
		ImageURL:    pick(record, index, "image_url"),
		Notes:       splitNotes(pick(record, index, "notes")),
	}
	for size, col := range sizeColumns {
		cents, err := parsePrice(pick(record, index, col))
		if err != nil {
			return domain.Product{}, fmt.Errorf("%s for %q: %w", col, name, err)
		}
		if cents > 0 {
			if p.SizePrices == nil {
				p.SizePrices = make(map[domain.Size]int64, len(sizeColumns))
			}
			p.SizePrices[size] = cents
		}
	}
	return p, nil
}

// parsePrice reads a euro amount such as "189" or "64.90" into cents. Blank
// is 0.
func parsePrice(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return int64(math.Round(f * 100)), nil
}

func splitNotes(s string) []string {
	if s == "" {
		return nil
	}
	var notes []string
	for _, n := range strings.Split(s, ";") {
		if n = strings.TrimSpace(n); n != "" {
			notes = append(notes, n)
		}
	}
	return notes
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
