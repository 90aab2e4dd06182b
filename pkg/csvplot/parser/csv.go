package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads a delimited text file whose first record is the header row.
func LoadCSV(path string, comma rune) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(filepath.Base(path), f, comma)
}

// ReadCSV parses delimited text from r. Every record must have as many
// fields as the header; blank lines are skipped.
func ReadCSV(name string, r io.Reader, comma rune) (*models.Dataset, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = comma

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, err
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	return buildDataset(name, header, records), nil
}
