package scatter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names of the input file.
const (
	ColGeography      = "geography"
	ColStateAbbr      = "stateAbbr"
	ColFoodstampsNum  = "foodstampsNum"
	ColPercentRenting = "percentRenting"
)

var (
	ErrNoHeader      = errors.New("missing header row")
	ErrMissingColumn = errors.New("missing column")
)

// Record is one row of the input file.
type Record struct {
	Geography      string
	StateAbbr      string
	FoodstampsNum  float64 // households that received food stamps
	PercentRenting float64
}

// Dataset is the ordered list of records as they appear in the input.
type Dataset []Record

// Max returns the largest value of f over the dataset. NaN values are ignored and an empty dataset returns zero.
func (ds Dataset) Max(f func(Record) float64) float64 {
	max, ok := 0.0, false
	for _, r := range ds {
		if v := f(r); !math.IsNaN(v) && (!ok || max < v) {
			max, ok = v, true
		}
	}
	return max
}

// ParseNumber casts a cell to a number. Blank cells are zero and anything that is not a decimal number is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0.0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.IndexFunc(s, notDecimal) != -1 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func notDecimal(r rune) bool {
	return (r < '0' || '9' < r) && r != '.' && r != 'e' && r != 'E' && r != '+' && r != '-'
}

// Load reads a dataset from delimited text with a header row. Columns are located by name and extra columns are ignored.
func Load(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, fmt.Errorf("bad header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	index := [4]int{}
	for i, name := range []string{ColGeography, ColStateAbbr, ColFoodstampsNum, ColPercentRenting} {
		j, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%w '%s'", ErrMissingColumn, name)
		}
		index[i] = j
	}

	ds := Dataset{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("bad row %d: %w", len(ds)+1, err)
		}
		ds = append(ds, Record{
			Geography:      cell(row, index[0]),
			StateAbbr:      cell(row, index[1]),
			FoodstampsNum:  numberCell(row, index[2]),
			PercentRenting: numberCell(row, index[3]),
		})
	}
	return ds, nil
}

// LoadFile reads a dataset from a file, see Load.
func LoadFile(filename string) (Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file '%s': %w", filename, err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load data file '%s': %w", filename, err)
	}
	return ds, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// numberCell casts a cell, a cell missing from a short row is NaN.
func numberCell(row []string, i int) float64 {
	if i < len(row) {
		return ParseNumber(row[i])
	}
	return math.NaN()
}
