// Package dataset turns text lists, CSV files and spreadsheets into the
// numeric series the charts are drawn from.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotNumeric = errors.New("dataset: not a number")
	ErrNoSource   = errors.New("dataset: no source given")
)

// ParseList splits str on white space. Every field must be a number.
func ParseList(str string) ([]float64, error) {
	var list []float64
	for _, f := range strings.Fields(str) {
		v, err := parseValue(f)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// ReadCSV reads the values of the 0-based column. Rows whose cell is empty or
// missing are skipped and so is a first row that does not hold a number.
func ReadCSV(r io.Reader, column int) ([]float64, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	var (
		list []float64
		line int
	)
	for {
		row, err := rs.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "csv")
		}
		line++
		if column >= len(row) || strings.TrimSpace(row[column]) == "" {
			continue
		}
		v, err := parseValue(row[column])
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, errors.Wrapf(err, "csv line %d", line)
		}
		list = append(list, v)
	}
	return list, nil
}

// ReadXLSX reads the values of the 0-based column of a sheet. The first sheet
// of the workbook is used when sheet is empty. Header and empty cells are
// skipped like in ReadCSV.
func ReadXLSX(file, sheet string, column int) ([]float64, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "xlsx %s", file)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.Errorf("xlsx %s: no sheet", file)
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "xlsx %s", file)
	}
	var values []float64
	for i, row := range rows {
		if column >= len(row) || strings.TrimSpace(row[column]) == "" {
			continue
		}
		v, err := parseValue(row[column])
		if err != nil {
			if i == 0 {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(column+1, i+1)
			return nil, errors.Wrapf(err, "xlsx %s!%s", sheet, cell)
		}
		values = append(values, v)
	}
	return values, nil
}

// Source tells where a series comes from: either an inline list or a file.
// Files ending in .xlsx are read as spreadsheets, anything else as CSV.
type Source struct {
	List   string `yaml:"list"`
	File   string `yaml:"file"`
	Sheet  string `yaml:"sheet"`
	Column int    `yaml:"column"`
}

func (s Source) Load() ([]float64, error) {
	switch {
	case s.List != "":
		return ParseList(s.List)
	case s.File == "":
		return nil, ErrNoSource
	case strings.EqualFold(filepath.Ext(s.File), ".xlsx"):
		return ReadXLSX(s.File, s.Sheet, s.Column)
	default:
		r, err := os.Open(s.File)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return ReadCSV(r, s.Column)
	}
}

// Resolve makes the file of s relative to dir unless it is absolute.
func (s Source) Resolve(dir string) Source {
	if s.File != "" && !filepath.IsAbs(s.File) {
		s.File = filepath.Join(dir, s.File)
	}
	return s
}

// LoadAll loads every source concurrently. The first failure cancels the
// loads not started yet and is returned along with the name of its source.
func LoadAll(ctx context.Context, sources map[string]Source) (map[string][]float64, error) {
	var (
		names = make([]string, 0, len(sources))
		sets  = make([][]float64, len(sources))
	)
	for n := range sources {
		names = append(names, n)
	}
	grp, ctx := errgroup.WithContext(ctx)
	for i, n := range names {
		i, n := i, n
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			list, err := sources[n].Load()
			if err != nil {
				return errors.Wrapf(err, "dataset %s", n)
			}
			sets[i] = list
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	data := make(map[string][]float64, len(names))
	for i, n := range names {
		data[n] = sets[i]
	}
	return data, nil
}

func parseValue(str string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrNotNumeric, "%q", str)
	}
	return v, nil
}
