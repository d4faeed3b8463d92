package study

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/section"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// ErrBadRow is returned for a candidate spreadsheet row that cannot be read.
var ErrBadRow = errors.New("study: bad candidate row")

// WriteXLSX writes the summaries as a worksheet to w. Non-finite numbers are
// stored as text since spreadsheet cells cannot hold them.
func WriteXLSX(w io.Writer, summaries []cantilever.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, s := range summaries {
		values, name := Values(s)
		row := make([]interface{}, 0, len(Columns))
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row = append(row, FormatFloat(v))
				continue
			}
			row = append(row, v)
		}
		row = append(row, name)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("study: write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}

// ReadCandidatesXLSX reads candidates from the first worksheet of a
// workbook. The first row is a header; the following rows hold
// matname, L, h, tw, blf, tlf, buf, tuf and an optional dstab.
func ReadCandidatesXLSX(r io.Reader) ([]Candidate, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySpace
	}

	var out []Candidate
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		cand, err := parseCandidateRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, cand)
	}
	if len(out) == 0 {
		return nil, ErrEmptySpace
	}
	return out, nil
}

func parseCandidateRow(row []string) (Candidate, error) {
	if len(row) < 8 {
		return Candidate{}, fmt.Errorf("%w: want at least 8 columns, got %d", ErrBadRow, len(row))
	}
	nums := make([]float64, 0, 8)
	for _, cell := range row[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			nums = append(nums, 0)
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Candidate{}, fmt.Errorf("%w: %q", ErrBadRow, cell)
		}
		nums = append(nums, v)
	}

	cand := Candidate{
		Material: strings.TrimSpace(row[0]),
		L:        nums[0],
		Geometry: section.Geometry{
			H:   nums[1],
			Tw:  nums[2],
			Blf: nums[3],
			Tlf: nums[4],
			Buf: nums[5],
			Tuf: nums[6],
		},
	}
	if len(nums) > 7 {
		cand.DStab = nums[7]
	}
	return cand, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
