// SPDX-License-Identifier: MIT

// Package store - flat binary tensor dumps.
//
// Format, all little-endian:
//
//	history: uint32 steps | uint32 isotopes | isotopes × 10-byte code |
//	         steps×isotopes × float64 (row-major)
//	matrix:  uint32 rows | uint32 cols | rows×cols × float64 (row-major)

package store

import (
	"encoding/binary"
	"fmt"
	"io"

	"sableye/isotope"
	"sableye/matrix"
)

// codeBytes is the fixed on-disk width of one isotope code.
const codeBytes = 10

// maxDumpDim caps each decoded dimension. The domain tracks tens to low
// hundreds of isotopes over bounded step counts; anything beyond this is
// a corrupt header, and rejecting it early avoids absurd allocations.
const maxDumpDim = 1 << 24

// WriteHistory dumps a steps×isotopes table with its isotope labels.
// Ragged tables are rejected with ErrBadDump before anything is
// written.
func WriteHistory(w io.Writer, labels []isotope.Code, history [][]float64) error {
	if len(labels) == 0 {
		return fmt.Errorf("no isotope labels: %w", ErrBadDump)
	}
	for step, row := range history {
		if len(row) != len(labels) {
			return fmt.Errorf("step %d has %d columns, want %d: %w",
				step, len(row), len(labels), ErrBadDump)
		}
	}

	header := []uint32{uint32(len(history)), uint32(len(labels))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	for _, code := range labels {
		if _, err := io.WriteString(w, code.String()); err != nil {
			return err
		}
	}
	for _, row := range history {
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return err
		}
	}

	return nil
}

// ReadHistory decodes a history dump written by WriteHistory.
// Errors: ErrBadDump on truncation, impossible dimensions or labels
// that do not parse as isotope codes.
func ReadHistory(r io.Reader) ([]isotope.Code, [][]float64, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("header: %v: %w", err, ErrBadDump)
	}
	steps, cols := int(header[0]), int(header[1])
	if cols == 0 || cols > maxDumpDim || steps > maxDumpDim {
		return nil, nil, fmt.Errorf("dimensions %d×%d: %w", steps, cols, ErrBadDump)
	}

	labels := make([]isotope.Code, cols)
	buf := make([]byte, codeBytes)
	for i := range labels {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nil, fmt.Errorf("label %d: %v: %w", i, err, ErrBadDump)
		}
		code, err := isotope.Parse(string(buf))
		if err != nil {
			return nil, nil, fmt.Errorf("label %d %q: %v: %w", i, buf, err, ErrBadDump)
		}
		labels[i] = code
	}

	history := make([][]float64, steps)
	for step := range history {
		row := make([]float64, cols)
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, nil, fmt.Errorf("step %d: %v: %w", step, err, ErrBadDump)
		}
		history[step] = row
	}

	return labels, history, nil
}

// WriteMatrix dumps a generator matrix row-major.
func WriteMatrix(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	header := []uint32{uint32(m.Rows()), uint32(m.Cols())}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	row := make([]float64, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			row[j] = v
		}
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			return err
		}
	}

	return nil
}

// ReadMatrix decodes a matrix dump written by WriteMatrix.
// Errors: ErrBadDump on truncation or impossible dimensions.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("header: %v: %w", err, ErrBadDump)
	}
	rows, cols := int(header[0]), int(header[1])
	if rows == 0 || cols == 0 || rows > maxDumpDim || cols > maxDumpDim {
		return nil, fmt.Errorf("dimensions %d×%d: %w", rows, cols, ErrBadDump)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		if err = binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("row %d: %v: %w", i, err, ErrBadDump)
		}
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, row[j]); err != nil {
				return nil, fmt.Errorf("row %d: %v: %w", i, err, ErrBadDump)
			}
		}
	}

	return m, nil
}
