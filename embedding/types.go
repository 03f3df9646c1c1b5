// Package embedding declares the Options struct, the YAML table loader,
// and sentinel errors. See doc.go for the package overview.
package embedding

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for embedding-fibre construction.
var (
	// ErrBadDimension indicates a non-positive declared dimension.
	ErrBadDimension = errors.New("embedding: dimension must be positive")

	// ErrBadWeight indicates a combination weight outside [0,1].
	ErrBadWeight = errors.New("embedding: weight outside [0,1]")

	// ErrBadTable indicates the word-vector table failed to decode.
	ErrBadTable = errors.New("embedding: malformed vector table")
)

// Options configures the embedding fibre. Construct with
// DefaultOptions and override fields before passing to New.
type Options struct {
	// Dim is the declared vector dimension. Required, > 0.
	Dim int

	// Table maps terminal labels to their word vectors. Vectors are
	// fitted to Dim at lookup (truncate / zero-pad). May be nil.
	Table map[string][]float64

	// MergeWeight is the left operand's weight under "merge".
	MergeWeight float64

	// MoveWeight is the left operand's weight under "move"; the default
	// favours the second operand.
	MoveWeight float64

	// ProjectDim is the dimension Pull projects to. Zero selects
	// max(1, Dim/2).
	ProjectDim int

	// PadValue is the constant Push pads freshly added dimensions with.
	PadValue float64
}

// DefaultOptions returns Options for the given dimension with the
// reference weights: MergeWeight 0.5, MoveWeight 0.3, ProjectDim Dim/2,
// PadValue 0.01, empty table.
func DefaultOptions(dim int) Options {
	return Options{
		Dim:         dim,
		MergeWeight: 0.5,
		MoveWeight:  0.3,
		PadValue:    0.01,
	}
}

// LoadTable decodes a word-vector table from YAML: a mapping from label
// to a flat list of numbers.
func LoadTable(r io.Reader) (map[string][]float64, error) {
	table := make(map[string][]float64)
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	return table, nil
}
