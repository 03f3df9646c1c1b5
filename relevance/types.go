// Package relevance declares the Options struct, the YAML loader, and
// sentinel errors. See doc.go for the package overview.
package relevance

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for relevance-fibre construction.
var (
	// ErrEmptyCollection indicates no documents were configured.
	ErrEmptyCollection = errors.New("relevance: document collection is empty")

	// ErrBadParameter indicates a BM25 parameter or combination weight
	// outside its valid range.
	ErrBadParameter = errors.New("relevance: parameter outside valid range")

	// ErrBadConfig indicates the YAML configuration failed to decode.
	ErrBadConfig = errors.New("relevance: malformed configuration")
)

// Options configures the relevance fibre. Construct with DefaultOptions
// and override fields before passing to New.
type Options struct {
	// K1 controls term-frequency saturation. Must be positive.
	K1 float64 `yaml:"k1"`

	// B controls document-length normalization. Must lie in [0,1].
	B float64 `yaml:"b"`

	// MergeLeft and MergeRight weight the two operands under "merge".
	// Both must be non-negative.
	MergeLeft  float64 `yaml:"merge_left"`
	MergeRight float64 `yaml:"merge_right"`

	// Documents maps document id to raw text. Required non-empty.
	Documents map[string]string `yaml:"documents"`

	// Tokenizer splits text into terms. Nil selects the default:
	// lowercase, split on any non-letter/non-digit rune.
	Tokenizer func(string) []string `yaml:"-"`
}

// DefaultOptions returns the reference BM25 configuration: K1 = 1.2,
// B = 0.75, merge weights 0.6 / 0.4, no documents.
func DefaultOptions() Options {
	return Options{
		K1:         1.2,
		B:          0.75,
		MergeLeft:  0.6,
		MergeRight: 0.4,
	}
}

// LoadOptions decodes Options from YAML, filling unset parameters with
// the defaults. The tokenizer is not configurable through YAML.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return opts, nil
}
