// Package problem loads step-sum problems from YAML files.
//
// A file holds any number of named problems:
//
//	problems:
//	  - name: sample
//	    offsets: [3, 4]
//	    values: [14, 28, 79, -87, 29, 34, -7, 65, -11, 91, 32, 27, -5]
//
// Offsets default to DefaultOffsets and names to "problem-<n>" (1-based).
package problem

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepsum/stepgraph"
)

// ErrInvalidProblem is returned when a problem fails validation.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// DefaultOffsets are used when a problem omits offsets.
var DefaultOffsets = []int{3, 4}

// Problem is one value sequence plus the offsets allowed as steps.
type Problem struct {
	Name    string  `yaml:"name"`
	Offsets []int   `yaml:"offsets,omitempty"`
	Values  []int64 `yaml:"values"`
}

// File is the top-level document.
type File struct {
	Problems []Problem `yaml:"problems"`
}

// Load reads and parses a problem file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a problem document, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing problem file: %w", err)
	}
	if len(f.Problems) == 0 {
		return nil, fmt.Errorf("%w: file defines no problems", ErrInvalidProblem)
	}

	seen := make(map[string]bool, len(f.Problems))
	for i := range f.Problems {
		p := &f.Problems[i]
		p.applyDefaults(i)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidProblem, p.Name)
		}
		seen[p.Name] = true
	}

	return &f, nil
}

// Marshal encodes f back to YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

func (p *Problem) applyDefaults(i int) {
	if p.Name == "" {
		p.Name = fmt.Sprintf("problem-%d", i+1)
	}
	if len(p.Offsets) == 0 {
		p.Offsets = append([]int(nil), DefaultOffsets...)
	}
}

// Validate checks that values are present and every offset is positive.
// Positive offsets keep the step graph acyclic.
func (p *Problem) Validate() error {
	if len(p.Values) == 0 {
		return fmt.Errorf("%w: %q has no values", ErrInvalidProblem, p.Name)
	}
	if len(p.Offsets) == 0 {
		return fmt.Errorf("%w: %q has no offsets", ErrInvalidProblem, p.Name)
	}
	for _, k := range p.Offsets {
		if k <= 0 {
			return fmt.Errorf("%w: %q has non-positive offset %d", ErrInvalidProblem, p.Name, k)
		}
	}

	return nil
}

// Rules converts the offsets to step rules.
func (p *Problem) Rules() []stepgraph.StepRule {
	return stepgraph.Offsets(p.Offsets...)
}
