// Package dataset reads and writes the YAML documents consumed and produced
// by the hofn command. A YAML null stands for a missing value.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KasperOmsK/hofn"
)

// Dataset is a decoded input document.
type Dataset struct {
	Values []hofn.Maybe[float64]
	Other  []hofn.Maybe[float64]
	Groups []string
	Matrix hofn.Matrix[hofn.Maybe[float64]]
}

type document struct {
	Values []*float64   `yaml:"values"`
	Other  []*float64   `yaml:"other"`
	Groups []string     `yaml:"groups"`
	Matrix [][]*float64 `yaml:"matrix"`
}

// Load decodes the dataset stored at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a single YAML document from r. An empty document decodes to
// an empty Dataset.
func Decode(r io.Reader) (*Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	matrix, err := hofn.FromRows(hofn.Map(doc.Matrix, ToMaybes))
	if err != nil {
		return nil, fmt.Errorf("decode dataset: matrix: %w", err)
	}

	return &Dataset{
		Values: ToMaybes(doc.Values),
		Other:  ToMaybes(doc.Other),
		Groups: doc.Groups,
		Matrix: matrix,
	}, nil
}

// ToMaybe maps nil to NA.
func ToMaybe(p *float64) hofn.Maybe[float64] {
	if p == nil {
		return hofn.NA[float64]()
	}
	return hofn.Some(*p)
}

// ToMaybes is ToMaybe over a slice.
func ToMaybes(ps []*float64) []hofn.Maybe[float64] {
	return hofn.Map(ps, ToMaybe)
}

// FromMaybe maps NA to nil, which encodes as a YAML null.
func FromMaybe(m hofn.Maybe[float64]) *float64 {
	v, ok := m.Get()
	if !ok {
		return nil
	}
	return &v
}

// FromMaybes is FromMaybe over a slice.
func FromMaybes(ms []hofn.Maybe[float64]) []*float64 {
	return hofn.Map(ms, FromMaybe)
}

// OrderedMap builds a YAML mapping node that keeps the key order of n.
func OrderedMap(n hofn.Named[string, hofn.Maybe[float64]]) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i := range n.Len() {
		k, v := n.At(i)

		var value yaml.Node
		if err := value.Encode(FromMaybe(v)); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}
	return node, nil
}

// Encode writes v to w as a YAML document.
func Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
