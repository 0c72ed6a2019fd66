// Package tables loads named probability tables from YAML.
//
// A document is a mapping from table name to a mapping from outcome to
// probability:
//
//	weather:
//	  Sun: 0.3
//	  Rain: 0.3
//	  Snow: 0.4
//	coin:
//	  heads: 0.5
//	  tails: 0.5
//
// The document is walked as a yaml.Node tree rather than unmarshalled into a
// Go map, so both the table order and the outcome order of the file are
// preserved. The outcome order is the order in which dist.Discrete walks its
// entries when sampling, which keeps sampling reproducible for a fixed seed.
package tables

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvprob/dist"
)

// ErrMalformed indicates YAML that is not a mapping of mappings of numbers.
var ErrMalformed = errors.New("tables: malformed document")

// Set is an ordered collection of named tables.
type Set struct {
	names  []string
	tables map[string]*dist.Discrete[string]
}

// Names returns the table names in document order.
func (s *Set) Names() []string { return slices.Clone(s.names) }

// Len returns the number of tables.
func (s *Set) Len() int { return len(s.names) }

// Get returns the named table.
func (s *Set) Get(name string) (*dist.Discrete[string], bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Load reads and parses the file at path.
func Load(path string, opts ...dist.Option) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tables: read %s: %w", path, err)
	}
	return Parse(data, opts...)
}

// Parse decodes a YAML document held in memory. opts are passed to
// dist.NewDiscrete for every table (e.g. dist.WithTolerance).
func Parse(data []byte, opts ...dist.Option) (*Set, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return build(&root, opts)
}

// Decode reads one YAML document from r.
func Decode(r io.Reader, opts ...dist.Option) (*Set, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return build(&root, opts)
}

func build(root *yaml.Node, opts []dist.Option) (*Set, error) {
	doc := root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		doc = doc.Content[0]
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping of tables", ErrMalformed, doc.Line)
	}

	set := &Set{tables: make(map[string]*dist.Discrete[string], len(doc.Content)/2)}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, body := doc.Content[i], doc.Content[i+1]
		name := key.Value
		if _, dup := set.tables[name]; dup {
			return nil, fmt.Errorf("%w: line %d: table %q defined twice", ErrMalformed, key.Line, name)
		}
		table, err := decodeTable(name, body, opts)
		if err != nil {
			return nil, err
		}
		set.names = append(set.names, name)
		set.tables[name] = table
	}
	return set, nil
}

func decodeTable(name string, body *yaml.Node, opts []dist.Option) (*dist.Discrete[string], error) {
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: table %q must map outcomes to probabilities", ErrMalformed, body.Line, name)
	}
	entries := make([]dist.Entry[string], 0, len(body.Content)/2)
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		var p float64
		if err := val.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: line %d: table %q outcome %q: %v", ErrMalformed, val.Line, name, key.Value, err)
		}
		entries = append(entries, dist.Entry[string]{Value: key.Value, Prob: p})
	}
	table, err := dist.NewDiscrete(entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("tables: table %q (line %d): %w", name, body.Line, err)
	}
	return table, nil
}
