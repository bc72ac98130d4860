package ranges

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ib-77/kotlinize/pkg/kt"
	"gopkg.in/yaml.v3"
)

// Bound is a range bound as written in a definition: an integer literal
// (decimal, 0x, 0o or 0b) or, for char ranges, a single character.
//
// For char ranges a one-character bound is always the character itself, so
// `start: 7` is '7' (code point 55) while `start: 10` is code point 10.
// Write single-digit code points with a prefix, as in `start: 0x7`.
type Bound string

// UnmarshalYAML keeps the scalar text as is so that `start: 7` and
// `start: a` decode into the same field.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range bound must be a scalar", node.Line)
	}
	*b = Bound(node.Value)
	return nil
}

// Definition describes a range declaratively, for example in a yaml file:
//
//	ranges:
//	  - name: odds
//	    kind: int
//	    start: 1
//	    end: 9
//	    step: 2
//	  - name: letters
//	    kind: char
//	    start: a
//	    end: e
type Definition struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Start Bound  `yaml:"start"`
	End   Bound  `yaml:"end"`
	Step  Bound  `yaml:"step,omitempty"`
}

type definitionsFile struct {
	Ranges []Definition `yaml:"ranges"`
}

// ParseDefinitions decodes a yaml document with a top-level `ranges` list.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var f definitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse range definitions: %w", err)
	}
	return f.Ranges, nil
}

// LoadDefinitions reads and decodes a yaml file of range definitions.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read range definitions: %w", err)
	}
	return ParseDefinitions(data)
}

// Build resolves the definition into a range. Unknown kinds fail with
// kt.ErrUnsupportedKind, malformed bounds with kt.ErrInvalidArgument.
func (d Definition) Build() (Progression, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", d.Name, err)
	}

	start, err := d.Start.value(kind)
	if err != nil {
		return nil, fmt.Errorf("range %q start: %w", d.Name, err)
	}
	end, err := d.End.value(kind)
	if err != nil {
		return nil, fmt.Errorf("range %q end: %w", d.Name, err)
	}

	var step int64 = 1
	if strings.TrimSpace(string(d.Step)) != "" {
		// steps are always numeric, even for char ranges
		step, err = d.Step.value(KindLong)
		if err != nil {
			return nil, fmt.Errorf("range %q step: %w", d.Name, err)
		}
	}

	p, err := BuildKind(kind, start, end, step)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", d.Name, err)
	}
	return p, nil
}

func (b Bound) value(kind Kind) (int64, error) {
	raw := string(b)
	if kind == KindChar && utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		return int64(r), nil
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty bound", kt.ErrInvalidArgument)
	}
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %s value", kt.ErrInvalidArgument, raw, kind)
	}
	return v, nil
}
