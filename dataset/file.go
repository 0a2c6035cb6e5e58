package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/linefit/errs"
)

// ParseYAML parses a YAML point list.
//
// The document is either a bare sequence of {x, y} mappings or a mapping
// with a "points" key holding such a sequence. Duplicate x values are folded,
// the last entry winning, and non-finite coordinates are rejected with
// errs.ErrInvalidCoordinate.
func ParseYAML(data []byte) (Points, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse points yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return Points{}, nil
	}

	var ps Points
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&ps); err != nil {
			return nil, fmt.Errorf("failed to decode points: %w", err)
		}
	case yaml.MappingNode:
		var wrapper struct {
			Points Points `yaml:"points"`
		}
		if err := root.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode points: %w", err)
		}
		ps = wrapper.Points
	default:
		return nil, fmt.Errorf("points yaml must be a sequence or a mapping with a points key")
	}

	return normalize(ps)
}

// normalize folds duplicate x values, the last entry winning, and rejects
// non-finite coordinates.
func normalize(ps Points) (Points, error) {
	c := NewCollector()
	for i, p := range ps {
		if !p.IsFinite() {
			return nil, fmt.Errorf("point %d: %w: (%v, %v) is not finite", i, errs.ErrInvalidCoordinate, p.X, p.Y)
		}
		c.Set(p.X, p.Y)
	}

	return c.Points(), nil
}

// LoadFile reads a dataset from path. Files ending in .yaml or .yml are parsed
// with ParseYAML; anything else is decoded as a binary blob.
func LoadFile(path string) (Points, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var ps Points
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		ps, err = ParseYAML(data)
	default:
		ps, err = Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	return ps, nil
}
