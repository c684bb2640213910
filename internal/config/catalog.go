// Package config loads expansion catalogs from JSON or YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/pointexpand/internal/expand"
	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// maxFileSize caps catalog files at 1 MiB.
const maxFileSize = 1 * 1024 * 1024

var validate = validator.New()

// RangeSpec is an inclusive label number range.
type RangeSpec struct {
	Lo int `json:"lo" yaml:"lo" validate:"gte=0,ltefield=Hi"`
	Hi int `json:"hi" yaml:"hi" validate:"gte=0"`
}

// DisplacementSpec is one catalog entry. The offset is given either as
// dx/dy (cartesian) or as radius/angle_deg (polar in the XY plane); dz
// applies to both forms. Unset components are zero.
type DisplacementSpec struct {
	Suffix   string   `json:"suffix" yaml:"suffix" validate:"required"`
	DX       *float64 `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY       *float64 `json:"dy,omitempty" yaml:"dy,omitempty"`
	DZ       *float64 `json:"dz,omitempty" yaml:"dz,omitempty"`
	Radius   *float64 `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,gte=0"`
	AngleDeg *float64 `json:"angle_deg,omitempty" yaml:"angle_deg,omitempty"`
}

// CategorySpec declares one category. Categories are matched in file order.
type CategorySpec struct {
	Name          string             `json:"name" yaml:"name" validate:"required"`
	Ranges        []RangeSpec        `json:"ranges" yaml:"ranges" validate:"dive"`
	Displacements []DisplacementSpec `json:"displacements" yaml:"displacements" validate:"dive"`
}

// CatalogFile is the on-disk form of an expansion rule set.
type CatalogFile struct {
	Fallback   string         `json:"fallback" yaml:"fallback" validate:"required"`
	Categories []CategorySpec `json:"categories" yaml:"categories" validate:"required,min=1,dive"`
}

func ptrFloat64(v float64) *float64 { return &v }

// Cartesian returns a displacement with explicit offsets.
func Cartesian(suffix string, dx, dy, dz float64) DisplacementSpec {
	return DisplacementSpec{Suffix: suffix, DX: ptrFloat64(dx), DY: ptrFloat64(dy), DZ: ptrFloat64(dz)}
}

// Polar returns an XY-plane displacement of radius at angleDeg, measured
// counter-clockwise from +X.
func Polar(suffix string, radius, angleDeg float64) DisplacementSpec {
	return DisplacementSpec{Suffix: suffix, Radius: ptrFloat64(radius), AngleDeg: ptrFloat64(angleDeg)}
}

// IsPolar reports whether the entry uses the radius/angle form.
func (d DisplacementSpec) IsPolar() bool {
	return d.Radius != nil || d.AngleDeg != nil
}

// Offset resolves the entry to a cartesian offset.
func (d DisplacementSpec) Offset() r3.Vec {
	var v r3.Vec
	if d.IsPolar() {
		var radius, angle float64
		if d.Radius != nil {
			radius = *d.Radius
		}
		if d.AngleDeg != nil {
			angle = *d.AngleDeg * math.Pi / 180
		}
		v.X = radius * math.Cos(angle)
		v.Y = radius * math.Sin(angle)
	} else {
		if d.DX != nil {
			v.X = *d.DX
		}
		if d.DY != nil {
			v.Y = *d.DY
		}
	}
	if d.DZ != nil {
		v.Z = *d.DZ
	}
	return v
}

func (d DisplacementSpec) check() error {
	if !d.IsPolar() {
		return nil
	}
	if d.DX != nil || d.DY != nil {
		return fmt.Errorf("displacement %q: dx/dy and radius/angle_deg are mutually exclusive", d.Suffix)
	}
	if d.Radius == nil || d.AngleDeg == nil {
		return fmt.Errorf("displacement %q: polar form needs both radius and angle_deg", d.Suffix)
	}
	return nil
}

// MirrorY returns copies of entries reflected across the X axis: dy is
// negated for cartesian entries and the angle for polar ones.
func MirrorY(entries []DisplacementSpec) []DisplacementSpec {
	out := make([]DisplacementSpec, len(entries))
	for i, d := range entries {
		m := d
		if d.DY != nil {
			m.DY = ptrFloat64(-*d.DY)
		}
		if d.AngleDeg != nil {
			m.AngleDeg = ptrFloat64(-*d.AngleDeg)
		}
		out[i] = m
	}
	return out
}

// LoadCatalogFile reads a catalog from a .json, .yaml or .yml file and
// validates it.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("catalog file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("catalog file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data, ext)
}

// ParseCatalog decodes data as JSON (format ".json") or YAML (anything
// else) and validates the result.
func ParseCatalog(data []byte, format string) (*CatalogFile, error) {
	cat := &CatalogFile{}
	if format == ".json" {
		if err := json.Unmarshal(data, cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

// Validate checks struct constraints and the cross-field rules: unique
// category names, a declared fallback, and well-formed displacements.
func (c *CatalogFile) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if seen[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		for _, d := range cat.Displacements {
			if err := d.check(); err != nil {
				return fmt.Errorf("category %q: %w", cat.Name, err)
			}
		}
	}
	if !seen[c.Fallback] {
		return fmt.Errorf("fallback %q is not a declared category", c.Fallback)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Namespace()))
		case "ltefield":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (value %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Build converts the file into an engine config.
func (c *CatalogFile) Build() (*expand.Config, error) {
	cats := make([]expand.Category, len(c.Categories))
	for i, cs := range c.Categories {
		ranges := make([]expand.Range, len(cs.Ranges))
		for j, r := range cs.Ranges {
			ranges[j] = expand.Range{Lo: r.Lo, Hi: r.Hi}
		}
		disp := make([]expand.Displacement, len(cs.Displacements))
		for j, d := range cs.Displacements {
			disp[j] = expand.Displacement{Suffix: d.Suffix, Offset: d.Offset()}
		}
		cats[i] = expand.Category{
			ID:            expand.CategoryID(cs.Name),
			Ranges:        ranges,
			Displacements: disp,
		}
	}
	return expand.NewConfig(cats, expand.CategoryID(c.Fallback))
}
