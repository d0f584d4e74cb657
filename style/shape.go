package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/maybe"
)

// ShapeStyle is a style declaration for drawing shapes.
// Attributes which are Nothing are unset.
//
// ShapeStyle implements cascade.Declaration.
type ShapeStyle struct {
	Fill        maybe.Maybe[Property] // fill colour, e.g. "green" or "#00ff00"
	Stroke      maybe.Maybe[Property] // stroke colour
	StrokeWidth maybe.Maybe[float64]  // non-negative
	Opacity     maybe.Maybe[float64]  // 0…1
}

// NewShapeStyle creates a shape style with all attributes unset.
func NewShapeStyle() *ShapeStyle {
	return &ShapeStyle{}
}

// ShapeStyleFactory is a cascade.DeclarationFactory for shape styles.
func ShapeStyleFactory() cascade.Declaration {
	return NewShapeStyle()
}

var _ cascade.Declaration = &ShapeStyle{}

// IsEmpty returns true if all attributes are unset.
//
// Interface cascade.Declaration
func (s *ShapeStyle) IsEmpty() bool {
	return s.Fill.IsNothing() && s.Stroke.IsNothing() &&
		s.StrokeWidth.IsNothing() && s.Opacity.IsNothing()
}

// ParseAttribute sets one of "fill", "stroke", "stroke-width" or "opacity"
// from its textual value.
//
// Interface cascade.Declaration
func (s *ShapeStyle) ParseAttribute(name, value string) error {
	value = strings.TrimSpace(value)
	switch name {
	case "fill", "stroke":
		p := Property(strings.ToLower(value))
		if _, err := p.Color(); err != nil {
			return fmt.Errorf("attribute %s: %w", name, err)
		}
		if name == "fill" {
			s.Fill = maybe.Just(p)
		} else {
			s.Stroke = maybe.Just(p)
		}
	case "stroke-width":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			return fmt.Errorf("attribute %s: not a valid width: %q", name, value)
		}
		s.StrokeWidth = maybe.Just(w)
	case "opacity":
		o, err := strconv.ParseFloat(value, 64)
		if err != nil || o < 0 || o > 1 {
			return fmt.Errorf("attribute %s: not a valid opacity: %q", name, value)
		}
		s.Opacity = maybe.Just(o)
	default:
		return fmt.Errorf("unknown shape attribute %q", name)
	}
	return nil
}

// ComplementWith copies attributes from other which are unset in s.
// other has to be a *ShapeStyle, otherwise it is ignored.
//
// Interface cascade.Declaration
func (s *ShapeStyle) ComplementWith(other cascade.Declaration) {
	o, ok := other.(*ShapeStyle)
	if !ok {
		tracer().Errorf("shape style cannot be complemented with %T", other)
		return
	}
	if o == nil {
		return
	}
	s.Fill = s.Fill.Or(o.Fill)
	s.Stroke = s.Stroke.Or(o.Stroke)
	s.StrokeWidth = s.StrokeWidth.Or(o.StrokeWidth)
	s.Opacity = s.Opacity.Or(o.Opacity)
}

// String returns the attributes which are set, e.g.
//
//	fill: green; stroke-width: 1.5;
//
// Interface cascade.Declaration
func (s *ShapeStyle) String() string {
	var attrs []string
	var p Property
	var x float64
	if m := s.Fill.Match(); m.Just(&p) != nil {
		attrs = append(attrs, "fill: "+p.String()+";")
	}
	if m := s.Stroke.Match(); m.Just(&p) != nil {
		attrs = append(attrs, "stroke: "+p.String()+";")
	}
	if m := s.StrokeWidth.Match(); m.Just(&x) != nil {
		attrs = append(attrs, "stroke-width: "+strconv.FormatFloat(x, 'g', -1, 64)+";")
	}
	if m := s.Opacity.Match(); m.Just(&x) != nil {
		attrs = append(attrs, "opacity: "+strconv.FormatFloat(x, 'g', -1, 64)+";")
	}
	return strings.Join(attrs, " ")
}

// FillColor returns the fill colour, or nil if fill is unset or "none".
func (s *ShapeStyle) FillColor() color.Color {
	c, _ := s.Fill.WithDefault(NullStyle).Color()
	return c
}

// StrokeColor returns the stroke colour, or nil if stroke is unset or "none".
func (s *ShapeStyle) StrokeColor() color.Color {
	c, _ := s.Stroke.WithDefault(NullStyle).Color()
	return c
}
