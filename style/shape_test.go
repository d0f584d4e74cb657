package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPropertyColor(t *testing.T) {
	tests := []struct {
		p     style.Property
		color color.Color
	}{
		{"red", color.NRGBA{R: 255, A: 255}},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}},
		{"rgb(0, 128, 0)", color.NRGBA{G: 128, A: 255}},
		{"none", nil},
		{"", nil},
	}
	for _, tt := range tests {
		c, err := tt.p.Color()
		if err != nil {
			t.Errorf("expected %q to be a colour, got %v", tt.p, err)
			continue
		}
		if c != tt.color {
			t.Errorf("expected %q to be %v, is %v", tt.p, tt.color, c)
		}
	}
	if _, err := style.Property("reddish").Color(); err == nil {
		t.Errorf("expected error for reddish, got none")
	}
}

func TestShapeStyleParseAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	s := style.NewShapeStyle()
	if !s.IsEmpty() {
		t.Fatalf("expected new shape style to be empty, is %q", s)
	}
	for _, attr := range [][2]string{
		{"fill", "Green"},
		{"stroke", "#000"},
		{"stroke-width", "1.5"},
		{"opacity", "0.25"},
	} {
		if err := s.ParseAttribute(attr[0], attr[1]); err != nil {
			t.Errorf("expected %s: %s to be accepted, got %v", attr[0], attr[1], err)
		}
	}
	if str := s.String(); str != "fill: green; stroke: #000; stroke-width: 1.5; opacity: 0.25;" {
		t.Errorf("unexpected shape style %q", str)
	}
	if c := s.FillColor(); c != (color.NRGBA{G: 128, A: 255}) {
		t.Errorf("expected fill colour to be green, is %v", c)
	}
	for _, attr := range [][2]string{
		{"fill", "greenish"},
		{"stroke-width", "-1"},
		{"stroke-width", "thick"},
		{"opacity", "1.5"},
		{"margin", "3pt"},
	} {
		if err := s.ParseAttribute(attr[0], attr[1]); err == nil {
			t.Errorf("expected %s: %s to be rejected, wasn't", attr[0], attr[1])
		}
	}
}

func TestShapeStyleComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	near, far := style.NewShapeStyle(), style.NewShapeStyle()
	_ = near.ParseAttribute("fill", "red")
	_ = far.ParseAttribute("fill", "blue")
	_ = far.ParseAttribute("stroke-width", "2")
	near.ComplementWith(far)
	if str := near.String(); str != "fill: red; stroke-width: 2;" {
		t.Errorf("expected fill: red; stroke-width: 2;, is %q", str)
	}
	near.ComplementWith(style.NewPropertyMap())
	if str := near.String(); str != "fill: red; stroke-width: 2;" {
		t.Errorf("expected foreign declaration to be ignored, is %q", str)
	}
	if near.StrokeColor() != nil {
		t.Errorf("expected unset stroke to have no colour")
	}
}
