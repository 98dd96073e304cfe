package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/aether-stage/parameter"
)

func TestMustHexParsesPalette(t *testing.T) {
	c := MustHex("#ff8000")
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 0.0, c.B, 1e-9)

	for _, hex := range []string{
		parameter.PanelEdgeColor,
		parameter.PanelInnerColor,
		parameter.PanelTintActive,
		parameter.PanelTintInactive,
		parameter.GridCellColorHot,
		parameter.GridCellColorCool,
		parameter.GridSectionColor,
	} {
		assert.NotPanics(t, func() { MustHex(hex) }, hex)
	}
}

func TestMustHexPanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { MustHex("teal") })
	assert.Panics(t, func() { MustHex("#12345") })
}
