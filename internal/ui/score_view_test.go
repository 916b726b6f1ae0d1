package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pacman/internal/config"
)

func TestScoreViewGeometry(t *testing.T) {
	v := NewScoreView(10, 20, nil)

	assert.Equal(t, float32(10+config.PanelPadding), v.ColumnX(0))
	assert.Equal(t, float32(10+config.PanelPadding+config.PanelColumnWidth), v.ColumnX(1))

	w, h := v.Size(2)
	assert.Equal(t, float32(2*config.PanelColumnWidth+2*config.PanelPadding), w)
	assert.Equal(t, float32(config.PanelRows*config.PanelRowHeight+2*config.PanelPadding), h)
}
