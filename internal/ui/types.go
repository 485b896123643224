package ui

import (
	"github.com/justyntemme/thumbview/internal/explorer"
)

type UIAction int

const (
	ActionNone UIAction = iota
	ActionToggleTheme
	ActionResize // Size carries the new configuration
	ActionToggleFixed
	ActionReload
)

type UIEvent struct {
	Action UIAction
	Size   SizeConfig
	Dark   bool
}

// State is what the window shows. The orchestrator owns it; the renderer
// only reads it.
type State struct {
	Title   string
	Items   []explorer.Item
	Size    SizeConfig
	Dark    bool
	Columns int // 0 = fit to width
	Status  string
}

const (
	scaleStep = 0.25
	minScale  = 0.5
	maxScale  = 4
	fixedStep = 8
	minFixed  = 16
	maxFixed  = 512
)

// Grow returns the next larger size in the same mode.
func (c SizeConfig) Grow() SizeConfig {
	c = c.normalized()
	if c.Fixed {
		c.Size = min(maxFixed, c.Size+fixedStep)
	} else {
		c.Size = min(maxScale, c.Size+scaleStep)
	}
	return c
}

// Shrink returns the next smaller size in the same mode.
func (c SizeConfig) Shrink() SizeConfig {
	c = c.normalized()
	if c.Fixed {
		c.Size = max(minFixed, c.Size-fixedStep)
	} else {
		c.Size = max(minScale, c.Size-scaleStep)
	}
	return c
}

// ToggleFixed switches between scaled and fixed sizing, keeping the
// picture roughly the same size on screen.
func (c SizeConfig) ToggleFixed() SizeConfig {
	c = c.normalized()
	if c.Fixed {
		return SizeConfig{Size: max(minScale, min(maxScale, c.Size/frameScale))}
	}
	return SizeConfig{Size: max(minFixed, min(maxFixed, c.Size*frameScale)), Fixed: true}
}
