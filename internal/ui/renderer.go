package ui

import (
	"path/filepath"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/thumbview/internal/debug"
	"github.com/justyntemme/thumbview/internal/explorer"
)

// Renderer lays out the window: a toolbar above a grid of file thumbs.
type Renderer struct {
	Theme  *material.Theme
	Thumbs *ThumbRenderer

	listState layout.List
	thumbs    []FileThumb // parallel to State.Items

	themeBtn  widget.Clickable
	growBtn   widget.Clickable
	shrinkBtn widget.Clickable
	fixedBtn  widget.Clickable
	reloadBtn widget.Clickable

	toast toast
}

func NewRenderer(thumbs *ThumbRenderer) *Renderer {
	r := &Renderer{
		Theme:  material.NewTheme(),
		Thumbs: thumbs,
	}
	r.listState.Axis = layout.Vertical
	return r
}

// Layout draws the window and returns the action the user took, if any.
func (r *Renderer) Layout(gtx layout.Context, state *State) UIEvent {
	var evt UIEvent
	pal := paletteFor(state.Dark)
	paint.Fill(gtx.Ops, pal.bg)

	if r.themeBtn.Clicked(gtx) {
		evt = UIEvent{Action: ActionToggleTheme, Dark: !state.Dark}
	}
	if r.growBtn.Clicked(gtx) {
		evt = UIEvent{Action: ActionResize, Size: state.Size.Grow()}
	}
	if r.shrinkBtn.Clicked(gtx) {
		evt = UIEvent{Action: ActionResize, Size: state.Size.Shrink()}
	}
	if r.fixedBtn.Clicked(gtx) {
		evt = UIEvent{Action: ActionToggleFixed, Size: state.Size.ToggleFixed()}
	}
	if r.reloadBtn.Clicked(gtx) {
		evt = UIEvent{Action: ActionReload}
	}

	layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Max
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutToolbar(gtx, state, pal)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return r.layoutGrid(gtx, state, pal)
				}),
			)
		}),
		layout.Expanded(r.layoutToast),
	)
	return evt
}

func (r *Renderer) layoutToolbar(gtx layout.Context, state *State, pal palette) layout.Dimensions {
	themeLabel := "Dark"
	if state.Dark {
		themeLabel = "Light"
	}
	fixedLabel := "Fixed size"
	if state.Size.Fixed {
		fixedLabel = "Scaled size"
	}

	button := func(btn *widget.Clickable, label string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				b := material.Button(r.Theme, btn, label)
				b.Background = colAccent
				b.TextSize = unit.Sp(12)
				b.Inset = layout.UniformInset(unit.Dp(6))
				return b.Layout(gtx)
			})
		})
	}

	inset := layout.Inset{Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(8), Right: unit.Dp(8)}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			rect := clip.Rect{Max: gtx.Constraints.Min}
			paint.FillShape(gtx.Ops, pal.toolbar, rect.Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						lbl := material.Label(r.Theme, unit.Sp(14), state.Title)
						lbl.Color = pal.text
						lbl.MaxLines = 1
						return layout.Inset{Right: unit.Dp(12)}.Layout(gtx, lbl.Layout)
					}),
					button(&r.themeBtn, themeLabel),
					button(&r.shrinkBtn, "−"),
					button(&r.growBtn, "+"),
					button(&r.fixedBtn, fixedLabel),
					button(&r.reloadBtn, "Reload"),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						lbl := material.Label(r.Theme, unit.Sp(12), state.Status)
						lbl.Color = pal.muted
						lbl.MaxLines = 1
						lbl.Alignment = text.End
						return lbl.Layout(gtx)
					}),
				)
			})
		}),
	)
}

// columns returns how many thumbs fit in a row.
func columns(avail, itemWidth, fixed int) int {
	if fixed > 0 {
		return fixed
	}
	if itemWidth <= 0 {
		return 1
	}
	return max(1, avail/itemWidth)
}

func (r *Renderer) layoutGrid(gtx layout.Context, state *State, pal palette) layout.Dimensions {
	if len(r.thumbs) != len(state.Items) {
		r.thumbs = make([]FileThumb, len(state.Items))
	}

	padding := gtx.Dp(8)
	frame := gtx.Dp(state.Size.Frame())
	itemWidth := frame + padding
	cols := columns(gtx.Constraints.Max.X-padding*2, itemWidth, state.Columns)
	rows := (len(state.Items) + cols - 1) / cols

	debug.Log(debug.UI_LAYOUT, "grid: %d items, %d cols, frame %dpx", len(state.Items), cols, frame)

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return r.listState.Layout(gtx, rows, func(gtx layout.Context, row int) layout.Dimensions {
			var children []layout.FlexChild
			start := row * cols
			end := min(start+cols, len(state.Items))
			for i := start; i < end; i++ {
				idx := i
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return r.layoutCell(gtx, state, idx, frame, pal)
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
		})
	})
}

func (r *Renderer) layoutCell(gtx layout.Context, state *State, idx, frame int, pal palette) layout.Dimensions {
	item := &state.Items[idx]
	name := displayName(item)

	return layout.Inset{Right: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return r.Thumbs.Layout(gtx, &r.thumbs[idx], item, state.Size)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = frame
				gtx.Constraints.Min.X = frame
				maxChars := max(4, frame/gtx.Dp(7))
				lbl := material.Label(r.Theme, unit.Sp(11), truncateFilename(name, maxChars))
				lbl.Color = pal.text
				lbl.MaxLines = 1
				lbl.Alignment = text.Middle
				return lbl.Layout(gtx)
			}),
		)
	})
}

// displayName is the caption under a thumb.
func displayName(item *explorer.Item) string {
	data := explorer.Data(item)
	name := data.Name
	if name == "" && item.Item.Path != "" {
		name = filepath.Base(item.Item.Path)
	}
	if data.Extension != "" && !strings.HasSuffix(name, "."+data.Extension) && (data.IsDir == nil || !*data.IsDir) {
		name += "." + data.Extension
	}
	return name
}

func truncateFilename(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	// Show first part ... extension
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	keep := maxLen - 3 - len(ext)
	if keep < 1 {
		return name[:max(1, maxLen-3)] + "..."
	}
	if len(base) > keep {
		base = base[:keep]
	}
	return base + "..." + ext
}
