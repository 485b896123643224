package ui

import (
	"image"
	"image/color"
	"sync"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type ToastType int

const (
	ToastInfo ToastType = iota
	ToastError
)

// toast is a short message shown over the bottom of the grid. It may be
// set from any goroutine.
type toast struct {
	mu        sync.Mutex
	message   string
	kind      ToastType
	expiresAt time.Time
}

const toastDuration = 3 * time.Second

// ShowToast displays message until it expires. A newer toast replaces the
// current one.
func (r *Renderer) ShowToast(message string, kind ToastType) {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()
	r.toast.message = message
	r.toast.kind = kind
	r.toast.expiresAt = time.Now().Add(toastDuration)
}

func (r *Renderer) ShowError(message string) {
	r.ShowToast(message, ToastError)
}

// activeToast returns the current message, or "" once it has expired.
func (r *Renderer) activeToast(now time.Time) (string, ToastType, time.Time) {
	r.toast.mu.Lock()
	defer r.toast.mu.Unlock()
	if r.toast.message == "" || now.After(r.toast.expiresAt) {
		r.toast.message = ""
		return "", ToastInfo, time.Time{}
	}
	return r.toast.message, r.toast.kind, r.toast.expiresAt
}

func (r *Renderer) layoutToast(gtx layout.Context) layout.Dimensions {
	message, kind, expiresAt := r.activeToast(time.Now())
	if message == "" {
		return layout.Dimensions{}
	}
	// Redraw when it goes away
	gtx.Execute(op.InvalidateCmd{At: expiresAt})

	bg := color.NRGBA{R: 60, G: 60, B: 60, A: 240}
	if kind == ToastError {
		bg = color.NRGBA{R: 200, G: 50, B: 50, A: 240}
	}

	return layout.S.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(20), Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(500))

			// Measure the text before drawing the background under it
			macro := op.Record(gtx.Ops)
			dims := layout.Inset{Top: 10, Bottom: 10, Left: 16, Right: 16}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(r.Theme, message)
				lbl.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
				return lbl.Layout(gtx)
			})
			call := macro.Stop()

			rr := gtx.Dp(8)
			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(image.Rectangle{Max: dims.Size}, rr).Op(gtx.Ops))
			call.Add(gtx.Ops)
			return dims
		})
	})
}
