package main

import (
	"math"

	"github.com/gogpu/gg"
)

// drawScene paints one demo frame. frame advances the rotation.
func drawScene(dc *gg.Context, frame int) {
	w, h := dc.Width(), dc.Height()
	drawGradientBackground(dc, w, h)
	drawCircles(dc, float64(w)/2, float64(h)/2)
	drawSpinner(dc, float64(w)/2, float64(h)/2, float64(frame)*math.Pi/32)
}

func drawGradientBackground(dc *gg.Context, w, h int) {
	steps := 100
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetColor(gg.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2))
		y := float64(h) * t
		dc.DrawRectangle(0, y, float64(w), float64(h)/float64(steps)+1)
		_ = dc.Fill()
	}
}

func drawCircles(dc *gg.Context, cx, cy float64) {
	dc.SetRGBA(1, 0.3, 0.3, 0.8)
	dc.DrawCircle(cx-40, cy-30, 60)
	_ = dc.Fill()

	dc.SetRGBA(0.3, 1, 0.3, 0.8)
	dc.DrawCircle(cx+40, cy-30, 60)
	_ = dc.Fill()

	dc.SetRGBA(0.3, 0.3, 1, 0.8)
	dc.DrawCircle(cx, cy+35, 60)
	_ = dc.Fill()
}

// drawSpinner draws rotated squares around (cx, cy).
func drawSpinner(dc *gg.Context, cx, cy, phase float64) {
	for i := 0; i < 8; i++ {
		angle := float64(i)*math.Pi/4 + phase
		dc.Push()
		dc.Translate(cx, cy)
		dc.Rotate(angle)
		dc.SetColor(gg.HSL(float64(i)*45, 0.8, 0.6))
		dc.DrawRectangle(140, -10, 20, 20)
		_ = dc.Fill()
		dc.Pop()
	}
}
