package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// GGSurface 基于 gg.Context 的 Surface 实现，用于离线渲染
type GGSurface struct {
	dc    *gg.Context
	depth int // 未配对的 Save 数量，用于忽略多余的 Restore
}

// NewGGSurface 创建指定尺寸的离屏表面
func NewGGSurface(width, height int) *GGSurface {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	return &GGSurface{dc: dc}
}

// Image 返回绘制结果
func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

// Size 实现 Surface
func (s *GGSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Clear 实现 Surface
func (s *GGSurface) Clear(c color.Color) {
	s.dc.Push()
	s.dc.SetColor(c)
	s.dc.Clear()
	s.dc.Pop()
}

// SetColor 实现 Surface
func (s *GGSurface) SetColor(c color.Color) {
	s.dc.SetColor(c)
}

// SetLineWidth 实现 Surface
func (s *GGSurface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

// SetLineCap 实现 Surface
func (s *GGSurface) SetLineCap(lineCap LineCap) {
	switch lineCap {
	case LineCapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case LineCapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

// StrokeLine 实现 Surface
func (s *GGSurface) StrokeLine(x1, y1, x2, y2 float64) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// FillCircle 实现 Surface
func (s *GGSurface) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

// Save 实现 Surface
func (s *GGSurface) Save() {
	s.dc.Push()
	s.depth++
}

// Restore 实现 Surface
func (s *GGSurface) Restore() {
	if s.depth == 0 {
		return
	}
	s.dc.Pop()
	s.depth--
}

// Translate 实现 Surface
func (s *GGSurface) Translate(dx, dy float64) {
	s.dc.Translate(dx, dy)
}

// Rotate 实现 Surface
func (s *GGSurface) Rotate(angle float64) {
	s.dc.Rotate(angle)
}
