package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// paintState 可被 Save/Restore 的绘制状态
type paintState struct {
	geoM      ebiten.GeoM
	color     color.Color
	lineWidth float64
	lineCap   LineCap
}

// transformStack 维护当前绘制状态和保存栈
type transformStack struct {
	current paintState
	saved   []paintState
}

func newTransformStack() transformStack {
	return transformStack{
		current: paintState{color: color.Black, lineWidth: 1},
	}
}

func (t *transformStack) save() {
	t.saved = append(t.saved, t.current)
}

func (t *transformStack) restore() {
	if len(t.saved) == 0 {
		return
	}
	t.current = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

// translate 在局部坐标系中平移（先平移，再应用已有变换）
func (t *transformStack) translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	m.Concat(t.current.geoM)
	t.current.geoM = m
}

// rotate 在局部坐标系中绕原点旋转（弧度，顺时针为正，与屏幕坐标一致）
func (t *transformStack) rotate(angle float64) {
	var m ebiten.GeoM
	m.Rotate(angle)
	m.Concat(t.current.geoM)
	t.current.geoM = m
}

func (t *transformStack) apply(x, y float64) (float64, float64) {
	return t.current.geoM.Apply(x, y)
}

// EbitenSurface 绘制到 ebiten 图像的 Surface 实现
// 线段使用 vector.StrokeLine，圆盘使用 vector.DrawFilledCircle；
// 圆形线帽通过在端点补画圆盘实现
type EbitenSurface struct {
	dst   *ebiten.Image
	stack transformStack
}

// NewEbitenSurface 创建绘制到 dst 的表面
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		dst:   dst,
		stack: newTransformStack(),
	}
}

// Size 实现 Surface
func (s *EbitenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear 实现 Surface
func (s *EbitenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// SetColor 实现 Surface
func (s *EbitenSurface) SetColor(c color.Color) {
	s.stack.current.color = c
}

// SetLineWidth 实现 Surface
func (s *EbitenSurface) SetLineWidth(width float64) {
	s.stack.current.lineWidth = width
}

// SetLineCap 实现 Surface
func (s *EbitenSurface) SetLineCap(lineCap LineCap) {
	s.stack.current.lineCap = lineCap
}

// StrokeLine 实现 Surface
func (s *EbitenSurface) StrokeLine(x1, y1, x2, y2 float64) {
	st := s.stack.current
	ax, ay := s.stack.apply(x1, y1)
	bx, by := s.stack.apply(x2, y2)
	half := st.lineWidth / 2

	if st.lineCap == LineCapSquare {
		ax, ay, bx, by = extendSegment(ax, ay, bx, by, half)
	}

	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(st.lineWidth), st.color, true)

	if st.lineCap == LineCapRound {
		vector.DrawFilledCircle(s.dst, float32(ax), float32(ay), float32(half), st.color, true)
		vector.DrawFilledCircle(s.dst, float32(bx), float32(by), float32(half), st.color, true)
	}
}

// FillCircle 实现 Surface
func (s *EbitenSurface) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	cx, cy := s.stack.apply(x, y)
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), s.stack.current.color, true)
}

// Save 实现 Surface
func (s *EbitenSurface) Save() {
	s.stack.save()
}

// Restore 实现 Surface
func (s *EbitenSurface) Restore() {
	s.stack.restore()
}

// Translate 实现 Surface
func (s *EbitenSurface) Translate(dx, dy float64) {
	s.stack.translate(dx, dy)
}

// Rotate 实现 Surface
func (s *EbitenSurface) Rotate(angle float64) {
	s.stack.rotate(angle)
}

// extendSegment 将线段两端各沿方向延长 d（方形线帽）
// 零长度线段保持不变
func extendSegment(ax, ay, bx, by, d float64) (float64, float64, float64, float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return ax, ay, bx, by
	}
	ux, uy := dx/length*d, dy/length*d
	return ax - ux, ay - uy, bx + ux, by + uy
}
