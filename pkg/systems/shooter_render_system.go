package systems

import (
	"image/color"
	"math"

	"github.com/decker502/shooterchain/pkg/components"
	"github.com/decker502/shooterchain/pkg/config"
	"github.com/decker502/shooterchain/pkg/ecs"
	"github.com/decker502/shooterchain/pkg/render"
	"github.com/decker502/shooterchain/pkg/utils"
)

const (
	// ShooterPhases 射手图标一次过渡的子阶段数量
	//   0: 底座和枪管长出
	//   1: 图标顺时针旋转 90°
	//   2: 子弹沿枪管移动到枪口
	//   3: 子弹飞出画面
	//   4: 图标转回
	//   5: 图标向右滑出画面
	ShooterPhases = 6

	// renderEpsilon 第一阶段低于此值或最后阶段高于 1-renderEpsilon 时不绘制
	renderEpsilon = 0.001
)

// ShooterGeometry 由窗口尺寸推导出的图标几何参数，启动时计算一次
type ShooterGeometry struct {
	Width       float64
	Height      float64
	StrokeWidth float64 // 线宽
	Size        float64 // 枪管长度
	Radius      float64 // 底座半径
}

// NewShooterGeometry 根据表面尺寸和尺寸系数计算几何参数
func NewShooterGeometry(width, height float64, cfg config.ShooterConfig) ShooterGeometry {
	short := math.Min(width, height)
	size := short / cfg.SizeFactor
	return ShooterGeometry{
		Width:       width,
		Height:      height,
		StrokeWidth: short / cfg.StrokeFactor,
		Size:        size,
		Radius:      size / cfg.RFactor,
	}
}

// BulletRadius 子弹半径
func (g ShooterGeometry) BulletRadius() float64 {
	return g.Radius / 2
}

// bulletTravel 子弹飞出画面所需的距离（从枪口算起）
func (g ShooterGeometry) bulletTravel() float64 {
	return math.Max(g.Width, g.Height)/2 + g.Radius
}

// slideTravel 图标滑出画面所需的距离
func (g ShooterGeometry) slideTravel() float64 {
	return g.Width/2 + g.Size + g.Radius
}

// ShouldDrawShooter 判断给定进度下是否需要绘制图标
// 过渡两端（尚未长出 / 已经滑出）不绘制
func ShouldDrawShooter(progress float64) bool {
	first := utils.DivideScale(progress, 0, ShooterPhases)
	last := utils.DivideScale(progress, ShooterPhases-1, ShooterPhases)
	return first >= renderEpsilon && last <= 1-renderEpsilon
}

// DrawShooter 在表面中心绘制进度为 progress 的射手图标
// 每个子阶段只驱动一个视觉参数，参数依次变化
func DrawShooter(s render.Surface, g ShooterGeometry, clr color.Color, progress float64) {
	if !ShouldDrawShooter(progress) {
		return
	}
	sc := utils.SubPhases(progress, ShooterPhases)

	s.Save()
	defer s.Restore()

	s.Translate(g.Width/2+g.slideTravel()*sc[5], g.Height/2)
	s.Rotate(math.Pi / 2 * (sc[1] - sc[4]))

	s.SetColor(clr)
	s.SetLineWidth(g.StrokeWidth)
	s.SetLineCap(render.LineCapRound)

	barrel := g.Size * sc[0]
	s.FillCircle(0, 0, g.Radius*sc[0])
	s.StrokeLine(0, 0, 0, -barrel)

	// 子弹在第 2 阶段出现，第 3 阶段结束时离开画面
	if sc[2] > 0 && sc[3] < 1 {
		by := -g.Size*sc[2] - g.bulletTravel()*sc[3]
		s.FillCircle(0, by, g.BulletRadius())
	}
}

// ShooterRenderSystem 绘制背景和链上的当前节点
type ShooterRenderSystem struct {
	entityManager *ecs.EntityManager
	chain         *ChainSystem
	geometry      ShooterGeometry
	background    color.Color
}

// NewShooterRenderSystem 创建渲染系统
func NewShooterRenderSystem(em *ecs.EntityManager, chain *ChainSystem, geometry ShooterGeometry, background color.Color) *ShooterRenderSystem {
	return &ShooterRenderSystem{
		entityManager: em,
		chain:         chain,
		geometry:      geometry,
		background:    background,
	}
}

// Geometry 返回几何参数
func (rs *ShooterRenderSystem) Geometry() ShooterGeometry {
	return rs.geometry
}

// Draw 清空表面并绘制当前节点
func (rs *ShooterRenderSystem) Draw(s render.Surface) {
	s.Clear(rs.background)

	id := rs.chain.Current()
	style, ok := ecs.GetComponent[*components.ShooterStyleComponent](rs.entityManager, id)
	if !ok {
		return
	}
	DrawShooter(s, rs.geometry, style.Color, rs.chain.CurrentState().Progress)
}
