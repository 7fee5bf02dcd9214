// Package render 定义射手图标使用的绘图表面及其实现
//
// Surface 以画布风格的即时模式 API 描述绘制：
// 当前颜色、线宽、线帽以及可以 Save/Restore 的二维仿射变换。
// 提供两种实现：
//   - EbitenSurface：绘制到 *ebiten.Image（交互窗口、移动端）
//   - GGSurface：绘制到 gg.Context（离线渲染、GIF 导出）
package render

import "image/color"

// LineCap 线段端点样式
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// Surface 绘图表面
//
// 变换只包含平移和旋转，线宽和半径不受变换影响。
// Save/Restore 成对使用，保存并恢复变换、颜色、线宽和线帽；
// 多余的 Restore 被忽略。
type Surface interface {
	// Size 返回表面尺寸（像素）
	Size() (width, height float64)
	// Clear 用颜色填充整个表面，不受当前变换影响
	Clear(c color.Color)

	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)

	// StrokeLine 用当前颜色、线宽和线帽绘制线段
	StrokeLine(x1, y1, x2, y2 float64)
	// FillCircle 用当前颜色填充圆盘
	FillCircle(x, y, r float64)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(angle float64)
}
