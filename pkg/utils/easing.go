package utils

// Sub-phase 分段函数
//
// 射手图标的一次过渡被等分为 n 个依次进行的子阶段，
// 每个子阶段只驱动一个视觉参数（生长、旋转、子弹位置、平移等），
// 因此图标是一段接一段地变化，而不是所有参数同时变化。

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DivideScale 返回进度 scale 在第 i 个（从 0 开始）子阶段内的局部进度
// 公式：min(1/n, max(0, scale - i/n)) * n，结果限制在 [0, 1]
//
// 直接用 scale*n - i 计算，保证 scale=1 时所有子阶段恰好为 1
// n <= 0 时返回 0
func DivideScale(scale float64, i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Clamp01(scale*float64(n) - float64(i))
}

// SubPhases 返回进度 scale 的全部 n 个子阶段
func SubPhases(scale float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	phases := make([]float64, n)
	for i := range phases {
		phases[i] = DivideScale(scale, i, n)
	}
	return phases
}
