package components

import "math"

// StepResult 是 EasingStateComponent.Update 单次推进的结果
type StepResult int

const (
	// StepIdle 当前没有进行中的过渡，本次推进不改变任何状态
	StepIdle StepResult = iota
	// StepInProgress 进度已推进一步，过渡尚未完成
	StepInProgress
	// StepCompleted 过渡刚刚完成，进度已吸附到目标端点
	StepCompleted
)

// String 返回可读的结果名称（用于日志）
func (r StepResult) String() string {
	switch r {
	case StepIdle:
		return "idle"
	case StepInProgress:
		return "in-progress"
	case StepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// EasingStateComponent 缓动状态组件
// 每个链节点持有一个，描述该节点图标从 0 到 1（或从 1 回到 0）的过渡进度
//
// 不变量：
//   - Progress 只会按 Direction*Step 的固定增量变化
//   - Direction == 0 表示空闲
//   - 空闲时 Snapshot 恰好为 0 或 1
type EasingStateComponent struct {
	// Progress 当前进度，名义范围 [0, 1]
	// 过渡的最后一步可能短暂越界不足一个 Step，随后被吸附回端点
	Progress float64

	// Direction 过渡方向：+1 前进，-1 后退，0 空闲
	Direction int

	// Snapshot 上一次静止时的进度（0 或 1）
	Snapshot float64

	// Step 每个 tick 的进度增量（如 0.06/6 = 0.01，即 100 个 tick 完成一次过渡）
	Step float64
}

// NewEasingState 创建静止在 0 的缓动状态
func NewEasingState(step float64) *EasingStateComponent {
	return &EasingStateComponent{Step: step}
}

// IsIdle 是否处于空闲状态
func (s *EasingStateComponent) IsIdle() bool {
	return s.Direction == 0
}

// Update 推进一个 tick
//
// 当进度与 Snapshot 的差值超过一个完整单位时，
// 进度被吸附到 Snapshot+Direction，方向归零，并返回 StepCompleted。
func (s *EasingStateComponent) Update() StepResult {
	if s.Direction == 0 {
		return StepIdle
	}
	s.Progress += float64(s.Direction) * s.Step
	if math.Abs(s.Progress-s.Snapshot) > 1 {
		s.Progress = s.Snapshot + float64(s.Direction)
		s.Direction = 0
		s.Snapshot = s.Progress
		return StepCompleted
	}
	return StepInProgress
}

// StartUpdating 开始一次过渡，方向总是离开当前静止的端点
// 静止在 0 时方向为 +1，静止在 1 时方向为 -1
// 过渡进行中调用为无操作，返回 false
func (s *EasingStateComponent) StartUpdating() bool {
	if s.Direction != 0 {
		return false
	}
	// 等价于 1 - 2*Snapshot；按 0.5 判断避免 Snapshot 偏离端点时得到 0 或非单位方向
	if s.Snapshot < 0.5 {
		s.Direction = 1
	} else {
		s.Direction = -1
	}
	return true
}
