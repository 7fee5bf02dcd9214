package systems

import (
	"log"

	"github.com/decker502/shooterchain/pkg/game"
)

// Redrawer 接收重绘请求
type Redrawer interface {
	RequestRedraw()
}

// RedrawFunc 把普通函数适配为 Redrawer
type RedrawFunc func()

// RequestRedraw 实现 Redrawer
func (f RedrawFunc) RequestRedraw() {
	f()
}

// InteractionSystem 交互控制器
// 把一次用户触发转换为一次完整的节点过渡：
// 启动当前节点的过渡，驱动 Animator 直到过渡完成，然后停止 Animator
type InteractionSystem struct {
	chain    *ChainSystem
	animator *game.Animator
	redrawer Redrawer
}

// NewInteractionSystem 创建交互控制器
func NewInteractionSystem(chain *ChainSystem, animator *game.Animator, redrawer Redrawer) *InteractionSystem {
	return &InteractionSystem{
		chain:    chain,
		animator: animator,
		redrawer: redrawer,
	}
}

// HandleTrigger 处理一次触发
// 过渡进行中再次触发为无操作，返回 false
func (is *InteractionSystem) HandleTrigger() bool {
	if !is.chain.StartTransition() {
		log.Printf("[Interaction] 过渡进行中，忽略触发")
		return false
	}
	log.Printf("[Interaction] 节点 %d 开始过渡 (方向 %d)", is.chain.CurrentIndex(), is.chain.CurrentState().Direction)
	is.animator.Start(is.tick)
	return true
}

// IsAnimating 是否有进行中的动画
func (is *InteractionSystem) IsAnimating() bool {
	return is.animator.IsRunning()
}

// tick 每个动画周期调用一次：先重绘，再推进一步
// 过渡完成后停止 Animator 并做最后一次重绘
func (is *InteractionSystem) tick() {
	is.redrawer.RequestRedraw()
	if res := is.chain.Update(); res != ChainInProgress {
		is.animator.Stop()
		is.redrawer.RequestRedraw()
		log.Printf("[Interaction] 过渡结束: %v", res)
	}
}
