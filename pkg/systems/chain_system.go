package systems

import (
	"errors"
	"log"

	"github.com/decker502/shooterchain/pkg/components"
	"github.com/decker502/shooterchain/pkg/ecs"
)

// ChainResult 是 ChainSystem.Update 单次推进的结果
type ChainResult int

const (
	// ChainIdle 当前节点没有进行中的过渡
	ChainIdle ChainResult = iota
	// ChainInProgress 当前节点的过渡仍在进行
	ChainInProgress
	// ChainAdvanced 当前节点过渡完成，当前指针已移动到邻居
	ChainAdvanced
	// ChainBoundaryReached 当前节点过渡完成，但已到达链的边界：
	// 遍历方向反转，当前指针不变
	ChainBoundaryReached
)

// String 返回可读的结果名称（用于日志）
func (r ChainResult) String() string {
	switch r {
	case ChainIdle:
		return "idle"
	case ChainInProgress:
		return "in-progress"
	case ChainAdvanced:
		return "advanced"
	case ChainBoundaryReached:
		return "boundary"
	default:
		return "unknown"
	}
}

// ChainSystem 链协调器
// 持有当前节点和遍历方向，在节点过渡完成时沿方向移动到下一个节点，
// 在链的两端反转方向
type ChainSystem struct {
	entityManager *ecs.EntityManager
	nodes         []ecs.EntityID
	current       ecs.EntityID
	direction     int // +1 向链尾，-1 向链头
}

// NewChainSystem 创建链协调器，初始位于链头、方向向前
func NewChainSystem(em *ecs.EntityManager, nodes []ecs.EntityID) (*ChainSystem, error) {
	if em == nil {
		return nil, errors.New("entity manager cannot be nil")
	}
	if len(nodes) == 0 {
		return nil, errors.New("chain cannot be empty")
	}
	for _, id := range nodes {
		if !ecs.HasComponentOf[*components.ChainLinkComponent](em, id) ||
			!ecs.HasComponentOf[*components.EasingStateComponent](em, id) {
			return nil, errors.New("chain node is missing link or easing state component")
		}
	}
	return &ChainSystem{
		entityManager: em,
		nodes:         nodes,
		current:       nodes[0],
		direction:     1,
	}, nil
}

// Current 返回当前节点
func (cs *ChainSystem) Current() ecs.EntityID {
	return cs.current
}

// CurrentIndex 返回当前节点在链中的下标
func (cs *ChainSystem) CurrentIndex() int {
	return cs.link(cs.current).Index
}

// CurrentState 返回当前节点的缓动状态
func (cs *ChainSystem) CurrentState() *components.EasingStateComponent {
	return cs.state(cs.current)
}

// Direction 返回遍历方向（+1 或 -1）
func (cs *ChainSystem) Direction() int {
	return cs.direction
}

// Len 返回链长
func (cs *ChainSystem) Len() int {
	return len(cs.nodes)
}

// Nodes 返回按链顺序排列的节点
func (cs *ChainSystem) Nodes() []ecs.EntityID {
	return cs.nodes
}

// Neighbor 返回节点在指定方向上的邻居
// direction == -1 取前驱，否则取后继；
// 邻居不存在（到达边界）时返回节点自身和 false
func (cs *ChainSystem) Neighbor(id ecs.EntityID, direction int) (ecs.EntityID, bool) {
	link := cs.link(id)
	next := link.Next
	if direction == -1 {
		next = link.Prev
	}
	if next == 0 {
		return id, false
	}
	return next, true
}

// StartTransition 让当前节点开始过渡
// 过渡进行中时为无操作，返回 false
func (cs *ChainSystem) StartTransition() bool {
	return cs.state(cs.current).StartUpdating()
}

// Update 推进当前节点一个 tick
// 节点过渡完成时沿遍历方向移动；到达边界时反转方向并停留在原节点
// 这是遍历方向唯一可能改变的地方
func (cs *ChainSystem) Update() ChainResult {
	switch cs.state(cs.current).Update() {
	case components.StepIdle:
		return ChainIdle
	case components.StepInProgress:
		return ChainInProgress
	}

	next, ok := cs.Neighbor(cs.current, cs.direction)
	if !ok {
		cs.direction = -cs.direction
		log.Printf("[ChainSystem] 到达边界 (节点 %d)，方向反转为 %d", cs.CurrentIndex(), cs.direction)
		return ChainBoundaryReached
	}
	cs.current = next
	log.Printf("[ChainSystem] 移动到节点 %d", cs.CurrentIndex())
	return ChainAdvanced
}

func (cs *ChainSystem) link(id ecs.EntityID) *components.ChainLinkComponent {
	link, _ := ecs.GetComponent[*components.ChainLinkComponent](cs.entityManager, id)
	return link
}

func (cs *ChainSystem) state(id ecs.EntityID) *components.EasingStateComponent {
	state, _ := ecs.GetComponent[*components.EasingStateComponent](cs.entityManager, id)
	return state
}
