package components

import (
	"image/color"

	"github.com/decker502/shooterchain/pkg/ecs"
)

// ChainLinkComponent 链节点组件
// 记录节点在链中的位置以及前后邻居
// 邻居为 0 表示链的边界（Prev==0 为链头，Next==0 为链尾）
type ChainLinkComponent struct {
	Index int
	Prev  ecs.EntityID
	Next  ecs.EntityID
}

// IsHead 是否为链头
func (c *ChainLinkComponent) IsHead() bool {
	return c.Prev == 0
}

// IsTail 是否为链尾
func (c *ChainLinkComponent) IsTail() bool {
	return c.Next == 0
}

// ShooterStyleComponent 射手图标的视觉标识
type ShooterStyleComponent struct {
	// Color 描边与填充颜色，取自调色板第 Index 项
	Color color.Color
}
