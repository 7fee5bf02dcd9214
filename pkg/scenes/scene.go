// Package scenes 包含射手链动画的场景实现
package scenes

import (
	"github.com/decker502/shooterchain/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现都满足 game.Scene 接口
type Scene = game.Scene

var _ Scene = (*ChainScene)(nil)
