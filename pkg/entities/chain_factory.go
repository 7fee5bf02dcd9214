package entities

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/shooterchain/pkg/components"
	"github.com/decker502/shooterchain/pkg/ecs"
)

// NewShooterChain 创建射手链
// 每种颜色创建一个节点实体，然后按下标连接前后邻居
//
// 参数:
//   - em: 实体管理器
//   - palette: 调色板，长度即链长
//   - step: 每个节点缓动状态的每 tick 进度增量
//
// 返回:
//   - []ecs.EntityID: 按链顺序排列的节点实体，下标 0 为链头
//   - error: 参数非法时返回错误
//
// 每个节点实体拥有 ChainLinkComponent、ShooterStyleComponent 和 EasingStateComponent。
func NewShooterChain(em *ecs.EntityManager, palette []color.Color, step float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, errors.New("entity manager cannot be nil")
	}
	if len(palette) == 0 {
		return nil, errors.New("palette cannot be empty")
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid step %v, must be positive", step)
	}

	// 先分配全部节点，再按下标连接邻居
	ids := make([]ecs.EntityID, len(palette))
	for i, clr := range palette {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.ChainLinkComponent{Index: i})
		ecs.AddComponent(em, id, &components.ShooterStyleComponent{Color: clr})
		ecs.AddComponent(em, id, components.NewEasingState(step))
		ids[i] = id
	}

	for i, id := range ids {
		link, _ := ecs.GetComponent[*components.ChainLinkComponent](em, id)
		if i > 0 {
			link.Prev = ids[i-1]
		}
		if i < len(ids)-1 {
			link.Next = ids[i+1]
		}
	}

	log.Printf("[ChainFactory] 创建射手链: %d 个节点, step=%.4f", len(ids), step)
	return ids, nil
}
