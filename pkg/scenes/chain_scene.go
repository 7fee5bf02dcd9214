package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/shooterchain/pkg/config"
	"github.com/decker502/shooterchain/pkg/ecs"
	"github.com/decker502/shooterchain/pkg/entities"
	"github.com/decker502/shooterchain/pkg/game"
	"github.com/decker502/shooterchain/pkg/render"
	"github.com/decker502/shooterchain/pkg/systems"
	"github.com/decker502/shooterchain/pkg/utils"
)

// ChainScene 射手链动画场景
// 点击、触摸或空格触发当前节点的过渡；过渡完成后链移动到下一个节点，
// 到达链的两端时反转方向
type ChainScene struct {
	chain        *systems.ChainSystem
	interaction  *systems.InteractionSystem
	renderSystem *systems.ShooterRenderSystem
	scheduler    *game.FrameScheduler

	// 离屏画布，只在收到重绘请求后重新绘制
	canvas  *ebiten.Image
	surface *render.EbitenSurface
	dirty   bool

	verbose bool
	redraws int
}

// NewChainScene 根据配置构建链、系统和画布
func NewChainScene(cfg *config.ChainConfig, verbose bool) (*ChainScene, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	nodes, err := entities.NewShooterChain(em, palette, cfg.Step())
	if err != nil {
		return nil, fmt.Errorf("failed to create shooter chain: %w", err)
	}
	chain, err := systems.NewChainSystem(em, nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to create chain system: %w", err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	canvas := ebiten.NewImage(w, h)
	geometry := systems.NewShooterGeometry(float64(w), float64(h), cfg.Shooter)
	scheduler := game.NewFrameScheduler()

	s := &ChainScene{
		chain:        chain,
		renderSystem: systems.NewShooterRenderSystem(em, chain, geometry, background),
		scheduler:    scheduler,
		canvas:       canvas,
		surface:      render.NewEbitenSurface(canvas),
		dirty:        true,
		verbose:      verbose,
	}
	animator := game.NewAnimator(scheduler, cfg.Delay())
	s.interaction = systems.NewInteractionSystem(chain, animator, systems.RedrawFunc(s.requestRedraw))

	log.Printf("[ChainScene] 创建完成: %d 个节点, 步长 %.4f, tick 周期 %v", chain.Len(), cfg.Step(), cfg.Delay())
	return s, nil
}

// requestRedraw 标记画布需要重绘
func (s *ChainScene) requestRedraw() {
	s.dirty = true
	s.redraws++
}

// Trigger 处理一次用户触发
func (s *ChainScene) Trigger() bool {
	return s.interaction.HandleTrigger()
}

// Chain 返回链协调器
func (s *ChainScene) Chain() *systems.ChainSystem {
	return s.chain
}

// IsAnimating 是否有进行中的过渡
func (s *ChainScene) IsAnimating() bool {
	return s.interaction.IsAnimating()
}

// Update 处理输入并推进调度器
func (s *ChainScene) Update(deltaTime float64) {
	if utils.IsTriggerJustPressed() {
		s.Trigger()
	}
	s.scheduler.Step(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 按需重绘画布后绘制到屏幕
func (s *ChainScene) Draw(screen *ebiten.Image) {
	if s.dirty {
		s.renderSystem.Draw(s.surface)
		s.dirty = false
	}
	screen.DrawImage(s.canvas, nil)

	if s.verbose {
		s.drawDebugInfo(screen)
	}
}

// drawDebugInfo 绘制调试信息
func (s *ChainScene) drawDebugInfo(screen *ebiten.Image) {
	state := s.chain.CurrentState()
	lines := []string{
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
		fmt.Sprintf("node: %d/%d  dir: %+d", s.chain.CurrentIndex(), s.chain.Len(), s.chain.Direction()),
		fmt.Sprintf("progress: %.3f  state dir: %+d", state.Progress, state.Direction),
		fmt.Sprintf("redraws: %d", s.redraws),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}
