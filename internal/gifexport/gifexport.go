// Package gifexport 离屏模拟射手链动画并导出为 GIF
//
// 模拟使用与窗口版相同的链协调器、交互控制器和调度器，
// 每次重绘请求记录一帧；光栅化通过 gg 在多个 goroutine 中并行完成。
package gifexport

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"log"
	"runtime"
	"time"

	"github.com/creachadair/taskgroup"

	"github.com/decker502/shooterchain/pkg/components"
	"github.com/decker502/shooterchain/pkg/config"
	"github.com/decker502/shooterchain/pkg/ecs"
	"github.com/decker502/shooterchain/pkg/entities"
	"github.com/decker502/shooterchain/pkg/game"
	"github.com/decker502/shooterchain/pkg/render"
	"github.com/decker502/shooterchain/pkg/systems"
)

// Frame 一帧需要绘制的内容：当前节点的颜色和进度
type Frame struct {
	Node     int
	Color    color.Color
	Progress float64
}

// Options 导出选项
type Options struct {
	Triggers int // 模拟的触发次数
	Stride   int // 每 Stride 帧保留一帧，<= 1 时保留全部
}

// Record 离屏模拟 triggers 次触发，返回每次重绘请求对应的帧
// 每次触发都等待上一次过渡结束后再发出
func Record(cfg *config.ChainConfig, triggers int) ([]Frame, error) {
	if triggers < 1 {
		return nil, fmt.Errorf("triggers must be >= 1, got %d", triggers)
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	nodes, err := entities.NewShooterChain(em, colors, cfg.Step())
	if err != nil {
		return nil, err
	}
	chain, err := systems.NewChainSystem(em, nodes)
	if err != nil {
		return nil, err
	}

	var frames []Frame
	capture := func() {
		style, _ := ecs.GetComponent[*components.ShooterStyleComponent](em, chain.Current())
		frames = append(frames, Frame{
			Node:     chain.CurrentIndex(),
			Color:    style.Color,
			Progress: chain.CurrentState().Progress,
		})
	}

	scheduler := game.NewFrameScheduler()
	animator := game.NewAnimator(scheduler, cfg.Delay())
	interaction := systems.NewInteractionSystem(chain, animator, systems.RedrawFunc(capture))

	for i := 0; i < triggers; i++ {
		if !interaction.HandleTrigger() {
			return nil, errors.New("trigger ignored while idle")
		}
		for interaction.IsAnimating() {
			scheduler.Step(animator.Period())
		}
	}
	log.Printf("[GIFExport] 记录 %d 帧 (%d 次触发)", len(frames), triggers)
	return frames, nil
}

// Render 把帧光栅化为 GIF
// 每帧的显示时长等于动画 tick 周期
func Render(cfg *config.ChainConfig, frames []Frame, stride int) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, errors.New("no frames to render")
	}
	background, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	if stride > 1 {
		frames = sample(frames, stride)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	bounds := image.Rect(0, 0, w, h)
	geometry := systems.NewShooterGeometry(float64(w), float64(h), cfg.Shooter)
	pal := buildPalette(append([]color.Color{background}, colors...))

	// GIF 延迟以 1/100 秒为单位
	delay := max(1, int(cfg.Delay()*time.Duration(max(stride, 1))/(10*time.Millisecond)))

	out := &gif.GIF{
		Image:    make([]*image.Paletted, len(frames)),
		Delay:    make([]int, len(frames)),
		Disposal: make([]byte, len(frames)),
		Config:   image.Config{ColorModel: pal, Width: w, Height: h},
	}

	rStart := time.Now()
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i, f := range frames {
		run.Run(func() {
			s := render.NewGGSurface(w, h)
			s.Clear(background)
			systems.DrawShooter(s, geometry, f.Color, f.Progress)

			dst := image.NewPaletted(bounds, pal)
			draw.Draw(dst, bounds, s.Image(), image.Point{}, draw.Src)
			out.Image[i] = dst
			out.Delay[i] = delay
			out.Disposal[i] = gif.DisposalNone
		})
	}
	g.Wait()

	log.Printf("[GIFExport] 渲染完成: %d 帧, 耗时 %v", len(frames), time.Since(rStart).Round(time.Millisecond))
	return out, nil
}

// Export 模拟、渲染并把 GIF 写入 w
func Export(w io.Writer, cfg *config.ChainConfig, opts Options) error {
	frames, err := Record(cfg, opts.Triggers)
	if err != nil {
		return fmt.Errorf("failed to record frames: %w", err)
	}
	img, err := Render(cfg, frames, opts.Stride)
	if err != nil {
		return fmt.Errorf("failed to render frames: %w", err)
	}
	if err := gif.EncodeAll(w, img); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return nil
}

// sample 每 stride 帧取一帧，始终保留最后一帧
func sample(frames []Frame, stride int) []Frame {
	var kept []Frame
	for i := 0; i < len(frames); i += stride {
		kept = append(kept, frames[i])
	}
	if (len(frames)-1)%stride != 0 {
		kept = append(kept, frames[len(frames)-1])
	}
	return kept
}

// buildPalette 以精确颜色开头，其余位置用 Plan9 调色板补齐到 256 色
// 背景和节点颜色因此不会被量化
func buildPalette(exact []color.Color) color.Palette {
	pal := make(color.Palette, 0, 256)
	seen := make(map[color.RGBA]bool)
	add := func(c color.Color) {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		if seen[rgba] || len(pal) >= 256 {
			return
		}
		seen[rgba] = true
		pal = append(pal, rgba)
	}
	for _, c := range exact {
		add(c)
	}
	for _, c := range palette.Plan9 {
		add(c)
	}
	return pal
}
