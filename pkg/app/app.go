// Package app 提供射手链动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/shooterchain/pkg/config"
	"github.com/decker502/shooterchain/pkg/game"
	"github.com/decker502/shooterchain/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/chain.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	chainConfig              *config.ChainConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 未指定 ConfigPath 时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	chainConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.ConfigPath != "" {
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
	} else {
		log.Printf("[Config] 使用嵌入配置: %s", config.DefaultConfigPath)
	}

	scene, err := scenes.NewChainScene(chainConfig, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	ebiten.SetTPS(chainConfig.Animation.TPS)
	log.Printf("[App] 启动完成: %dx%d, TPS=%d", chainConfig.Window.Width, chainConfig.Window.Height, chainConfig.Animation.TPS)

	return &App{
		sceneManager: sceneManager,
		chainConfig:  chainConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.chainConfig.Window.Width, a.chainConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.chainConfig.Window.Width, a.chainConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(a.chainConfig.Animation.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 窗口尺寸在启动时确定，Ebitengine 负责缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.chainConfig.Window.Width, a.chainConfig.Window.Height
}

// ChainConfig 返回启动时加载的配置
func (a *App) ChainConfig() *config.ChainConfig {
	return a.chainConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
