package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/shooterchain/pkg/embedded"
)

// DefaultConfigPath 嵌入的默认配置路径
const DefaultConfigPath = "data/chain.yaml"

// ChainConfig 射手链动画的完整配置
// 启动时构造一次，之后以只读方式传给各个组件
type ChainConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Shooter   ShooterConfig   `yaml:"shooter"`

	// Background 背景色（十六进制，如 "#bdbdbd"）
	Background string `yaml:"background"`

	// Palette 调色板，每种颜色对应链上的一个节点
	Palette []string `yaml:"palette"`
}

// WindowConfig 窗口配置（启动时确定，不处理窗口缩放）
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AnimationConfig 动画节奏配置
type AnimationConfig struct {
	Parts    int     `yaml:"parts"`     // 步长分母，与 scale_gap 一起决定一次过渡的 tick 数
	ScaleGap float64 `yaml:"scale_gap"` // 一个子阶段内每 tick 的进度增量，实际步长为 ScaleGap / Parts
	DelayMS  int     `yaml:"delay_ms"`  // 动画 tick 周期（毫秒）
	TPS      int     `yaml:"tps"`       // 游戏循环目标 TPS
}

// ShooterConfig 射手图标的尺寸系数，均相对于窗口短边
type ShooterConfig struct {
	StrokeFactor float64 `yaml:"stroke_factor"` // 线宽 = 短边 / StrokeFactor
	SizeFactor   float64 `yaml:"size_factor"`   // 枪管长度 = 短边 / SizeFactor
	RFactor      float64 `yaml:"r_factor"`      // 底座半径 = 枪管长度 / RFactor
}

// DefaultPalette 默认调色板
var DefaultPalette = []string{
	"#f44336",
	"#311B92",
	"#00C853",
	"#FFD600",
	"#0D47A1",
}

// DefaultChainConfig 返回内置默认配置
func DefaultChainConfig() *ChainConfig {
	cfg := &ChainConfig{
		Palette: append([]string(nil), DefaultPalette...),
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults 为未设置（零值）的字段填充默认值
// 调色板不填充默认值，缺失时由 Validate 报错
func (c *ChainConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 800
	}
	if c.Window.Title == "" {
		c.Window.Title = "Shooter Chain"
	}
	if c.Animation.Parts == 0 {
		c.Animation.Parts = 6
	}
	if c.Animation.ScaleGap == 0 {
		c.Animation.ScaleGap = 0.06
	}
	if c.Animation.DelayMS == 0 {
		c.Animation.DelayMS = 20
	}
	if c.Animation.TPS == 0 {
		c.Animation.TPS = 60
	}
	if c.Shooter.StrokeFactor == 0 {
		c.Shooter.StrokeFactor = 90
	}
	if c.Shooter.SizeFactor == 0 {
		c.Shooter.SizeFactor = 6.9
	}
	if c.Shooter.RFactor == 0 {
		c.Shooter.RFactor = 2.9
	}
	if c.Background == "" {
		c.Background = "#bdbdbd"
	}
}

// Validate 校验配置
func (c *ChainConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Animation.Parts < 1 {
		return fmt.Errorf("animation parts must be >= 1, got %d", c.Animation.Parts)
	}
	if c.Animation.ScaleGap <= 0 {
		return fmt.Errorf("animation scale_gap must be positive, got %v", c.Animation.ScaleGap)
	}
	if c.Animation.DelayMS <= 0 {
		return fmt.Errorf("animation delay_ms must be positive, got %d", c.Animation.DelayMS)
	}
	if c.Animation.TPS <= 0 {
		return fmt.Errorf("animation tps must be positive, got %d", c.Animation.TPS)
	}
	if c.Shooter.StrokeFactor <= 0 || c.Shooter.SizeFactor <= 0 || c.Shooter.RFactor <= 0 {
		return fmt.Errorf("shooter factors must be positive, got stroke=%v size=%v r=%v",
			c.Shooter.StrokeFactor, c.Shooter.SizeFactor, c.Shooter.RFactor)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette is empty")
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// Step 每个 tick 的进度增量
func (c *ChainConfig) Step() float64 {
	return c.Animation.ScaleGap / float64(c.Animation.Parts)
}

// Delay 动画 tick 周期
func (c *ChainConfig) Delay() time.Duration {
	return time.Duration(c.Animation.DelayMS) * time.Millisecond
}

// TickDuration 游戏循环单帧时长
func (c *ChainConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Animation.TPS)
}

// Colors 解析调色板
func (c *ChainConfig) Colors() ([]color.Color, error) {
	colors := make([]color.Color, 0, len(c.Palette))
	for i, hex := range c.Palette {
		clr, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors = append(colors, clr)
	}
	return colors, nil
}

// BackgroundColor 解析背景色
func (c *ChainConfig) BackgroundColor() (color.Color, error) {
	clr, err := ParseHexColor(c.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return clr, nil
}

// ParseHexColor 将 "#rrggbb" 或 "#rgb" 解析为不透明颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	clr, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := clr.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ParseChainConfig 从 YAML 数据解析配置，填充默认值并校验
func ParseChainConfig(data []byte) (*ChainConfig, error) {
	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse chain config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain config: %w", err)
	}
	return &cfg, nil
}

// LoadChainConfig 从磁盘加载配置
func LoadChainConfig(path string) (*ChainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain config: %w", err)
	}
	return ParseChainConfig(data)
}

// LoadEmbeddedChainConfig 从嵌入资源加载默认配置
func LoadEmbeddedChainConfig() (*ChainConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded chain config: %w", err)
	}
	return ParseChainConfig(data)
}

// Load 加载配置：path 非空时读取磁盘文件，否则使用嵌入的默认配置
func Load(path string) (*ChainConfig, error) {
	if path != "" {
		return LoadChainConfig(path)
	}
	return LoadEmbeddedChainConfig()
}
