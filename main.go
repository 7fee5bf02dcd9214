package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/shooterchain/pkg/app"
	"github.com/decker502/shooterchain/pkg/embedded"
	"github.com/decker502/shooterchain/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认使用嵌入的 data/chain.yaml）")
	verbose := flag.Bool("verbose", false, "启用详细日志和调试信息")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if !utils.IsMobile() {
		cfg := gameApp.ChainConfig()
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
