// cmd/render_chain/main.go
// 离屏渲染射手链动画并导出为 GIF
//
// 用法：
//
//	go run ./cmd/render_chain -out chain.gif
//	go run ./cmd/render_chain -config data/chain.yaml -triggers 10 -stride 2 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/shooterchain/internal/gifexport"
	"github.com/decker502/shooterchain/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认使用内置默认配置）")
	outPath := flag.String("out", "chain.gif", "输出 GIF 路径")
	triggers := flag.Int("triggers", 0, "触发次数（默认走完一个往返）")
	width := flag.Int("width", 0, "覆盖画面宽度")
	height := flag.Int("height", 0, "覆盖画面高度")
	stride := flag.Int("stride", 1, "每 N 帧保留一帧")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultChainConfig()
	if *configPath != "" {
		loaded, err := config.LoadChainConfig(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	// 一个往返：每个节点向前一次、链尾反转一次、每个节点向后一次、链头反转一次
	n := *triggers
	if n <= 0 {
		n = 2 * len(cfg.Palette)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fail(err)
	}
	if err := gifexport.Export(f, cfg, gifexport.Options{Triggers: n, Stride: *stride}); err != nil {
		f.Close()
		fail(err)
	}
	if err := f.Close(); err != nil {
		fail(err)
	}
	fmt.Printf("✓ 已导出 %s (%d 次触发)\n", *outPath, n)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "render_chain: %v\n", err)
	os.Exit(1)
}
