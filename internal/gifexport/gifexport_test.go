package gifexport

import (
	"bytes"
	"image/color"
	"image/gif"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/decker502/shooterchain/pkg/config"
)

func smallConfig() *config.ChainConfig {
	cfg := config.DefaultChainConfig()
	cfg.Window.Width, cfg.Window.Height = 64, 64
	cfg.Palette = []string{"#ff0000", "#0000ff"}
	return cfg
}

func TestRecord_OneTrigger(t *testing.T) {
	frames, err := Record(smallConfig(), 1)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	// 每个 tick 一帧，外加完成时的一帧
	if len(frames) < 101 || len(frames) > 102 {
		t.Fatalf("len(frames) = %d, want 101 or 102", len(frames))
	}

	first := frames[0]
	if first.Node != 0 || first.Progress != 0 {
		t.Errorf("first frame = %+v, want node 0 at progress 0", first)
	}
	// 完成后当前节点已移动到下一个节点，静止在 0
	last := frames[len(frames)-1]
	if last.Node != 1 || last.Progress != 0 {
		t.Errorf("last frame = %+v, want node 1 at progress 0", last)
	}
	for i := 1; i < len(frames)-1; i++ {
		if frames[i].Progress < frames[i-1].Progress {
			t.Fatalf("progress went backwards at frame %d: %v -> %v", i, frames[i-1].Progress, frames[i].Progress)
		}
	}
}

func TestRecord_BouncesAtTail(t *testing.T) {
	// 两个节点：0 -> 1，1 在边界反转，1 反向回到 0 后移动到 0
	frames, err := Record(smallConfig(), 3)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	var nodes []int
	for _, f := range frames {
		if len(nodes) == 0 || nodes[len(nodes)-1] != f.Node {
			nodes = append(nodes, f.Node)
		}
	}
	if diff := cmp.Diff([]int{0, 1, 0}, nodes); diff != "" {
		t.Errorf("visited nodes mismatch (-want, +got):\n%s", diff)
	}
}

func TestRecord_InvalidTriggers(t *testing.T) {
	if _, err := Record(smallConfig(), 0); err == nil {
		t.Error("expected error for zero triggers")
	}
}

func TestSample(t *testing.T) {
	frames := make([]Frame, 10)
	for i := range frames {
		frames[i].Progress = float64(i)
	}
	var got []float64
	for _, f := range sample(frames, 4) {
		got = append(got, f.Progress)
	}
	if diff := cmp.Diff([]float64{0, 4, 8, 9}, got); diff != "" {
		t.Errorf("sample mismatch (-want, +got):\n%s", diff)
	}
}

func TestBuildPalette(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	pal := buildPalette([]color.Color{red, red, color.White})
	if len(pal) != 256 {
		t.Errorf("len(palette) = %d, want 256", len(pal))
	}
	if pal[0] != red {
		t.Errorf("palette[0] = %v, want %v", pal[0], red)
	}
	if pal.Index(red) != 0 {
		t.Errorf("red should map to index 0, got %d", pal.Index(red))
	}
}

func TestExport_RoundTrip(t *testing.T) {
	cfg := smallConfig()
	var buf bytes.Buffer
	if err := Export(&buf, cfg, Options{Triggers: 1, Stride: 10}); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll error: %v", err)
	}
	// 101 或 102 帧，每 10 帧取一帧并保留最后一帧
	if n := len(decoded.Image); n < 11 || n > 12 {
		t.Errorf("decoded %d frames, want 11 or 12", n)
	}
	if decoded.Config.Width != 64 || decoded.Config.Height != 64 {
		t.Errorf("size = %dx%d, want 64x64", decoded.Config.Width, decoded.Config.Height)
	}
	if decoded.Delay[0] != 20 {
		t.Errorf("delay = %d, want 20", decoded.Delay[0])
	}

	// 第一帧进度为 0，只有背景
	bg, _ := cfg.BackgroundColor()
	got := color.RGBAModel.Convert(decoded.Image[0].At(32, 32)).(color.RGBA)
	if got != bg {
		t.Errorf("first frame center = %v, want background %v", got, bg)
	}
}
