package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/shooterchain/pkg/components"
	"github.com/decker502/shooterchain/pkg/ecs"
)

func testPalette(n int) []color.Color {
	palette := make([]color.Color, n)
	for i := range palette {
		palette[i] = color.RGBA{R: uint8(i * 40), A: 0xff}
	}
	return palette
}

func TestNewShooterChain_Links(t *testing.T) {
	for n := 1; n <= 6; n++ {
		em := ecs.NewEntityManager()
		ids, err := NewShooterChain(em, testPalette(n), 0.01)
		if err != nil {
			t.Fatalf("n=%d: NewShooterChain error: %v", n, err)
		}
		if len(ids) != n {
			t.Fatalf("n=%d: got %d nodes", n, len(ids))
		}

		heads, tails := 0, 0
		for i, id := range ids {
			link, ok := ecs.GetComponent[*components.ChainLinkComponent](em, id)
			if !ok {
				t.Fatalf("n=%d: node %d has no ChainLinkComponent", n, i)
			}
			if link.Index != i {
				t.Errorf("n=%d: node %d Index=%d", n, i, link.Index)
			}
			if link.IsHead() {
				heads++
			}
			if link.IsTail() {
				tails++
			}
			// 前后邻居互相指向
			if link.Next != 0 {
				next, _ := ecs.GetComponent[*components.ChainLinkComponent](em, link.Next)
				if next.Prev != id || next.Index != i+1 {
					t.Errorf("n=%d: node %d next does not link back", n, i)
				}
			}
		}
		if heads != 1 || tails != 1 {
			t.Errorf("n=%d: heads=%d tails=%d, want exactly one of each", n, heads, tails)
		}
	}
}

func TestNewShooterChain_Components(t *testing.T) {
	em := ecs.NewEntityManager()
	palette := testPalette(3)
	ids, err := NewShooterChain(em, palette, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	for i, id := range ids {
		style, ok := ecs.GetComponent[*components.ShooterStyleComponent](em, id)
		if !ok || style.Color != palette[i] {
			t.Errorf("node %d style = %+v, want color %v", i, style, palette[i])
		}
		state, ok := ecs.GetComponent[*components.EasingStateComponent](em, id)
		if !ok {
			t.Fatalf("node %d has no EasingStateComponent", i)
		}
		if state.Step != 0.02 || !state.IsIdle() || state.Progress != 0 || state.Snapshot != 0 {
			t.Errorf("node %d easing state = %+v, want idle at 0 with step 0.02", i, *state)
		}
	}
}

func TestNewShooterChain_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		em      *ecs.EntityManager
		palette []color.Color
		step    float64
	}{
		{name: "nil manager", em: nil, palette: testPalette(2), step: 0.01},
		{name: "empty palette", em: ecs.NewEntityManager(), palette: nil, step: 0.01},
		{name: "zero step", em: ecs.NewEntityManager(), palette: testPalette(2), step: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewShooterChain(tt.em, tt.palette, tt.step); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
