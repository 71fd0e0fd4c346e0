package strobe

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by RunGame.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

type game struct {
	stage   *Stage
	cfg     RunConfig
	elapsed float64
	fps     string
}

func (g *game) Update() error {
	if err := g.stage.Update(); err != nil {
		return err
	}
	if g.cfg.ShowFPS {
		g.elapsed += 1.0 / float64(ebiten.TPS())
		if g.elapsed >= 0.5 || g.fps == "" {
			g.elapsed = 0
			g.fps = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fps)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// RunGame opens a window and drives stage until the window closes or the
// stage's update callback returns an error.
func RunGame(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{stage: stage, cfg: cfg}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
