package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/aether-stage/audio"
	"github.com/lixenwraith/aether-stage/config"
	"github.com/lixenwraith/aether-stage/marker"
	"github.com/lixenwraith/aether-stage/parameter"
	"github.com/lixenwraith/aether-stage/render"
	"github.com/lixenwraith/aether-stage/stage"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the stage in the terminal",
	Long: `Keys:
  1-5        focus panel
  arrows     orbit (after boot)
  [ ]        hover previous/next floor marker
  enter      select hovered marker
  q, esc     quit

Mouse drag orbits the camera once boot has completed.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.EnableMouse()

	var out *audio.Output
	if cfg.Audio.Enabled {
		out = audio.NewOutput(cfg.Audio.Volume, logger)
		if err := out.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
			out = nil
		} else {
			defer out.Cleanup()
		}
	}

	st, err := stage.New(cfg.StageConfig(),
		stage.WithLogger(logger),
		stage.WithBootCompleteHook(func(stage.Frame) {
			if out != nil {
				out.ReleaseHum()
			}
		}),
	)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Mount(ctx); err != nil {
		return err
	}
	if out != nil {
		out.StartHum()
	}

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// PollEvent blocks until the screen is finalized
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer fini()
		defer cancel()

		r := render.NewRenderer(screen, cfg.Render.Color == config.Color256)
		in := newInputState()
		ticker := time.NewTicker(cfg.FrameInterval())
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if in.handle(st, screen, ev) {
					return nil
				}
			case <-ticker.C:
				r.Draw(st.Update())
			}
		}
	})

	return g.Wait()
}

// inputState tracks hover and drag between events, frame goroutine only
type inputState struct {
	hovered      int
	dragging     bool
	lastX, lastY int
}

func newInputState() *inputState {
	return &inputState{hovered: -1}
}

// handle applies one terminal event and reports whether to quit
func (in *inputState) handle(st *stage.Stage, screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			in.report(st.Orbit(-parameter.OrbitKeyStep, 0))
		case tcell.KeyRight:
			in.report(st.Orbit(parameter.OrbitKeyStep, 0))
		case tcell.KeyUp:
			in.report(st.Orbit(0, -parameter.OrbitKeyStep))
		case tcell.KeyDown:
			in.report(st.Orbit(0, parameter.OrbitKeyStep))
		case tcell.KeyEnter:
			if in.hovered >= 0 {
				in.report(st.SelectMarker(in.hovered))
			}
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q':
				return true
			case r >= '1' && r <= '9':
				in.report(st.SetActivePanel(int(r - '1')))
			case r == '[':
				in.hover(st, -1)
			case r == ']':
				in.hover(st, 1)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 == 0 {
			in.dragging = false
			return false
		}
		if in.dragging {
			dx, dy := x-in.lastX, y-in.lastY
			if dx != 0 || dy != 0 {
				in.report(st.Orbit(float64(dx)*parameter.OrbitDragPerCell, float64(dy)*parameter.OrbitDragPerCell))
			}
		}
		in.dragging = true
		in.lastX, in.lastY = x, y
	}
	return false
}

// hover cycles through markers and the cleared state
func (in *inputState) hover(st *stage.Stage, dir int) {
	n := marker.Count() + 1
	in.hovered = (in.hovered+1+dir+n)%n - 1
	in.report(st.SetHoveredMarker(in.hovered))
}

func (in *inputState) report(err error) {
	if err != nil {
		logger.Debug("input rejected", zap.Error(err))
	}
}
