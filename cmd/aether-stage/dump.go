package main

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/aether-stage/engine"
	"github.com/lixenwraith/aether-stage/stage"
)

var (
	dumpDuration time.Duration
	dumpEvery    int
	dumpSelect   []string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Run the stage headless at a fixed step and print sampled frames as YAML",
	Long: `Runs the stage on a frame-driven scheduler so output is reproducible for a
fixed seed. Panel selections can be scheduled with --select <time>=<index>.

Example:
  aether-stage dump --duration 8s --every 30 --select 6s=3`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().DurationVar(&dumpDuration, "duration", 8*time.Second, "simulated run length")
	dumpCmd.Flags().IntVar(&dumpEvery, "every", 30, "emit every Nth frame")
	dumpCmd.Flags().StringSliceVar(&dumpSelect, "select", nil, "panel selection at a time, e.g. 6s=3")
}

// selection is a scheduled SetActivePanel call
type selection struct {
	at    time.Duration
	index int
}

func parseSelections(specs []string) ([]selection, error) {
	out := make([]selection, 0, len(specs))
	for _, s := range specs {
		at, idx, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("selection %q: want <time>=<index>", s)
		}
		d, err := time.ParseDuration(at)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", s, err)
		}
		index, err := strconv.Atoi(idx)
		if err != nil {
			return nil, fmt.Errorf("selection %q: %w", s, err)
		}
		out = append(out, selection{at: d, index: index})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at < out[j].at })
	return out, nil
}

// frameRecord is the YAML shape of one sampled frame
type frameRecord struct {
	Frame    uint64        `yaml:"frame"`
	Elapsed  float64       `yaml:"elapsed"`
	Phase    string        `yaml:"phase"`
	Progress float64       `yaml:"progress"`
	Active   int           `yaml:"active_panel"`
	Camera   cameraRecord  `yaml:"camera"`
	Grid     gridRecord    `yaml:"grid"`
	Panels   []panelRecord `yaml:"panels"`
	Sparks   bool          `yaml:"sparks_visible"`
}

type cameraRecord struct {
	Mode     string     `yaml:"mode"`
	Position [3]float64 `yaml:"position,flow"`
}

type gridRecord struct {
	Opacity float64 `yaml:"opacity"`
	Heat    float64 `yaml:"heat"`
}

type panelRecord struct {
	Index int        `yaml:"index"`
	Pos   [3]float64 `yaml:"pos,flow"`
	Scale float64    `yaml:"scale"`
	Edge  float64    `yaml:"edge"`
	Inner float64    `yaml:"inner"`
}

func round(v float64) float64 {
	const q = 1e4
	if v < 0 {
		return -float64(int64(-v*q+0.5)) / q
	}
	return float64(int64(v*q+0.5)) / q
}

func record(f *stage.Frame) frameRecord {
	p := f.Camera.Pose.Position
	rec := frameRecord{
		Frame:    f.Number,
		Elapsed:  round(f.Clock.Elapsed),
		Phase:    f.Phase.String(),
		Progress: round(f.BootProgress),
		Active:   f.ActivePanel,
		Camera: cameraRecord{
			Mode:     f.Camera.Mode.String(),
			Position: [3]float64{round(p.X), round(p.Y), round(p.Z)},
		},
		Grid:   gridRecord{Opacity: round(f.Grid.Opacity), Heat: round(f.Grid.Heat)},
		Panels: make([]panelRecord, len(f.Panels)),
		Sparks: f.Sparks.Visible,
	}
	for i, ps := range f.Panels {
		c := ps.Current
		rec.Panels[i] = panelRecord{
			Index: ps.Index,
			Pos:   [3]float64{round(c.X), round(c.Y), round(c.Z)},
			Scale: round(c.ScaleX),
			Edge:  round(ps.EdgeOpacity),
			Inner: round(ps.InnerGlowOpacity),
		}
	}
	return rec
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpEvery < 1 {
		return fmt.Errorf("--every must be at least 1")
	}
	selections, err := parseSelections(dumpSelect)
	if err != nil {
		return err
	}

	sc := cfg.StageConfig()
	if sc.Seed == 0 {
		sc.Seed = 1
	}
	st, err := stage.New(sc,
		stage.WithLogger(logger),
		stage.WithScheduler(engine.NewFrameScheduler()),
	)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := st.Mount(ctx); err != nil {
		return err
	}

	// Step by 1/fps, FrameInterval is truncated to whole nanoseconds
	fps := float64(cfg.Render.FPS)
	dt := 1 / fps
	frames := int(math.Round(dumpDuration.Seconds() * fps))

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()

	next := 0
	for i := 1; i <= frames; i++ {
		elapsed := time.Duration(math.Round(float64(i) * dt * float64(time.Second)))
		for next < len(selections) && selections[next].at <= elapsed {
			if err := st.SetActivePanel(selections[next].index); err != nil {
				logger.Warn("scheduled selection rejected", zap.Int("index", selections[next].index), zap.Error(err))
			}
			next++
		}

		f := st.Step(dt)
		if i%dumpEvery == 0 || i == frames {
			if err := enc.Encode(record(f)); err != nil {
				return fmt.Errorf("encode frame %d: %w", f.Number, err)
			}
		}
	}
	return nil
}
