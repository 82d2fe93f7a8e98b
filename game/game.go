// Package game owns the frame loop and wires the field, particles,
// renderer, UI, and telemetry together.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/field"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/sim"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/ui"
)

// Options holds game construction parameters.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string
}

// Game holds the complete visualization state.
type Game struct {
	rng           *rand.Rand
	frame         int32
	width, height float32

	grid      *field.Grid
	gpuField  *renderer.GPUField // nil unless GPU flow is active
	particles *sim.System
	glow      *renderer.Glow
	panel     *ui.Panel

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	limiter   *throttle

	logStats bool
	headless bool
	cleared  bool
}

// New creates a game instance. In graphical mode the raylib window must
// already be initialized.
func New(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		rng:      rand.New(rand.NewSource(opts.Seed)),
		width:    cfg.Derived.ScreenW32,
		height:   cfg.Derived.ScreenH32,
		logStats: opts.LogStats,
		headless: opts.Headless,
		limiter:  newThrottle(cfg.Screen.TargetFPS, nil),
	}

	// Flow field: CPU grid is always built; the GPU field replaces it as
	// the sampler when enabled and its shader loads.
	g.grid = field.New(g.width, g.height, float32(cfg.Field.CellSize),
		int32(cfg.Field.UpdateInterval), newGenerator(cfg, opts.Seed))

	var sampler sim.Sampler = g.grid
	if !opts.Headless && cfg.GPU.Enabled {
		gpu, err := renderer.NewGPUField(cfg.GPU.ShaderPath, cfg.GPU.TextureSize,
			int32(cfg.GPU.UpdateInterval), g.width, g.height)
		if err != nil {
			slog.Error("gpu flow field unavailable, using cpu grid", "error", err)
		} else {
			g.gpuField = gpu
			sampler = gpu
		}
	}

	g.particles = sim.NewSystem(g.width, g.height, sampler, g.rng, sim.Options{
		Count:        cfg.ParticleCount(),
		TrailCap:     cfg.Particles.TrailCap,
		Damping:      cfg.ParticleDamping(),
		FlowStrength: float32(cfg.Particles.FlowStrength),
		MaxSpeed:     float32(cfg.Particles.MaxSpeed),
		Margin:       float32(cfg.Particles.Margin),
		LifespanMin:  int32(cfg.Particles.LifespanMin),
		LifespanMax:  int32(cfg.Particles.LifespanMax),
	})

	if !opts.Headless {
		g.glow = renderer.NewGlow(int32(g.width), int32(g.height), cfg.Render.FadeAlpha,
			renderer.BatchOptions{
				HueSpeed:   cfg.Render.HueSpeed,
				HueSpread:  cfg.Render.HueSpread,
				Saturation: cfg.Render.Saturation,
				Lightness:  cfg.Render.Lightness,
				GlowRadius: cfg.Render.GlowRadius,
				GlowAlpha:  cfg.Render.GlowAlpha,
			})
		g.panel = buildPanel(cfg)
	}

	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Screen.TargetFPS)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	slog.Info("game initialized",
		"particles", len(g.particles.Particles),
		"field_cols", g.grid.Cols(),
		"field_rows", g.grid.Rows(),
		"field_mode", cfg.Field.Mode,
		"gpu_flow", g.gpuField != nil,
		"low_power", cfg.Derived.LowPower,
	)

	return g, nil
}

// newGenerator picks the field generator from config.
func newGenerator(cfg *config.Config, seed int64) field.Generator {
	if cfg.Field.Mode == "noise" {
		return field.NewNoiseGenerator(seed, cfg.Field.NoiseScale, cfg.Field.NoiseTimeScale)
	}
	return field.TrigGenerator{
		XFreq:  cfg.Field.XFreq,
		YFreq:  cfg.Field.YFreq,
		XDrift: cfg.Field.XDrift,
		YDrift: cfg.Field.YDrift,
	}
}

// buildPanel assembles the side panel chrome.
func buildPanel(cfg *config.Config) *ui.Panel {
	items, err := ui.LoadGallery(cfg.Gallery.Dir, cfg.Gallery.Extensions)
	if err != nil {
		slog.Warn("gallery unavailable", "dir", cfg.Gallery.Dir, "error", err)
	}

	accordion := ui.NewAccordion([]ui.Section{
		{Title: "About", Lines: []string{
			"Drift - flow field visualization",
			"Particles follow a time-varying",
			"vector field with glow trails.",
		}},
		{Title: "Controls", Lines: []string{
			"TAB        toggle this panel",
			"LEFT/RIGHT navigate lightbox",
			"ESC        close lightbox",
		}},
		{Title: ui.GallerySectionTitle},
	})

	return ui.NewPanel(accordion, ui.NewLightbox(items), 10, 10, 220)
}

// Frame returns the current frame counter.
func (g *Game) Frame() int32 { return g.frame }

// Update advances one frame in graphical mode, subject to throttling.
// Resize events are handled before the throttle gate so the field always
// matches the surface. Returns whether the frame executed; callers must
// skip rendering when it did not, otherwise the cumulative fade would
// track the host refresh rate instead of executed frames.
func (g *Game) Update() bool {
	if rl.IsWindowResized() {
		g.handleResize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}

	if !g.tryStep() {
		return false
	}
	g.panel.Update()
	return true
}

// tryStep runs one simulation step if the frame limiter allows it.
func (g *Game) tryStep() bool {
	if !g.limiter.ShouldRun() {
		return false
	}
	g.step()
	return true
}

// UpdateHeadless advances one frame without graphics or throttling.
func (g *Game) UpdateHeadless() {
	g.step()
}

// step runs the simulation portion of a frame and records telemetry.
func (g *Game) step() {
	start := time.Now()

	g.frame++

	recomputed := false
	if g.gpuField != nil {
		g.gpuField.Update(g.frame)
	} else {
		recomputed = g.grid.Update(g.frame)
	}

	g.particles.Update()

	// Sample a quarter of the particles for speed stats
	for i := 0; i < len(g.particles.Particles); i += 4 {
		p := &g.particles.Particles[i]
		g.collector.RecordSpeed(p.VelX, p.VelY)
	}
	g.collector.RecordFrame(time.Since(start), g.particles.TakeResets(), recomputed, len(g.particles.Particles))

	if stats, ok := g.collector.Flush(g.frame); ok {
		if g.logStats {
			stats.LogStats()
		}
		if err := g.output.WriteStats(stats); err != nil {
			slog.Warn("failed to write frame stats", "error", err)
		}
	}
}

// handleResize synchronously rebuilds everything sized to the surface.
func (g *Game) handleResize(width, height float32) {
	g.width = width
	g.height = height
	g.grid.Resize(width, height)
	if g.gpuField != nil {
		g.gpuField.Resize(width, height)
	}
	g.particles.Resize(width, height)
	if g.glow != nil {
		g.glow.Resize(int32(width), int32(height))
	}
	g.cleared = false

	slog.Info("surface resized",
		"width", int(width),
		"height", int(height),
		"field_cols", g.grid.Cols(),
		"field_rows", g.grid.Rows(),
	)
}

// Draw renders the frame. The surface is only fully cleared once; after
// that each frame applies a low-alpha fade so trails persist.
func (g *Game) Draw() {
	rl.BeginDrawing()

	if !g.cleared {
		rl.ClearBackground(rl.Color{R: 5, G: 8, B: 18, A: 255})
		g.cleared = true
	}

	g.glow.BeginFrame()
	g.glow.Draw(g.particles.Particles, g.frame)
	g.panel.Draw(int32(g.width), int32(g.height))

	rl.EndDrawing()
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.gpuField != nil {
		g.gpuField.Unload()
	}
	if g.panel != nil {
		g.panel.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
