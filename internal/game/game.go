package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roguegen/internal/procgen"
	"github.com/samdwyer/roguegen/internal/telemetry"
	"github.com/samdwyer/roguegen/internal/ui"
	"github.com/samdwyer/roguegen/internal/world"
)

// Level is one generated map with its two spawn points.
type Level struct {
	Type      MapType
	Grid      *world.Grid
	Primary   world.Point
	Secondary world.Point
	Rooms     int // Accepted rooms; zero for caves
	Regions   int // Separate walkable areas
}

// Game owns the random source shared by every level it generates.
type Game struct {
	cfg    Config
	seed   int64
	rng    *rand.Rand
	tracer trace.Tracer
	logger *slog.Logger
	level  *Level
}

// New creates a new game instance.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Game{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		tracer: telemetry.Tracer("game"),
		logger: logger,
	}
}

// Seed returns the seed the random source was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Level returns the most recently generated level, or nil.
func (g *Game) Level() *Level {
	return g.level
}

// Generate builds a new level. Successive calls continue the same random
// sequence, so each call yields a different map while a fresh Game with the
// same seed repeats the whole series.
func (g *Game) Generate(ctx context.Context) (*Level, error) {
	ctx, span := g.tracer.Start(ctx, "game.generate")
	defer span.End()

	var (
		level *Level
		err   error
	)
	switch g.cfg.MapType {
	case MapDungeon:
		level, err = g.generateDungeon(ctx)
	case MapCave:
		level, err = g.generateCave(ctx)
	default:
		err = fmt.Errorf("unknown map type %d", g.cfg.MapType)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	level.Regions = len(world.Regions(level.Grid))
	g.level = level

	span.SetAttributes(
		attribute.String("level.type", level.Type.String()),
		attribute.Int64("level.seed", g.seed),
		attribute.Int("level.rooms", level.Rooms),
		attribute.Int("level.regions", level.Regions),
		attribute.Int("primary.x", level.Primary.X),
		attribute.Int("primary.y", level.Primary.Y),
		attribute.Int("secondary.x", level.Secondary.X),
		attribute.Int("secondary.y", level.Secondary.Y),
	)
	g.logger.Info("Level generated",
		"type", level.Type.String(),
		"seed", g.seed,
		"width", level.Grid.Width(),
		"height", level.Grid.Height(),
		"rooms", level.Rooms,
		"regions", level.Regions,
		"floor", level.Grid.CountTiles(world.Floor),
		"primary", level.Primary.String(),
		"secondary", level.Secondary.String(),
	)

	return level, nil
}

func (g *Game) generateDungeon(ctx context.Context) (*Level, error) {
	d, err := procgen.GenerateDungeon(ctx, g.cfg.Dungeon, g.rng)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	return &Level{
		Type:      MapDungeon,
		Grid:      d.Grid,
		Primary:   d.Primary,
		Secondary: d.Secondary,
		Rooms:     len(d.Rooms),
	}, nil
}

// generateCave places the actors at the preset offsets from the map center.
// Those cells are not guaranteed to be floor.
func (g *Game) generateCave(ctx context.Context) (*Level, error) {
	grid, err := procgen.GenerateCave(ctx, g.cfg.Cave, g.rng)
	if err != nil {
		return nil, fmt.Errorf("generate cave: %w", err)
	}

	var primary, secondary world.Point
	if g.cfg.Presets != nil {
		primary, secondary = g.cfg.Presets.Cave.CaveSpawns(grid.Width(), grid.Height())
	} else {
		primary = world.Point{X: grid.Width() / 2, Y: grid.Height() / 2}
		secondary = primary
	}

	for _, p := range []world.Point{primary, secondary} {
		if !grid.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("cave spawn %v on %dx%d grid: %w",
				p, grid.Width(), grid.Height(), world.ErrOutOfBounds)
		}
		if !grid.IsWalkable(p.X, p.Y) {
			g.logger.Warn("Cave spawn is not on floor", "spawn", p.String())
		}
	}

	return &Level{
		Type:      MapCave,
		Grid:      grid,
		Primary:   primary,
		Secondary: secondary,
	}, nil
}

// Actors returns the two spawned actors for drawing.
func (g *Game) Actors(level *Level) []ui.Actor {
	primary := ui.Actor{Pos: level.Primary, Symbol: '@', Color: tcell.ColorYellow}
	secondary := ui.Actor{Pos: level.Secondary, Symbol: '@', Color: tcell.ColorWhite}
	if p := g.cfg.Presets; p != nil {
		primary.Symbol, primary.Color = p.Actors.Primary.GlyphRune(), p.Actors.Primary.TCellColor()
		secondary.Symbol, secondary.Color = p.Actors.Secondary.GlyphRune(), p.Actors.Secondary.TCellColor()
	}
	// Drawn in this order so the primary actor stays visible when both share a cell.
	return []ui.Actor{secondary, primary}
}

// Run shows the current level in the terminal until the user quits.
// 'r' generates the next level; 'q' or Escape exits.
func (g *Game) Run(ctx context.Context) error {
	if g.level == nil {
		if _, err := g.Generate(ctx); err != nil {
			return err
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	for {
		status := fmt.Sprintf("%s seed=%d rooms=%d regions=%d  [r]egenerate [q]uit",
			g.level.Type, g.seed, g.level.Rooms, g.level.Regions)
		renderer.Render(g.level.Grid, g.Actors(g.level), status)

		quit, err := g.handleInput(ctx, screen)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context, screen *ui.Screen) (quit bool, err error) {
	switch ev := screen.PollEvent().(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil
			case 'r', 'R':
				if _, err := g.Generate(ctx); err != nil {
					return false, err
				}
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	case nil:
		return true, nil
	}
	return false, nil
}
