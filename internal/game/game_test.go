package game

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/roguegen/internal/config"
	"github.com/samdwyer/roguegen/internal/procgen"
	"github.com/samdwyer/roguegen/internal/telemetry"
	"github.com/samdwyer/roguegen/internal/world"
)

func testConfig(t *testing.T, mt MapType, seed int64) Config {
	t.Helper()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.MapType = mt
	cfg.Seed = seed
	cfg.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return cfg
}

func TestGenerateDungeonLevel(t *testing.T) {
	g := New(testConfig(t, MapDungeon, 12345))

	level, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MapDungeon, level.Type)
	assert.Positive(t, level.Rooms)
	assert.True(t, level.Grid.IsWalkable(level.Primary.X, level.Primary.Y))
	assert.True(t, level.Grid.IsWalkable(level.Secondary.X, level.Secondary.Y))
	assert.Equal(t, 1, level.Regions, "chained rooms form a single region")
	assert.Same(t, level, g.Level())
}

func TestGenerateCaveLevelUsesPresetSpawns(t *testing.T) {
	cfg := testConfig(t, MapCave, 99)
	g := New(cfg)

	level, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MapCave, level.Type)
	assert.Zero(t, level.Rooms)
	assert.Equal(t, world.Point{X: 60, Y: 35}, level.Primary)
	assert.Equal(t, world.Point{X: 48, Y: 30}, level.Secondary)
}

func TestGenerateCaveSpawnOutsideGrid(t *testing.T) {
	cfg := testConfig(t, MapCave, 5)
	cfg.Cave.Width, cfg.Cave.Height = 20, 10 // secondary offset (-12,-5) lands off the map

	_, err := New(cfg).Generate(context.Background())
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestGenerateReproducibleSeries(t *testing.T) {
	for _, mt := range []MapType{MapDungeon, MapCave} {
		g1 := New(testConfig(t, mt, 777))
		g2 := New(testConfig(t, mt, 777))

		for i := 0; i < 3; i++ {
			l1, err := g1.Generate(context.Background())
			require.NoError(t, err)
			l2, err := g2.Generate(context.Background())
			require.NoError(t, err)

			assert.True(t, l1.Grid.Equal(l2.Grid), "%s level %d differs", mt, i)
			assert.Equal(t, l1.Primary, l2.Primary)
			assert.Equal(t, l1.Secondary, l2.Secondary)
		}
	}
}

func TestGenerateAdvancesRandomSource(t *testing.T) {
	g := New(testConfig(t, MapDungeon, 31))

	first, err := g.Generate(context.Background())
	require.NoError(t, err)
	second, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.False(t, first.Grid.Equal(second.Grid))
}

func TestGenerateInvalidParams(t *testing.T) {
	cfg := testConfig(t, MapDungeon, 1)
	cfg.Dungeon.RoomMaxSize = cfg.Dungeon.RoomMinSize - 1

	_, err := New(cfg).Generate(context.Background())
	assert.ErrorIs(t, err, world.ErrInvalidDimension)

	cfg = testConfig(t, MapCave, 1)
	cfg.Cave.Generations = -1
	_, err = New(cfg).Generate(context.Background())
	assert.ErrorIs(t, err, procgen.ErrInvalidParameter)
}

func TestGenerateSpansShareTrace(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := telemetry.Install(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, err := New(testConfig(t, MapDungeon, 5)).Generate(context.Background())
	require.NoError(t, err)

	spans := make(map[string]sdktrace.ReadOnlySpan)
	for _, span := range recorder.Ended() {
		spans[span.Name()] = span
	}
	parent, ok := spans["game.generate"]
	require.True(t, ok, "game.generate span not recorded")
	child, ok := spans["procgen.dungeon"]
	require.True(t, ok, "procgen.dungeon span not recorded")

	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent().SpanID())
}

func TestRandomSeedWhenZero(t *testing.T) {
	g := New(testConfig(t, MapDungeon, 0))
	assert.NotZero(t, g.Seed())
}

func TestActorsFromPresets(t *testing.T) {
	g := New(testConfig(t, MapDungeon, 3))
	level, err := g.Generate(context.Background())
	require.NoError(t, err)

	actors := g.Actors(level)
	require.Len(t, actors, 2)
	assert.Equal(t, level.Primary, actors[1].Pos)
	assert.Equal(t, '@', actors[1].Symbol)
}

func TestMapType(t *testing.T) {
	for _, mt := range []MapType{MapDungeon, MapCave} {
		parsed, err := ParseMapType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)
	}
	_, err := ParseMapType("maze")
	assert.Error(t, err)
	assert.Equal(t, "unknown", MapType(9).String())
}

func TestApplyEnv(t *testing.T) {
	cfg := testConfig(t, MapDungeon, 1)

	require.NoError(t, cfg.ApplyEnv(config.Env{Seed: 55, MapType: "cave"}))
	assert.Equal(t, int64(55), cfg.Seed)
	assert.Equal(t, MapCave, cfg.MapType)

	require.NoError(t, cfg.ApplyEnv(config.Env{}))
	assert.Equal(t, int64(55), cfg.Seed)

	assert.Error(t, cfg.ApplyEnv(config.Env{MapType: "maze"}))
}
