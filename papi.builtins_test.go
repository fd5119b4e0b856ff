package papi_test

import (
	"context"
	"testing"
	"time"

	"github.com/itsatony/go-papi"
	"github.com/stretchr/testify/assert"
)

func TestBuiltins_PlayerAttributes(t *testing.T) {
	engine := papi.MustNew()
	rctx := testContext()

	tests := []struct {
		identifier string
		want       string
	}{
		{papi.IdentX, "10"},
		{papi.IdentY, "64"},
		{papi.IdentZ, "-5"},
		{papi.IdentPlayerName, "Steve"},
		{papi.IdentDimension, "overworld"},
		{papi.IdentDimensionID, "0"},
		{papi.IdentPing, "42"},
		{papi.IdentAddress, "203.0.113.7:19132"},
		{papi.IdentRuntimeID, "17"},
		{papi.IdentExpLevel, "30"},
		{papi.IdentTotalExp, "1395"},
		{papi.IdentExpProgress, "0.5"},
		{papi.IdentGameMode, "Survival"},
		{papi.IdentXUID, "2535412345678901"},
		{papi.IdentUUID, "8f438b7f-4f26-4b62-a554-ec7d24f40a4e"},
		{papi.IdentDeviceOS, "Android"},
		{papi.IdentLocale, "en_US"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			result := engine.SetPlaceholders(context.Background(), rctx, "{"+tt.identifier+"}")
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestBuiltins_CoordinatesTruncateTowardZero(t *testing.T) {
	engine := papi.MustNew()
	rctx := papi.NewContext().WithPlayer(&papi.Player{
		Position: papi.Position{X: 10.9, Y: 64.5, Z: -5.7},
	})

	result := engine.SetPlaceholders(context.Background(), rctx, "{x} {y} {z}")
	assert.Equal(t, "10 64 -5", result)
}

func TestBuiltins_ServerAttributes(t *testing.T) {
	engine := papi.MustNew()
	rctx := testContext()

	ctx := context.Background()
	assert.Equal(t, "1.21.0", engine.SetPlaceholders(ctx, rctx, "{mc_version}"))
	assert.Equal(t, "7", engine.SetPlaceholders(ctx, rctx, "{online}"))
	assert.Equal(t, "20", engine.SetPlaceholders(ctx, rctx, "{max_online}"))
}

func TestBuiltins_DateTimeFormats(t *testing.T) {
	engine := papi.MustNew()
	at := time.Date(2026, time.August, 23, 14, 5, 9, 0, time.UTC)
	rctx := papi.NewContext().WithClock(func() time.Time { return at })

	tests := []struct {
		identifier string
		want       string
	}{
		{papi.IdentDate, "08/23/26"},
		{papi.IdentTime, "14:05:09"},
		{papi.IdentDateTime, "Sun Aug 23 14:05:09 2026"},
		{papi.IdentYear, "2026"},
		{papi.IdentMonth, "08"},
		{papi.IdentDay, "23"},
		{papi.IdentHour, "14"},
		{papi.IdentMinute, "05"},
		{papi.IdentSecond, "09"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			result := engine.SetPlaceholders(context.Background(), rctx, "{"+tt.identifier+"}")
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestBuiltins_DateTimeWorkWithoutPlayer(t *testing.T) {
	engine := papi.MustNew()
	at := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	rctx := papi.NewContext().WithClock(func() time.Time { return at })

	assert.Equal(t, "2026", engine.SetPlaceholders(context.Background(), rctx, "{year}"))
}

func TestBuiltins_PlayerScopedNeedPlayer(t *testing.T) {
	engine := papi.MustNew()
	rctx := papi.NewContext().WithServer(&papi.Server{MinecraftVersion: "1.21.0"})

	ctx := context.Background()
	// Player-scoped placeholders fall back; server-scoped ones resolve.
	assert.Equal(t, "{x}", engine.SetPlaceholders(ctx, rctx, "{x}"))
	assert.Equal(t, "1.21.0", engine.SetPlaceholders(ctx, rctx, "{mc_version}"))
}

func TestBuiltins_ServerScopedNeedServer(t *testing.T) {
	engine := papi.MustNew()
	rctx := papi.NewContext().WithPlayer(&papi.Player{Name: "Alex"})

	ctx := context.Background()
	assert.Equal(t, "Alex", engine.SetPlaceholders(ctx, rctx, "{player_name}"))
	assert.Equal(t, "{online}", engine.SetPlaceholders(ctx, rctx, "{online}"))
}

func TestBuiltins_DimensionNames(t *testing.T) {
	engine := papi.MustNew()
	ctx := context.Background()

	tests := []struct {
		dimension papi.Dimension
		name      string
		id        string
	}{
		{papi.DimensionOverworld, "overworld", "0"},
		{papi.DimensionNether, "nether", "1"},
		{papi.DimensionTheEnd, "the_end", "2"},
	}

	for _, tt := range tests {
		rctx := papi.NewContext().WithPlayer(&papi.Player{Dimension: tt.dimension})
		assert.Equal(t, tt.name, engine.SetPlaceholders(ctx, rctx, "{dimension}"))
		assert.Equal(t, tt.id, engine.SetPlaceholders(ctx, rctx, "{dimension_id}"))
	}
}

func TestBuiltins_GameModeNames(t *testing.T) {
	engine := papi.MustNew()
	ctx := context.Background()

	tests := []struct {
		mode papi.GameMode
		want string
	}{
		{papi.GameModeSurvival, "Survival"},
		{papi.GameModeCreative, "Creative"},
		{papi.GameModeAdventure, "Adventure"},
		{papi.GameModeSpectator, "Spectator"},
	}

	for _, tt := range tests {
		rctx := papi.NewContext().WithPlayer(&papi.Player{GameMode: tt.mode})
		assert.Equal(t, tt.want, engine.SetPlaceholders(ctx, rctx, "{game_mode}"))
	}
}

func TestBuiltins_IgnoreParams(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), "{player_name|ignored}")
	assert.Equal(t, "Steve", result)
}
