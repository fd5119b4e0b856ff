package papi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itsatony/go-papi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E tests exercising the full system from the public API through the
// tokenizer, registry and built-in providers to the final output.

func testContext() *papi.Context {
	return papi.NewContext().
		WithPlayer(&papi.Player{
			Name:        "Steve",
			Position:    papi.Position{X: 10, Y: 64, Z: -5},
			Dimension:   papi.DimensionOverworld,
			Ping:        42,
			Address:     "203.0.113.7:19132",
			RuntimeID:   17,
			ExpLevel:    30,
			TotalExp:    1395,
			ExpProgress: 0.5,
			GameMode:    papi.GameModeSurvival,
			XUID:        "2535412345678901",
			UUID:        "8f438b7f-4f26-4b62-a554-ec7d24f40a4e",
			DeviceOS:    "Android",
			Locale:      "en_US",
		}).
		WithServer(&papi.Server{
			MinecraftVersion: "1.21.0",
			OnlinePlayers:    7,
			MaxPlayers:       20,
		})
}

func TestE2E_PlainTextIsIdentity(t *testing.T) {
	engine := papi.MustNew()
	rctx := testContext()

	inputs := []string{
		"",
		"no placeholders here",
		"punctuation: <>()[]|,;!",
		"  leading and trailing  ",
	}
	for _, input := range inputs {
		assert.Equal(t, input, engine.SetPlaceholders(context.Background(), rctx, input))
	}
}

func TestE2E_PlayerNameAndGameMode(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(),
		"{player_name} joined! Mode: {game_mode}")
	assert.Equal(t, "Steve joined! Mode: Survival", result)
}

func TestE2E_CoordinatesWithLiteralPipes(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), "{x}|{y}|{z}")
	assert.Equal(t, "10|64|-5", result)
}

func TestE2E_UnknownIdentifierKeepsRawToken(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), "{nope}")
	assert.Equal(t, "{nope}", result)
}

func TestE2E_MalformedTokenStaysLiteral(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), "{unterminated")
	assert.Equal(t, "{unterminated", result)
}

func TestE2E_EscapingRoundTrip(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), `\{literal\}`)
	assert.Equal(t, "{literal}", result)
}

func TestE2E_ResolverOutputIsNotRescanned(t *testing.T) {
	engine := papi.MustNew()
	engine.RegisterPlaceholderFunc("echo", func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
		return "{x}", nil
	})

	result := engine.SetPlaceholders(context.Background(), testContext(), "{echo}")
	assert.Equal(t, "{x}", result)
}

func TestE2E_RegisteredResolverMatchesDirectCall(t *testing.T) {
	engine := papi.MustNew()
	resolver := papi.ResolverFunc(func(_ context.Context, rctx *papi.Context, _ papi.Params) (string, error) {
		return rctx.Player.Name + "!", nil
	})
	engine.RegisterPlaceholder("shout", resolver)

	rctx := testContext()
	direct, err := resolver.Resolve(context.Background(), rctx, papi.Params{})
	require.NoError(t, err)

	assert.Equal(t, direct, engine.SetPlaceholders(context.Background(), rctx, "{shout}"))
}

func TestE2E_RegistryOverride(t *testing.T) {
	engine := papi.MustNew()

	engine.RegisterPlaceholderFunc("id", func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
		return "first", nil
	})
	replaced := engine.RegisterPlaceholderFunc("id", func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
		return "second", nil
	})
	assert.True(t, replaced)

	result := engine.SetPlaceholders(context.Background(), testContext(), "{id}")
	assert.Equal(t, "second", result)
}

func TestE2E_ParamsPassedOpaquely(t *testing.T) {
	engine := papi.MustNew()
	engine.RegisterPlaceholderFunc("p", func(_ context.Context, _ *papi.Context, params papi.Params) (string, error) {
		if !params.Present() {
			return "absent", nil
		}
		return "got:" + params.Raw(), nil
	})

	ctx := context.Background()
	rctx := testContext()
	assert.Equal(t, "absent", engine.SetPlaceholders(ctx, rctx, "{p}"))
	assert.Equal(t, "got:", engine.SetPlaceholders(ctx, rctx, "{p|}"))
	assert.Equal(t, "got:a|b", engine.SetPlaceholders(ctx, rctx, "{p|a|b}"))
}

func TestE2E_DateTimeWithFixedClock(t *testing.T) {
	engine := papi.MustNew()
	at := time.Date(2026, time.August, 23, 14, 5, 9, 0, time.UTC)
	rctx := testContext().WithClock(func() time.Time { return at })

	result := engine.SetPlaceholders(context.Background(), rctx,
		"{year}-{month}-{day} {hour}:{minute}:{second}")
	assert.Equal(t, "2026-08-23 14:05:09", result)
}

func TestE2E_MissingPlayerFallsBack(t *testing.T) {
	engine := papi.MustNew()
	rctx := papi.NewContext() // no player, no server

	result := engine.SetPlaceholders(context.Background(), rctx, "{player_name} & {online}")
	assert.Equal(t, "{player_name} & {online}", result)
}

func TestE2E_ResolverErrorsAreContained(t *testing.T) {
	engine := papi.MustNew()
	engine.RegisterPlaceholderFunc("boom", func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
		return "", errors.New("backend down")
	})
	engine.RegisterPlaceholderFunc("panics", func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
		panic("resolver bug")
	})

	result := engine.SetPlaceholders(context.Background(), testContext(),
		"a {boom} b {panics} c {player_name}")
	assert.Equal(t, "a {boom} b {panics} c Steve", result)
}

func TestE2E_ServiceDiscovery(t *testing.T) {
	engine := papi.MustNew()
	require.NoError(t, papi.PublishService(papi.ServiceName, engine))
	defer papi.WithdrawService(papi.ServiceName)

	handle, ok := papi.Service(papi.ServiceName)
	require.True(t, ok)

	result := handle.SetPlaceholders(context.Background(), testContext(), "{player_name}")
	assert.Equal(t, "Steve", result)
}
