package papi_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/itsatony/go-papi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_FallbackEmpty(t *testing.T) {
	engine := papi.MustNew(papi.WithFallbackPolicy(papi.FallbackEmpty))

	result := engine.SetPlaceholders(context.Background(), papi.NewContext(), "a{nope}b")
	assert.Equal(t, "ab", result)
}

func TestEngine_FallbackRawIsDefault(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), papi.NewContext(), "a{nope|with params}b")
	assert.Equal(t, "a{nope|with params}b", result)
}

func TestEngine_WithoutBuiltins(t *testing.T) {
	engine := papi.MustNew(papi.WithoutBuiltins())

	assert.Empty(t, engine.RegisteredIdentifiers())
	result := engine.SetPlaceholders(context.Background(), testContext(), "{player_name}")
	assert.Equal(t, "{player_name}", result)
}

func TestEngine_BuiltinsRegisteredByDefault(t *testing.T) {
	engine := papi.MustNew()

	identifiers := engine.RegisteredIdentifiers()
	for _, want := range []string{
		papi.IdentX, papi.IdentY, papi.IdentZ,
		papi.IdentPlayerName, papi.IdentDimension, papi.IdentDimensionID,
		papi.IdentPing, papi.IdentMCVersion, papi.IdentOnline, papi.IdentMaxOnline,
		papi.IdentDate, papi.IdentTime, papi.IdentDateTime,
		papi.IdentYear, papi.IdentMonth, papi.IdentDay,
		papi.IdentHour, papi.IdentMinute, papi.IdentSecond,
		papi.IdentAddress, papi.IdentRuntimeID,
		papi.IdentExpLevel, papi.IdentTotalExp, papi.IdentExpProgress,
		papi.IdentGameMode, papi.IdentXUID, papi.IdentUUID,
		papi.IdentDeviceOS, papi.IdentLocale,
	} {
		assert.Contains(t, identifiers, want)
	}

	// Kill placeholders only appear once a tracker is attached.
	assert.False(t, engine.IsRegistered(papi.IdentKills))
	assert.False(t, engine.IsRegistered(papi.IdentKillstreak))
}

func TestEngine_CustomEscapeChar(t *testing.T) {
	engine := papi.MustNew(papi.WithEscapeChar('~'))

	rctx := testContext()
	assert.Equal(t, "{player_name}", engine.SetPlaceholders(context.Background(), rctx, `~{player_name~}`))
	// Backslash is plain text under a custom escape char.
	assert.Equal(t, `\Steve`, engine.SetPlaceholders(context.Background(), rctx, `\{player_name}`))
}

func TestEngine_UnregisterPlaceholder(t *testing.T) {
	engine := papi.MustNew()
	require.True(t, engine.IsRegistered(papi.IdentPing))

	engine.UnregisterPlaceholder(papi.IdentPing)
	assert.False(t, engine.IsRegistered(papi.IdentPing))

	result := engine.SetPlaceholders(context.Background(), testContext(), "{ping}")
	assert.Equal(t, "{ping}", result)

	// Unregistering again is a no-op.
	engine.UnregisterPlaceholder(papi.IdentPing)
}

func TestEngine_IdentifiersAreCaseSensitive(t *testing.T) {
	engine := papi.MustNew()

	result := engine.SetPlaceholders(context.Background(), testContext(), "{Player_Name}")
	assert.Equal(t, "{Player_Name}", result)
}

func TestEngine_ContainsPlaceholders(t *testing.T) {
	engine := papi.MustNew()

	assert.True(t, engine.ContainsPlaceholders("hello {player_name}"))
	assert.True(t, engine.ContainsPlaceholders("{anything at all}"))
	assert.False(t, engine.ContainsPlaceholders("no tokens"))
	assert.False(t, engine.ContainsPlaceholders("{unterminated"))
	assert.False(t, engine.ContainsPlaceholders(`\{escaped\}`))
	assert.False(t, engine.ContainsPlaceholders("{}"))
}

func TestEngine_PlaceholderPattern(t *testing.T) {
	engine := papi.MustNew()
	assert.Equal(t, papi.PlaceholderPattern, engine.PlaceholderPattern())
}

func TestEngine_CloseClearsRegistry(t *testing.T) {
	engine := papi.MustNew()
	require.NotEmpty(t, engine.RegisteredIdentifiers())

	require.NoError(t, engine.Close())
	assert.Empty(t, engine.RegisteredIdentifiers())

	// Substitution still works, everything falls back.
	result := engine.SetPlaceholders(context.Background(), testContext(), "{player_name}")
	assert.Equal(t, "{player_name}", result)
}

func TestEngine_NilResolverRegistrationIgnored(t *testing.T) {
	engine := papi.MustNew(papi.WithoutBuiltins())

	assert.False(t, engine.RegisterPlaceholder("id", nil))
	assert.False(t, engine.IsRegistered("id"))
}

func TestEngine_ConcurrentSubstituteAndRegister(t *testing.T) {
	engine := papi.MustNew()
	rctx := testContext()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				identifier := fmt.Sprintf("dynamic_%d", i)
				engine.RegisterPlaceholderFunc(identifier, func(_ context.Context, _ *papi.Context, _ papi.Params) (string, error) {
					return "v", nil
				})
				engine.UnregisterPlaceholder(identifier)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result := engine.SetPlaceholders(context.Background(), rctx, "{player_name} at {x},{y},{z}")
				assert.Equal(t, "Steve at 10,64,-5", result)
			}
		}()
	}
	wg.Wait()
}
