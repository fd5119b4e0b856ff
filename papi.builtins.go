package papi

import (
	"context"
	"strconv"
)

// registerBuiltins binds the shipped provider set into the engine's
// registry. Each built-in reads exactly one attribute off the
// resolution context and formats it as a string; none of them takes
// params. A built-in whose backing context piece is missing reports
// ErrNoValue and never fails outright.
func (e *Engine) registerBuiltins() {
	e.registerPlayerBuiltins()
	e.registerServerBuiltins()
	e.registerTimeBuiltins()
}

// registerServerBuiltins binds the server-statistics placeholders.
func (e *Engine) registerServerBuiltins() {
	e.RegisterPlaceholderFunc(IdentMCVersion, serverBuiltin(func(s *Server) string {
		return s.MinecraftVersion
	}))
	e.RegisterPlaceholderFunc(IdentOnline, serverBuiltin(func(s *Server) string {
		return formatInt(s.OnlinePlayers)
	}))
	e.RegisterPlaceholderFunc(IdentMaxOnline, serverBuiltin(func(s *Server) string {
		return formatInt(s.MaxPlayers)
	}))
}

// serverBuiltin lifts a server attribute reader into a ResolverFunc.
func serverBuiltin(read func(*Server) string) ResolverFunc {
	return func(_ context.Context, rctx *Context, _ Params) (string, error) {
		if rctx == nil || rctx.Server == nil {
			return "", ErrNoValue
		}
		return read(rctx.Server), nil
	}
}

// playerBuiltin lifts a player attribute reader into a ResolverFunc.
func playerBuiltin(read func(*Player) string) ResolverFunc {
	return func(_ context.Context, rctx *Context, _ Params) (string, error) {
		player, err := requirePlayer(rctx)
		if err != nil {
			return "", err
		}
		return read(player), nil
	}
}

// requirePlayer extracts the player from a resolution context.
func requirePlayer(rctx *Context) (*Player, error) {
	if rctx == nil || rctx.Player == nil {
		return nil, ErrNoValue
	}
	return rctx.Player, nil
}

// formatInt renders an integer in plain decimal.
func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatCoord renders a position coordinate, truncated toward zero the
// way the host runtime displays block coordinates.
func formatCoord(v float64) string {
	return strconv.Itoa(int(v))
}

// formatFloat renders a fractional attribute in plain decimal with the
// shortest exact representation.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
