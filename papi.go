// Package papi resolves symbolic placeholders embedded in arbitrary text
// against a registry of named value providers.
//
// Placeholders use a simple brace syntax with an optional parameter
// section separated by a pipe:
//
//	{player_name} joined! Mode: {game_mode}
//	{greeting|formal}
//
// # Basic Usage
//
// Create an engine and substitute placeholders against a resolution
// context:
//
//	engine := papi.MustNew()
//	rctx := &papi.Context{Player: &papi.Player{Name: "Steve"}}
//	result := engine.SetPlaceholders(ctx, rctx, "Hello, {player_name}!")
//	// result: "Hello, Steve!"
//
// # Built-in Placeholders
//
// The engine ships with resolvers for player attributes (position,
// name, ping, experience, identity), server statistics (version, player
// counts) and wall-clock date/time components. The Ident constants list
// the full set.
//
// # Custom Resolvers
//
// Collaborating plugins extend the engine by binding their own
// resolvers:
//
//	engine.RegisterPlaceholderFunc("motd", func(ctx context.Context, rctx *papi.Context, params papi.Params) (string, error) {
//	    return "Welcome!", nil
//	})
//
// Registering an identifier that is already bound replaces the previous
// binding; the replacement is logged but never fails.
//
// # Error Handling
//
// Substitution never fails. Unknown identifiers, resolvers reporting
// ErrNoValue, and resolver faults (errors or panics) all degrade to the
// configured fallback policy for that single placeholder: by default the
// original token text is re-emitted verbatim. Malformed placeholders
// (unterminated or nested braces, empty identifiers) are treated as
// literal text by the tokenizer.
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := papi.New(
//	    papi.WithFallbackPolicy(papi.FallbackEmpty),
//	    papi.WithEscapeChar('\\'),
//	    papi.WithLogger(logger),
//	)
package papi
