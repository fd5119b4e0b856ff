package papi

import (
	"strings"
	"time"
)

// Position is a location in a world.
type Position struct {
	X float64
	Y float64
	Z float64
}

// Dimension identifies the world dimension a player is in.
type Dimension int

// Dimension constants, numbered as the host runtime numbers them.
const (
	DimensionOverworld Dimension = iota
	DimensionNether
	DimensionTheEnd
)

// Dimension name constants
const (
	DimensionNameOverworld = "overworld"
	DimensionNameNether    = "nether"
	DimensionNameTheEnd    = "the_end"
)

// String returns the lowercase dimension name.
func (d Dimension) String() string {
	switch d {
	case DimensionNether:
		return DimensionNameNether
	case DimensionTheEnd:
		return DimensionNameTheEnd
	default:
		return DimensionNameOverworld
	}
}

// ParseDimension parses a dimension name, case-insensitively.
func ParseDimension(name string) (Dimension, bool) {
	switch strings.ToLower(name) {
	case DimensionNameOverworld:
		return DimensionOverworld, true
	case DimensionNameNether:
		return DimensionNether, true
	case DimensionNameTheEnd:
		return DimensionTheEnd, true
	default:
		return DimensionOverworld, false
	}
}

// GameMode identifies a player's game mode.
type GameMode int

// Game mode constants
const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeAdventure
	GameModeSpectator
)

// Game mode name constants
const (
	GameModeNameSurvival  = "Survival"
	GameModeNameCreative  = "Creative"
	GameModeNameAdventure = "Adventure"
	GameModeNameSpectator = "Spectator"
)

// String returns the game mode name.
func (m GameMode) String() string {
	switch m {
	case GameModeCreative:
		return GameModeNameCreative
	case GameModeAdventure:
		return GameModeNameAdventure
	case GameModeSpectator:
		return GameModeNameSpectator
	default:
		return GameModeNameSurvival
	}
}

// ParseGameMode parses a game mode name, case-insensitively.
func ParseGameMode(name string) (GameMode, bool) {
	switch strings.ToLower(name) {
	case strings.ToLower(GameModeNameSurvival):
		return GameModeSurvival, true
	case strings.ToLower(GameModeNameCreative):
		return GameModeCreative, true
	case strings.ToLower(GameModeNameAdventure):
		return GameModeAdventure, true
	case strings.ToLower(GameModeNameSpectator):
		return GameModeSpectator, true
	default:
		return GameModeSurvival, false
	}
}

// Player is the player snapshot a resolution context carries. It is a
// plain value bundle: the host binding fills it from its own player
// handle before each substitution call.
type Player struct {
	Name        string
	Position    Position
	Dimension   Dimension
	Ping        int // milliseconds
	Address     string
	RuntimeID   uint64
	ExpLevel    int
	TotalExp    int
	ExpProgress float32
	GameMode    GameMode
	XUID        string
	UUID        string
	DeviceOS    string
	Locale      string
}

// Server carries server-wide statistics for server-scoped placeholders.
type Server struct {
	MinecraftVersion string
	OnlinePlayers    int
	MaxPlayers       int
}

// Context is the resolution context supplied by the caller for one
// substitution call. The engine borrows it read-only for the duration
// of the call and never retains it. Any field may be nil; built-ins
// whose backing field is missing report ErrNoValue for that token.
type Context struct {
	// Player the placeholders are parsed against, if any.
	Player *Player

	// Server statistics, if available.
	Server *Server

	// Clock overrides the wall-clock source for date/time
	// placeholders. Nil means time.Now.
	Clock func() time.Time
}

// NewContext creates an empty resolution context.
func NewContext() *Context {
	return &Context{}
}

// WithPlayer sets the player and returns the context for chaining.
func (c *Context) WithPlayer(p *Player) *Context {
	c.Player = p
	return c
}

// WithServer sets the server statistics and returns the context.
func (c *Context) WithServer(s *Server) *Context {
	c.Server = s
	return c
}

// WithClock sets the wall-clock source and returns the context.
func (c *Context) WithClock(clock func() time.Time) *Context {
	c.Clock = clock
	return c
}

// Now returns the context's notion of the current time.
func (c *Context) Now() time.Time {
	if c == nil || c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}
