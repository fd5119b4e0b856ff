package papi

import "time"

// Built-in placeholder identifiers.
const (
	IdentX           = "x"
	IdentY           = "y"
	IdentZ           = "z"
	IdentPlayerName  = "player_name"
	IdentDimension   = "dimension"
	IdentDimensionID = "dimension_id"
	IdentPing        = "ping"
	IdentDate        = "date"
	IdentTime        = "time"
	IdentDateTime    = "datetime"
	IdentYear        = "year"
	IdentMonth       = "month"
	IdentDay         = "day"
	IdentHour        = "hour"
	IdentMinute      = "minute"
	IdentSecond      = "second"
	IdentMCVersion   = "mc_version"
	IdentOnline      = "online"
	IdentMaxOnline   = "max_online"
	IdentAddress     = "address"
	IdentRuntimeID   = "runtime_id"
	IdentExpLevel    = "exp_level"
	IdentTotalExp    = "total_exp"
	IdentExpProgress = "exp_progress"
	IdentGameMode    = "game_mode"
	IdentXUID        = "xuid"
	IdentUUID        = "uuid"
	IdentDeviceOS    = "device_os"
	IdentLocale      = "locale"
	IdentKills       = "kills"
	IdentKillstreak  = "killstreak"
)

// Fixed date/time layouts used by the date/time built-ins.
const (
	DateLayout     = "01/02/06"
	TimeLayout     = "15:04:05"
	DateTimeLayout = time.ANSIC
	YearLayout     = "2006"
	MonthLayout    = "01"
	DayLayout      = "02"
	HourLayout     = "15"
	MinuteLayout   = "04"
	SecondLayout   = "05"
)

// PlaceholderPattern documents the shape of a resolvable placeholder as
// a regular expression, for diagnostic display. The tokenizer itself
// does not use regular expressions.
const PlaceholderPattern = `\{([^{}|]+)(\|[^{}]*)?\}`

// ServiceName is the fixed name under which an engine handle is
// published for discovery by consumer plugins.
const ServiceName = "PlaceholderAPI"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgNoValue            = "placeholder has no value"
	ErrMsgResolverPanic      = "resolver panicked"
	ErrMsgInvalidContextType = "invalid resolution context type"
	ErrMsgNilEngine          = "engine is nil"
	ErrMsgEmptyServiceName   = "service name cannot be empty"

	// Configuration errors
	ErrMsgConfigReadFailed   = "config file read failed"
	ErrMsgConfigParseFailed  = "config parsing failed"
	ErrMsgInvalidFallback    = "invalid fallback policy"
	ErrMsgInvalidEscapeChar  = "invalid escape character"
	ErrMsgInvalidTimeout     = "combat timeout cannot be negative"
	ErrMsgUnknownStatsDriver = "unknown stats storage driver"
)

// Error code constants for categorization
const (
	ErrCodeResolve = "PAPI_RESOLVE"
	ErrCodeConfig  = "PAPI_CONFIG"
	ErrCodeStorage = "PAPI_STORAGE"
	ErrCodeService = "PAPI_SERVICE"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyIdentifier = "identifier"
	MetaKeyPath       = "path"
	MetaKeyValue      = "value"
	MetaKeyDriver     = "driver"
	MetaKeyPlayer     = "player"
	MetaKeyService    = "service"
)

// Log message constants
const (
	LogMsgEngineCreated       = "engine created"
	LogMsgEngineClosed        = "engine closed"
	LogMsgBuiltinsRegistered  = "built-in placeholders registered"
	LogMsgTrackerAttached     = "kill tracker attached"
	LogMsgSubstituteStart     = "substitution started"
	LogMsgSubstituteEnd       = "substitution finished"
	LogMsgUnknownIdentifier   = "no resolver bound for identifier"
	LogMsgResolverNoValue     = "resolver returned no value"
	LogMsgResolverFault       = "resolver fault contained"
	LogMsgServicePublished    = "service handle published"
	LogMsgServiceWithdrawn    = "service handle withdrawn"
	LogMsgStatsLoadFailed     = "player stats load failed"
	LogMsgStatsSaveFailed     = "player stats save failed"
)

// Log field constants
const (
	LogFieldIdentifier = "identifier"
	LogFieldInputLen   = "input_len"
	LogFieldOutputLen  = "output_len"
	LogFieldBuiltins   = "builtins"
	LogFieldService    = "service"
	LogFieldPlayer     = "player"
	LogFieldFallback   = "fallback"
)

// Fallback policy names (configuration values)
const (
	FallbackNameRaw   = "raw"
	FallbackNameEmpty = "empty"
)

// Default configuration values
const (
	DefaultEscapeChar    = '\\'
	DefaultCombatTimeout = 10 * time.Second
)

// Format string constants
const (
	FmtPanicValue = "panic: %v"
)
