package internal

// Character constants for the placeholder grammar
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharPipe       = '|'
	CharBackslash  = '\\'
)

// DefaultEscapeChar is the escape character used when none is configured.
const DefaultEscapeChar = CharBackslash

// Log message constants
const (
	LogMsgRegistryCreated      = "registry created"
	LogMsgRegistryCleared      = "registry cleared"
	LogMsgResolverRegistered   = "resolver registered"
	LogMsgResolverReplaced     = "resolver replaced for identifier"
	LogMsgResolverUnregistered = "resolver unregistered"
	LogMsgRegisterIgnored      = "registration ignored"
	LogMsgTokenizerCreated     = "tokenizer created"
)

// Log field constants
const (
	LogFieldIdentifier = "identifier"
	LogFieldReason     = "reason"
	LogFieldInput      = "input_len"
	LogFieldCount      = "count"
)

// Registration rejection reasons (diagnostic only, registration never errors)
const (
	ReasonEmptyIdentifier = "empty identifier"
	ReasonNilResolver     = "nil resolver"
)
