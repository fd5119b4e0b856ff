package internal

// Params carries the optional parameter string of a placeholder.
// A placeholder written as {id|...} has present params even when the
// part after the pipe is empty; {id} has absent params. The value is
// opaque to the core and interpreted solely by the matching resolver.
type Params struct {
	raw     string
	present bool
}

// NewParams creates a present Params with the given raw value.
func NewParams(raw string) Params {
	return Params{raw: raw, present: true}
}

// NoParams returns an absent Params.
func NoParams() Params {
	return Params{}
}

// Raw returns the parameter string. Empty when absent.
func (p Params) Raw() string {
	return p.raw
}

// Present reports whether the placeholder carried a parameter section.
func (p Params) Present() bool {
	return p.present
}

// Or returns the parameter string, or def when params are absent.
func (p Params) Or(def string) string {
	if !p.present {
		return def
	}
	return p.raw
}
