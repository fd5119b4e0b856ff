package papi

import (
	"context"
	"time"
)

// registerTimeBuiltins binds the date/time placeholders. They read the
// context's clock (wall clock when none is set) and format with the
// fixed layouts from papi.constants.go.
func (e *Engine) registerTimeBuiltins() {
	e.RegisterPlaceholderFunc(IdentDate, timeBuiltin(DateLayout))
	e.RegisterPlaceholderFunc(IdentTime, timeBuiltin(TimeLayout))
	e.RegisterPlaceholderFunc(IdentDateTime, timeBuiltin(DateTimeLayout))
	e.RegisterPlaceholderFunc(IdentYear, timeBuiltin(YearLayout))
	e.RegisterPlaceholderFunc(IdentMonth, timeBuiltin(MonthLayout))
	e.RegisterPlaceholderFunc(IdentDay, timeBuiltin(DayLayout))
	e.RegisterPlaceholderFunc(IdentHour, timeBuiltin(HourLayout))
	e.RegisterPlaceholderFunc(IdentMinute, timeBuiltin(MinuteLayout))
	e.RegisterPlaceholderFunc(IdentSecond, timeBuiltin(SecondLayout))
}

// timeBuiltin lifts a time layout into a ResolverFunc.
func timeBuiltin(layout string) ResolverFunc {
	return func(_ context.Context, rctx *Context, _ Params) (string, error) {
		var now time.Time
		if rctx != nil {
			now = rctx.Now()
		} else {
			now = time.Now()
		}
		return now.Format(layout), nil
	}
}
