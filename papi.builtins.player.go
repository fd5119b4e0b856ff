package papi

import "strconv"

// registerPlayerBuiltins binds the player-attribute placeholders.
func (e *Engine) registerPlayerBuiltins() {
	e.RegisterPlaceholderFunc(IdentX, playerBuiltin(func(p *Player) string {
		return formatCoord(p.Position.X)
	}))
	e.RegisterPlaceholderFunc(IdentY, playerBuiltin(func(p *Player) string {
		return formatCoord(p.Position.Y)
	}))
	e.RegisterPlaceholderFunc(IdentZ, playerBuiltin(func(p *Player) string {
		return formatCoord(p.Position.Z)
	}))
	e.RegisterPlaceholderFunc(IdentPlayerName, playerBuiltin(func(p *Player) string {
		return p.Name
	}))
	e.RegisterPlaceholderFunc(IdentDimension, playerBuiltin(func(p *Player) string {
		return p.Dimension.String()
	}))
	e.RegisterPlaceholderFunc(IdentDimensionID, playerBuiltin(func(p *Player) string {
		return formatInt(int(p.Dimension))
	}))
	e.RegisterPlaceholderFunc(IdentPing, playerBuiltin(func(p *Player) string {
		return formatInt(p.Ping)
	}))
	e.RegisterPlaceholderFunc(IdentAddress, playerBuiltin(func(p *Player) string {
		return p.Address
	}))
	e.RegisterPlaceholderFunc(IdentRuntimeID, playerBuiltin(func(p *Player) string {
		return strconv.FormatUint(p.RuntimeID, 10)
	}))
	e.RegisterPlaceholderFunc(IdentExpLevel, playerBuiltin(func(p *Player) string {
		return formatInt(p.ExpLevel)
	}))
	e.RegisterPlaceholderFunc(IdentTotalExp, playerBuiltin(func(p *Player) string {
		return formatInt(p.TotalExp)
	}))
	e.RegisterPlaceholderFunc(IdentExpProgress, playerBuiltin(func(p *Player) string {
		return formatFloat(p.ExpProgress)
	}))
	e.RegisterPlaceholderFunc(IdentGameMode, playerBuiltin(func(p *Player) string {
		return p.GameMode.String()
	}))
	e.RegisterPlaceholderFunc(IdentXUID, playerBuiltin(func(p *Player) string {
		return p.XUID
	}))
	e.RegisterPlaceholderFunc(IdentUUID, playerBuiltin(func(p *Player) string {
		return p.UUID
	}))
	e.RegisterPlaceholderFunc(IdentDeviceOS, playerBuiltin(func(p *Player) string {
		return p.DeviceOS
	}))
	e.RegisterPlaceholderFunc(IdentLocale, playerBuiltin(func(p *Player) string {
		return p.Locale
	}))
}
