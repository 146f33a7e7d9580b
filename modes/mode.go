package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)
