package taibf

const (
	OpIncrement = '+'
	OpDecrement = '-'
	OpRight     = '>'
	OpLeft      = '<'
	OpOutput    = '.'
	OpInput     = ','
	OpLoopStart = '['
	OpLoopEnd   = ']'
)
