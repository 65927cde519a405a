package ansicolor

const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"

	Gray   = "\x1b[90m"
	Red    = "\x1b[91m"
	Blue   = "\x1b[94m"
	Yellow = "\x1b[93m"

	BgRed    = "\x1b[41m"
	BgYellow = "\x1b[43m"
	BgBlue   = "\x1b[44m"
)
