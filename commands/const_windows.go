package commands

const (
	_etc = `C:\ProgramData\guest-labels`

	DEFAULT_WORKDIR     = _etc
	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
)
