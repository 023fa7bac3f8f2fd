package commands

const (
	_etc = "/usr/local/etc/guest-labels"
	_var = "/usr/local/var/guest-labels"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
