package commands

const (
	_etc = "/usr/local/etc/com.github.guest-labels"
	_var = "/usr/local/var/com.github.guest-labels"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
