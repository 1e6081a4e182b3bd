package config

import (
	"os"
	"strings"

	"github.com/spf13/cast"
)

// DEBUG reports whether debug output is wanted, checked in order:
// env NAME_DEBUG for each name, env DEBUG, running under go test.
func DEBUG(names ...string) bool {
	for _, name := range names {
		if name == "" {
			continue
		}
		if s := os.Getenv(strings.ToUpper(name) + "_DEBUG"); s != "" {
			return cast.To[bool](s)
		}
	}
	if cast.To[bool](os.Getenv("DEBUG")) {
		return true
	}
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, "-test.") {
			return true
		}
	}
	return false
}
