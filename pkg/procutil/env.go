package procutil

import (
	"os"
	"strings"
)

type EnvVar string

func LookupBoolEnv(name EnvVar, defaultValue bool) bool {
	if val, ok := lookupEnv(name); ok {
		switch strings.ToLower(val) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
	}
	return defaultValue
}

// LookupStringEnv returns the value of the variable, or defaultValue when
// it is unset or empty.
func LookupStringEnv(name EnvVar, defaultValue string) string {
	if val, ok := lookupEnv(name); ok && val != "" {
		return val
	}
	return defaultValue
}

func lookupEnv(name EnvVar) (string, bool) {
	return os.LookupEnv(string(name))
}
