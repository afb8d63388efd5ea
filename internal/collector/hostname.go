package collector

import (
	"os"
	"strings"
)

// HostLabel derives the host tag value from a hostname: the domain suffix
// is stripped at the first dot and a leading ASCII lowercase letter is
// upper-cased.
func HostLabel(hostname string) string {
	if i := strings.IndexByte(hostname, '.'); i >= 0 {
		hostname = hostname[:i]
	}
	if hostname != "" && hostname[0] >= 'a' && hostname[0] <= 'z' {
		hostname = string(hostname[0]-'a'+'A') + hostname[1:]
	}

	return hostname
}

// HostTag resolves the local hostname into its tag value, falling back to
// "NULL" when the hostname cannot be determined.
func HostTag() string {
	name, err := os.Hostname()
	if err != nil {
		return "NULL"
	}

	return HostLabel(name)
}
