package archive

import "strings"

// ShellQuote wraps s in single quotes so it survives shell interpretation
// unchanged. Embedded single quotes are escaped with the POSIX '\''
// idiom. Every path interpolated into an elevated command goes through
// this one function.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
