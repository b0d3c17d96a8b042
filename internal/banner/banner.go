// Package banner renders the startup banner printed by the CLI.
package banner

import "fmt"

const art = `
  __ _ _ __ __ _ _ __ ___
 / _` + "`" + ` | '__/ _` + "`" + ` | '_ ` + "`" + ` _ \
| (_| | | | (_| | | | | | |
 \__, |_|  \__,_|_| |_| |_|
 |___/
`

// Banner returns the ASCII art banner with the version appended.
func Banner(version string) string {
	return fmt.Sprintf("%s        statistical text modeling %s\n\n", art, version)
}
