package names

import "strings"

// Split splits an inverted "Surname, Given Names" string on the first comma
// into a trimmed surname and given name. Without a comma the whole string is
// the surname and the given name is empty.
func Split(name string) (surname, given string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	if i := strings.Index(name, ","); i >= 0 {
		return strings.TrimSpace(name[:i]), strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
