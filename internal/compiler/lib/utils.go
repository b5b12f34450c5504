package lib

import (
	"strconv"
	"strings"
)

// FormatInt renders an int column value.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatFloat renders a float column value with two decimals.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// FormatChar renders a char column value as the character itself.
func FormatChar(v int8) string {
	return string([]byte{byte(v)})
}

// JoinParams renders a parameter list as "type name, type name".
func JoinParams(types, names []string) string {
	parts := make([]string, 0, len(names))
	for i := range names {
		parts = append(parts, types[i]+" "+names[i])
	}
	return strings.Join(parts, ", ")
}
