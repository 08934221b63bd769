package ir

import (
	"fmt"
	"strconv"
)

// Small integer enums serialize by name so that hand-written IR files
// stay readable. The name tables are indexed by the enum value.

func enumString[T ~uint8](v T, names []string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

func marshalEnum[T ~uint8](v T, names []string) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("ir: enum value %d out of range", v)
	}
	return []byte(names[v]), nil
}

func unmarshalEnum[T ~uint8](dst *T, text []byte, names []string, what string) error {
	s := string(text)
	for i, name := range names {
		if name == s {
			*dst = T(i)
			return nil
		}
	}
	return fmt.Errorf("ir: unknown %s %q", what, s)
}
