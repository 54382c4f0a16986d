package domain

import (
	"fmt"
	"strings"
)

// APIVersion names a route tree of the public API.
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
)

// ParseAPIVersion accepts a client-supplied version such as "v1" or "V1".
func ParseAPIVersion(s string) (APIVersion, error) {
	switch v := APIVersion(strings.ToLower(strings.TrimSpace(s))); v {
	case APIVersionV1:
		return v, nil
	default:
		return "", fmt.Errorf("unsupported API version %q", s)
	}
}

func (v APIVersion) String() string {
	return string(v)
}
