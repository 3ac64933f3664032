package sources

import (
	"strings"
	"time"
)

// New picks the source implementation for location: http(s) URLs are read
// over the network, anything else is treated as a local directory.
func New(location, catalogPath string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewStatic(location, catalogPath, timeout)
	}
	return NewLocal(location, catalogPath)
}
