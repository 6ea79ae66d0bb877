package utils

import (
	"fmt"
	"strings"

	"github.com/concave-dev/labform/internal/form"
)

// ParseAssignments turns --set key=value flags into fields, in flag order.
// Keys are trimmed like page labels; values are kept verbatim.
func ParseAssignments(pairs []string) ([]form.Field, error) {
	fields := make([]form.Field, 0, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set value %q: expected key=value", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid --set value %q: empty key", pair)
		}
		fields = append(fields, form.Field{Label: key, Value: value})
	}
	return fields, nil
}
