// api/schemas/common.go
package schemas

import "strings"

// lowerJoin lowercases and space-joins the non-empty parts.
func lowerJoin(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(p))
	}
	return b.String()
}
