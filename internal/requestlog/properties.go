package requestlog

import (
	"time"

	"github.com/rs/zerolog"
)

// Names of the fixed properties attached to every completion event.
const (
	PropRequestMethod = "RequestMethod"
	PropRequestPath   = "RequestPath"
	PropStatusCode    = "StatusCode"
	PropElapsed       = "Elapsed"
	PropRequestID     = "RequestId"
)

// BodyKey is the diagnostics key the captured request body is stored
// under.
const BodyKey = "body"

// Property is one named value on a completion event.
type Property struct {
	Name  string
	Value any
}

// mergeProperties collapses duplicate names, keeping the value of the
// last occurrence. Earlier sources (collected diagnostics) are appended
// before later ones (fixed fields, then headers), so later sources win
// on collision.
func mergeProperties(props []Property) []Property {
	seen := make(map[string]int, len(props))
	out := props[:0]
	for _, p := range props {
		if i, ok := seen[p.Name]; ok {
			out[i].Value = p.Value
			continue
		}
		seen[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}

// applyProperty attaches one property to a zerolog event with the
// closest typed field method.
func applyProperty(ev *zerolog.Event, p Property) *zerolog.Event {
	switch v := p.Value.(type) {
	case string:
		return ev.Str(p.Name, v)
	case int:
		return ev.Int(p.Name, v)
	case int64:
		return ev.Int64(p.Name, v)
	case float64:
		return ev.Float64(p.Name, v)
	case bool:
		return ev.Bool(p.Name, v)
	case time.Duration:
		return ev.Dur(p.Name, v)
	case time.Time:
		return ev.Time(p.Name, v)
	case error:
		return ev.AnErr(p.Name, v)
	default:
		return ev.Interface(p.Name, v)
	}
}
