package requestlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/valyala/fasttemplate"
)

// completionLogger assembles and emits the single structured event for a
// finished request. It holds the compiled, immutable middleware state.
type completionLogger struct {
	logger   zerolog.Logger
	template *fasttemplate.Template
	selector LevelSelector
	enricher Enricher
	headers  headerFilter
}

// log emits the completion event for one request. status and elapsed
// (milliseconds) describe the outcome; err is the downstream failure, if
// any. When the sink has the computed level disabled nothing is
// assembled or emitted. The caller propagates err regardless, so the
// host's own error handling still observes the failure.
func (l *completionLogger) log(c echo.Context, d *Diagnostics, status int, elapsed float64, err error) {
	lvl := l.selector(c, elapsed, err)
	ev := l.logger.WithLevel(lvl)
	if !ev.Enabled() {
		return
	}

	if l.enricher != nil {
		l.enricher(d, c)
	}
	props, ok := d.TryComplete()
	if !ok {
		props = nil
	}

	req := c.Request()
	props = append(props,
		Property{PropRequestMethod, req.Method},
		Property{PropRequestPath, effectivePath(req)},
		Property{PropStatusCode, status},
		Property{PropElapsed, elapsed},
		Property{PropRequestID, requestID(c)},
	)
	props = append(props, l.headers.filtered(req.Header)...)
	props = mergeProperties(props)

	for _, p := range props {
		ev = applyProperty(ev, p)
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(l.render(props))
}

// render fills the message template from the final property list.
// Unknown placeholders render empty. A {Name:format} placeholder applies
// the format as a fmt verb when it starts with '%', or as a decimal
// precision pattern like 0.0000 for float values; otherwise the format
// is ignored.
func (l *completionLogger) render(props []Property) string {
	values := make(map[string]any, len(props))
	for _, p := range props {
		values[p.Name] = p.Value
	}
	return l.template.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		name, format, _ := strings.Cut(tag, ":")
		v, ok := values[name]
		if !ok {
			return 0, nil
		}
		return fmt.Fprint(w, formatValue(v, format))
	})
}

func formatValue(v any, format string) string {
	if format != "" {
		if strings.HasPrefix(format, "%") {
			return fmt.Sprintf(format, v)
		}
		if f, isFloat := v.(float64); isFloat {
			if _, frac, ok := strings.Cut(format, "."); ok {
				return fmt.Sprintf("%.*f", len(frac), f)
			}
		}
	}
	return fmt.Sprint(v)
}
