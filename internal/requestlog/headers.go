package requestlog

import (
	"net/http"
	"net/textproto"
	"strings"
)

// headerFilter is the compiled form of HeaderConfig. Names are stored in
// canonical MIME form so matching is case-insensitive.
type headerFilter struct {
	logAll  bool
	prefix  string
	include map[string]struct{}
	exclude map[string]struct{}
}

func newHeaderFilter(cfg HeaderConfig) headerFilter {
	return headerFilter{
		logAll:  cfg.LogAll,
		prefix:  cfg.Prefix,
		include: canonicalSet(cfg.Include),
		exclude: canonicalSet(cfg.Exclude),
	}
}

func canonicalSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[textproto.CanonicalMIMEHeaderKey(n)] = struct{}{}
	}
	return set
}

// filtered returns one property per header that passes the filter, named
// prefix+header. Precedence is Exclude over Include over LogAll: an
// excluded header is never emitted and an included header is emitted
// exactly once. Multi-valued headers are joined with commas.
func (f headerFilter) filtered(h http.Header) []Property {
	if !f.logAll && len(f.include) == 0 {
		return nil
	}
	var props []Property
	for name, values := range h {
		if _, skip := f.exclude[name]; skip {
			continue
		}
		_, included := f.include[name]
		if !included && !f.logAll {
			continue
		}
		props = append(props, Property{
			Name:  f.prefix + name,
			Value: strings.Join(values, ","),
		})
	}
	return props
}
