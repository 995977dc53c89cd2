package requestlog

import (
	"net/http"
	"testing"
)

func propMap(props []Property) map[string]any {
	m := make(map[string]any, len(props))
	for _, p := range props {
		m[p.Name] = p.Value
	}
	return m
}

func TestHeaderFilter_LogAllWithExclude(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{
		LogAll:  true,
		Prefix:  "req_",
		Exclude: []string{"Authorization"},
	})
	h := http.Header{}
	h.Set("Authorization", "secret")
	h.Set("X-Custom", "v")

	got := propMap(f.filtered(h))
	if len(got) != 1 {
		t.Fatalf("expected 1 header, got %v", got)
	}
	if got["req_X-Custom"] != "v" {
		t.Errorf("expected req_X-Custom=v, got %v", got)
	}
}

func TestHeaderFilter_IncludeOnly(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{
		Include: []string{"X-Tenant"},
	})
	h := http.Header{}
	h.Set("X-Tenant", "acme")
	h.Set("X-Other", "nope")

	got := propMap(f.filtered(h))
	if len(got) != 1 || got["X-Tenant"] != "acme" {
		t.Fatalf("expected only X-Tenant, got %v", got)
	}
}

func TestHeaderFilter_ExcludeWinsOverInclude(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{
		LogAll:  true,
		Include: []string{"Authorization"},
		Exclude: []string{"Authorization"},
	})
	h := http.Header{}
	h.Set("Authorization", "secret")

	if got := f.filtered(h); len(got) != 0 {
		t.Fatalf("excluded header emitted: %v", got)
	}
}

func TestHeaderFilter_MatchingIsCaseInsensitive(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{
		LogAll:  true,
		Exclude: []string{"authorization"},
	})
	h := http.Header{}
	h.Set("Authorization", "secret")
	h.Set("Accept", "application/json")

	got := propMap(f.filtered(h))
	if _, leaked := got["Authorization"]; leaked {
		t.Error("lowercase exclude entry did not match wire-case header")
	}
	if got["Accept"] != "application/json" {
		t.Errorf("expected Accept to pass, got %v", got)
	}
}

func TestHeaderFilter_JoinsMultipleValues(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{Include: []string{"Accept"}})
	h := http.Header{}
	h.Add("Accept", "text/plain")
	h.Add("Accept", "application/json")

	got := propMap(f.filtered(h))
	if got["Accept"] != "text/plain,application/json" {
		t.Fatalf("expected joined values, got %v", got)
	}
}

func TestHeaderFilter_NothingConfiguredYieldsNothing(t *testing.T) {
	f := newHeaderFilter(HeaderConfig{})
	h := http.Header{}
	h.Set("X-Custom", "v")

	if got := f.filtered(h); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
