package xendit

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Resource is the generic key-value store backing every model variant. It is
// constructed once from a decoded response body and never mutated afterwards
// except through Set, which exists mainly for test fixtures.
type Resource struct {
	attrs map[string]any
}

// NewResource wraps a decoded attribute map. The map is copied so later
// mutation of the input does not leak into the model.
func NewResource(attrs map[string]any) Resource {
	copied := make(map[string]any, len(attrs))
	for key, value := range attrs {
		copied[key] = value
	}
	return Resource{attrs: copied}
}

// Get returns the raw value stored under key, or nil.
func (r Resource) Get(key string) any {
	return r.attrs[key]
}

// Set overwrites the value stored under key.
func (r Resource) Set(key string, value any) {
	r.attrs[key] = value
}

// ToMap returns a copy of the underlying attribute map.
func (r Resource) ToMap() map[string]any {
	copied := make(map[string]any, len(r.attrs))
	for key, value := range r.attrs {
		copied[key] = value
	}
	return copied
}

// equal reports structural equality of the underlying maps. Model variants
// expose it through typed Equal methods so distinct kinds never compare equal.
func (r Resource) equal(other Resource) bool {
	return reflect.DeepEqual(r.attrs, other.attrs)
}

// getString returns the string stored under key, or "".
func (r Resource) getString(key string) string {
	s, _ := r.attrs[key].(string)
	return s
}

// getFloat returns the numeric value stored under key. JSON numbers decode as
// float64, but fixtures may carry int or json.Number.
func (r Resource) getFloat(key string) float64 {
	switch v := r.attrs[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

// getMap returns the nested object stored under key, or nil.
func (r Resource) getMap(key string) map[string]any {
	m, _ := r.attrs[key].(map[string]any)
	return m
}

// nestedString reads a string one level deep, e.g. ewallet.channel_code.
func (r Resource) nestedString(key, nested string) string {
	m := r.getMap(key)
	if m == nil {
		return ""
	}
	s, _ := m[nested].(string)
	return s
}

// actionFor scans the actions list for the first entry whose action field
// matches actionType, compared case-insensitively.
func (r Resource) actionFor(actionType string) (map[string]any, bool) {
	actions, _ := r.attrs["actions"].([]any)
	want := strings.ToUpper(actionType)
	for _, entry := range actions {
		action, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := action["action"].(string)
		if strings.ToUpper(name) == want {
			return action, true
		}
	}
	return nil, false
}

// Link is a HATEOAS-style continuation link returned by some list endpoints.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// decodeLinks converts the raw links entry of a list response.
func decodeLinks(raw any) []Link {
	entries, _ := raw.([]any)
	if len(entries) == 0 {
		return nil
	}
	links := make([]Link, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		link := Link{}
		link.Href, _ = m["href"].(string)
		link.Rel, _ = m["rel"].(string)
		link.Method, _ = m["method"].(string)
		links = append(links, link)
	}
	return links
}

// listData extracts the data array of a list response, degrading a missing
// entry to an empty slice.
func listData(response map[string]any) []any {
	data, _ := response["data"].([]any)
	return data
}

// listHasMore extracts the has_more flag of a list response, defaulting to
// false when absent.
func listHasMore(response map[string]any) bool {
	hasMore, _ := response["has_more"].(bool)
	return hasMore
}

// asAttrs coerces a list entry into an attribute map.
func asAttrs(entry any) map[string]any {
	attrs, _ := entry.(map[string]any)
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs
}
