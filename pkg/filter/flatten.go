package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPrefix is the query parameter namespace the inventory API reads
// filters from, e.g. filter[system_profile][sap_system].
const DefaultPrefix = "filter"

// SIDsEnhancer names the array index placeholder used for substring
// matching on list fields, e.g. filter[system_profile][sap_sids][contains][].
const SIDsEnhancer = "contains"

// Flatten walks a nested filter object and produces the flat, wire-ready
// mapping from bracketed path to leaf value. Each key appends "[key]" to
// the path built so far; list values additionally append "[enhancer][]"
// when enhancer is non-empty, plain "[]" otherwise. A list collapses to a
// single entry, never one entry per element. A nil map yields an empty
// mapping. Key order of the result is not significant.
func Flatten(in Map, prefix string, enhancer string) map[string]Value {
	out := map[string]Value{}
	flattenInto(out, in, prefix, enhancer)
	return out
}

func flattenInto(out map[string]Value, in Map, prefix string, enhancer string) {
	for key, value := range in {
		path := prefix + "[" + key + "]"
		switch value.Kind() {
		case KindMap:
			flattenInto(out, value.Nested(), path, enhancer)
		case KindStringList:
			if enhancer != "" {
				path += "[" + enhancer + "]"
			}
			out[path+"[]"] = value
		default:
			out[path] = value
		}
	}
}

// GenerateFilter flattens a filter object under the API filter namespace.
// Nil input is treated as an empty object.
func GenerateFilter(in Map) map[string]Value {
	return Flatten(in, DefaultPrefix, "")
}

// Nest reverses Flatten for a mapping produced with the given enhancer.
// Paths are split on their bracket segments; the trailing "[]" segment of
// a list entry, and the enhancer segment before it, belong to the array
// encoding rather than the key chain and are discarded.
func Nest(flat map[string]Value, enhancer string) Map {
	root := Map{}
	for path, value := range flat {
		segments := splitPath(path)
		if value.Kind() == KindStringList {
			if n := len(segments); n > 0 && segments[n-1] == "" {
				segments = segments[:n-1]
			}
			if n := len(segments); enhancer != "" && n > 0 && segments[n-1] == enhancer {
				segments = segments[:n-1]
			}
		}
		if len(segments) == 0 {
			continue
		}
		m := root
		for _, segment := range segments[:len(segments)-1] {
			child, ok := m[segment]
			if !ok || child.Kind() != KindMap {
				child = Nested(Map{})
				m[segment] = child
			}
			m = child.Nested()
		}
		m[segments[len(segments)-1]] = value
	}
	return root
}

// splitPath breaks "pre[a][b][]" into its segments. A non-empty leading
// run before the first bracket is ignored, it is the path prefix rather
// than a key.
func splitPath(path string) []string {
	var segments []string
	for {
		open := strings.IndexByte(path, '[')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(path[open:], ']')
		if closing < 0 {
			break
		}
		segments = append(segments, path[open+1:open+closing])
		path = path[open+closing+1:]
	}
	return segments
}

// AddToQuery encodes a flattened mapping into query parameters. List
// entries repeat their parameter once per element under the path computed
// by Flatten, which already carries the "[]" suffix.
func AddToQuery(q url.Values, flat map[string]Value) {
	for path, value := range flat {
		switch value.Kind() {
		case KindBool:
			q.Set(path, strconv.FormatBool(value.Bool()))
		case KindString:
			q.Set(path, value.String())
		case KindStringList:
			for _, item := range value.StringList() {
				q.Add(path, item)
			}
		}
	}
}
