package loader

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/deepakgargct/productfeedreview/record"
)

// containerKeys are the reserved keys checked before falling back to a
// tree search for the record list.
var containerKeys = []string{"products", "items", "feed", "entries", "data"}

// maxSearchDepth bounds the breadth-first record search so pathologically
// nested inputs cannot blow the queue up.
const maxSearchDepth = 64

// loadJSON decodes a JSON feed and discovers its record list.
// Discovery order: the root itself if it is a list of mappings, then the
// reserved container keys, then a breadth-first search for the first list
// of mappings, then the root as a single record if it is a mapping.
func loadJSON(data []byte) ([]record.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}

	return extractRecords(root), nil
}

// extractRecords finds the record list inside an arbitrary JSON value tree.
func extractRecords(root any) []record.Record {
	if list, ok := root.([]any); ok {
		if maps, ok := asMappingList(list); ok {
			return toRecords(maps)
		}
	}

	if m, ok := root.(map[string]any); ok {
		for _, key := range containerKeys {
			list, ok := m[key].([]any)
			if !ok {
				continue
			}
			if maps, ok := asMappingList(list); ok {
				return toRecords(maps)
			}
		}
	}

	if maps := searchMappingList(root); maps != nil {
		return toRecords(maps)
	}

	if m, ok := root.(map[string]any); ok {
		return []record.Record{record.New(m)}
	}
	return nil
}

// queueItem pairs a node with its depth for the bounded search.
type queueItem struct {
	node  any
	depth int
}

// searchMappingList performs a breadth-first search for the first
// non-empty list whose elements are all mappings. Lists are examined
// before their elements are recursed into; mapping values are enqueued in
// sorted key order so the result is deterministic.
func searchMappingList(root any) []map[string]any {
	queue := []queueItem{{node: root}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth > maxSearchDepth {
			continue
		}

		switch t := cur.node.(type) {
		case []any:
			if len(t) > 0 {
				if maps, ok := asMappingList(t); ok {
					return maps
				}
			}
			for _, item := range t {
				queue = append(queue, queueItem{node: item, depth: cur.depth + 1})
			}
		case map[string]any:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				queue = append(queue, queueItem{node: t[k], depth: cur.depth + 1})
			}
		}
	}
	return nil
}

// asMappingList returns the elements of a list when every element is a
// mapping. An empty list qualifies (an empty feed, not a failure).
func asMappingList(list []any) ([]map[string]any, bool) {
	maps := make([]map[string]any, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		maps = append(maps, m)
	}
	return maps, true
}

func toRecords(maps []map[string]any) []record.Record {
	records := make([]record.Record, 0, len(maps))
	for _, m := range maps {
		records = append(records, record.New(m))
	}
	return records
}
