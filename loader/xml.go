package loader

import (
	"encoding/xml"
	"strings"

	"github.com/deepakgargct/productfeedreview/record"
)

// candidateTags are tried in order when looking for product elements.
var candidateTags = []string{"item", "product", "entry"}

// xmlNode is a generic XML element tree. Namespace prefixes are dropped:
// only the local name matters for field naming.
type xmlNode struct {
	XMLName xml.Name
	Text    string    `xml:",chardata"`
	Nodes   []xmlNode `xml:",any"`
}

// loadXML decodes an XML feed. Product elements are the descendants named
// item, product or entry (first tag with any matches wins); if none
// match, the root's direct children are taken. Each product element
// becomes one record: child elements become fields keyed by local name,
// a child with children becomes a one-level nested mapping of
// grandchild-local-name to text, a childless child stores its text.
func loadXML(data []byte) ([]record.Record, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Format: FormatXML, Err: err}
	}

	var candidates []xmlNode
	for _, tag := range candidateTags {
		candidates = findDescendants(root, tag)
		if len(candidates) > 0 {
			break
		}
	}
	if len(candidates) == 0 {
		candidates = root.Nodes
	}

	records := make([]record.Record, 0, len(candidates))
	for _, el := range candidates {
		records = append(records, record.New(elementToFields(el)))
	}
	return records, nil
}

// findDescendants collects all descendants of root (root excluded) with
// the given local name, in document order.
func findDescendants(root xmlNode, local string) []xmlNode {
	var found []xmlNode
	var walk func(n xmlNode)
	walk = func(n xmlNode) {
		for _, child := range n.Nodes {
			if child.XMLName.Local == local {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(root)
	return found
}

// elementToFields flattens one product element into a field map. Nesting
// is flattened exactly one level; grandchildren with children of their own
// contribute only their text.
func elementToFields(el xmlNode) map[string]any {
	fields := make(map[string]any, len(el.Nodes))
	for _, child := range el.Nodes {
		if len(child.Nodes) > 0 {
			inner := make(map[string]any, len(child.Nodes))
			for _, gc := range child.Nodes {
				inner[gc.XMLName.Local] = strings.TrimSpace(gc.Text)
			}
			fields[child.XMLName.Local] = inner
		} else {
			fields[child.XMLName.Local] = strings.TrimSpace(child.Text)
		}
	}
	return fields
}
