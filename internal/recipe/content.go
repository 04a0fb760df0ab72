package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ContentGroup is a titled or untitled ordered bucket of recipe lines.
// An empty Title means the group is ungrouped legacy content.
type ContentGroup struct {
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Items []string `json:"items" yaml:"items"`
}

// Kind tags which persisted shape a Content value was decoded from.
type Kind int

const (
	KindFlat Kind = iota
	KindGrouped
)

func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindGrouped:
		return "grouped"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Content is the persisted ingredients or steps field. It is either a flat
// list of lines (legacy) or a list of groups. The zero value is an absent
// field and behaves as an empty flat list.
type Content struct {
	kind   Kind
	lines  []string
	groups []ContentGroup
}

// FlatLines builds legacy ungrouped content.
func FlatLines(lines ...string) Content {
	return Content{kind: KindFlat, lines: lines}
}

// Grouped builds current grouped content.
func Grouped(groups ...ContentGroup) Content {
	return Content{kind: KindGrouped, groups: groups}
}

func (c Content) Kind() Kind { return c.kind }

// Lines returns the flat lines of a KindFlat value, nil otherwise.
func (c Content) Lines() []string { return c.lines }

// Groups returns the groups of a KindGrouped value, nil otherwise.
func (c Content) Groups() []ContentGroup { return c.groups }

func (c Content) MarshalJSON() ([]byte, error) {
	if c.kind == KindGrouped {
		if c.groups == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.groups)
	}
	if c.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.lines)
}

// UnmarshalJSON decides the variant from the first non-null element: an
// object means grouped content, anything else means flat lines. Items that
// are not strings are coerced to text rather than rejected.
func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Content{}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content must be an array: %w", err)
	}

	if isGroupArray(raw) {
		groups := make([]ContentGroup, 0, len(raw))
		for _, r := range raw {
			var g ContentGroup
			if err := g.UnmarshalJSON(r); err != nil {
				return err
			}
			groups = append(groups, g)
		}
		*c = Grouped(groups...)
		return nil
	}

	*c = FlatLines(coerceJSONItems(raw)...)
	return nil
}

func isGroupArray(raw []json.RawMessage) bool {
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if bytes.Equal(r, []byte("null")) {
			continue
		}
		return len(r) > 0 && r[0] == '{'
	}
	return false
}

// UnmarshalJSON accepts any item type inside a group; see coerceJSONItem.
// A group that is not an object (a stray line inside a grouped list) becomes
// an untitled group holding that single line.
func (g *ContentGroup) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*g = ContentGroup{Items: []string{coerceJSONItem(data)}}
		return nil
	}

	var wire struct {
		Title json.RawMessage `json:"title"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode content group: %w", err)
	}
	title := ""
	if len(wire.Title) > 0 {
		title = coerceJSONItem(wire.Title)
	}
	*g = ContentGroup{Title: title, Items: coerceJSONGroupItems(wire.Items)}
	return nil
}

// coerceJSONGroupItems decodes a group's items field. A scalar or object in
// place of the array becomes a single item.
func coerceJSONGroupItems(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}
	}
	if raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			return coerceJSONItems(items)
		}
	}
	return []string{coerceJSONItem(raw)}
}

func coerceJSONItems(raw []json.RawMessage) []string {
	items := make([]string, 0, len(raw))
	for _, r := range raw {
		items = append(items, coerceJSONItem(r))
	}
	return items
}

// coerceJSONItem turns one persisted item into display text: strings as-is,
// null as empty, everything else as its compact JSON literal.
func coerceJSONItem(r json.RawMessage) string {
	r = bytes.TrimSpace(r)
	if len(r) == 0 || bytes.Equal(r, []byte("null")) {
		return ""
	}
	if r[0] == '"' {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r); err != nil {
		return string(r)
	}
	return buf.String()
}

func (c Content) MarshalYAML() (any, error) {
	if c.kind == KindGrouped {
		if c.groups == nil {
			return []ContentGroup{}, nil
		}
		return c.groups, nil
	}
	if c.lines == nil {
		return []string{}, nil
	}
	return c.lines, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for seed documents.
func (c *Content) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		*c = Content{}
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: content must be a sequence", node.Line)
	}

	grouped := false
	for _, n := range node.Content {
		if isYAMLNull(n) {
			continue
		}
		grouped = n.Kind == yaml.MappingNode
		break
	}

	if grouped {
		groups := make([]ContentGroup, 0, len(node.Content))
		for _, n := range node.Content {
			var g ContentGroup
			if err := g.UnmarshalYAML(n); err != nil {
				return err
			}
			groups = append(groups, g)
		}
		*c = Grouped(groups...)
		return nil
	}

	*c = FlatLines(coerceYAMLItems(node.Content)...)
	return nil
}

func (g *ContentGroup) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		*g = ContentGroup{Items: []string{coerceYAMLItem(node)}}
		return nil
	}

	var out ContentGroup
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "title":
			out.Title = coerceYAMLItem(val)
		case "items":
			if isYAMLNull(val) {
				continue
			}
			if val.Kind != yaml.SequenceNode {
				out.Items = []string{coerceYAMLItem(val)}
				continue
			}
			out.Items = coerceYAMLItems(val.Content)
		}
	}
	if out.Items == nil {
		out.Items = []string{}
	}
	*g = out
	return nil
}

func coerceYAMLItems(nodes []*yaml.Node) []string {
	items := make([]string, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, coerceYAMLItem(n))
	}
	return items
}

func coerceYAMLItem(n *yaml.Node) string {
	if isYAMLNull(n) {
		return ""
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func isYAMLNull(n *yaml.Node) bool {
	if n == nil {
		return true
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return isYAMLNull(n.Alias)
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
