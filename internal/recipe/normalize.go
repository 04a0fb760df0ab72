package recipe

// NormalizeGroups converts persisted content into the canonical group list
// used by every display path. Flat content, including an absent field, becomes
// exactly one untitled group; grouped content is returned as-is.
func NormalizeGroups(c Content) []ContentGroup {
	if c.kind == KindGrouped {
		return c.groups
	}
	items := c.lines
	if items == nil {
		items = []string{}
	}
	return []ContentGroup{{Items: items}}
}

// Flatten concatenates the items of every group in order.
func Flatten(groups []ContentGroup) []string {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	out := make([]string, 0, n)
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// StepNumber returns the 1-based position of groups[group].Items[item] across
// all groups in their current order.
func StepNumber(groups []ContentGroup, group, item int) int {
	group = max(0, min(group, len(groups)))
	n := item + 1
	for _, g := range groups[:group] {
		n += len(g.Items)
	}
	return n
}

// NumberedStep is a step line with its global position.
type NumberedStep struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// NumberedGroup is the display view of a step group.
type NumberedGroup struct {
	Title string         `json:"title,omitempty"`
	Steps []NumberedStep `json:"steps"`
}

// NumberSteps attaches global step numbers to every item. The numbers are
// derived from the order of groups as passed in and are never stored.
func NumberSteps(groups []ContentGroup) []NumberedGroup {
	out := make([]NumberedGroup, 0, len(groups))
	n := 0
	for _, g := range groups {
		steps := make([]NumberedStep, 0, len(g.Items))
		for _, item := range g.Items {
			n++
			steps = append(steps, NumberedStep{Number: n, Text: item})
		}
		out = append(out, NumberedGroup{Title: g.Title, Steps: steps})
	}
	return out
}
