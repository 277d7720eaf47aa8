package generate

import "strings"

// TopicFilter rejects topics containing a banned word. Matching is raw
// case-insensitive substring containment, so a banned word inside a longer
// unrelated word also blocks the topic.
// TODO: product review — switch to word-boundary matching once the banned
// list is owned by trust & safety.
type TopicFilter struct {
	banned []string
}

func NewTopicFilter(banned []string) *TopicFilter {
	lowered := make([]string, 0, len(banned))
	for _, w := range banned {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return &TopicFilter{banned: lowered}
}

// Blocked reports whether the topic contains any banned word.
func (f *TopicFilter) Blocked(topic string) bool {
	lowered := strings.ToLower(topic)
	for _, w := range f.banned {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
