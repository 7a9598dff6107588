package board

import "strings"

// Filter toggles card visibility from the current search box text.
type Filter struct {
	input     SearchBox
	container Container
}

// NewFilter binds a filter to its input and container.
func NewFilter(input SearchBox, container Container) *Filter {
	return &Filter{input: input, container: container}
}

// Apply shows every card whose key contains the lowercased search text and
// hides the rest. An empty search shows everything. It returns the number of
// visible cards.
func (f *Filter) Apply() int {
	needle := strings.ToLower(f.input.Value())
	shown := 0
	for _, card := range f.container.Cards() {
		card.Visible = strings.Contains(card.Key, needle)
		if card.Visible {
			shown++
		}
	}
	return shown
}
