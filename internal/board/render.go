package board

import "github.com/five82/depot/internal/catalog"

// Renderer turns programs into cards inside a container and remembers which
// program each card came from.
type Renderer struct {
	container Container
	programs  map[CardID]catalog.Program
	next      CardID
}

// NewRenderer returns a Renderer that appends into container.
func NewRenderer(container Container) *Renderer {
	return &Renderer{
		container: container,
		programs:  make(map[CardID]catalog.Program),
	}
}

// Render appends one visible card per program, in order, and returns the new
// cards. Calling it again appends another copy of every card.
func (r *Renderer) Render(programs []catalog.Program) []*Card {
	cards := make([]*Card, 0, len(programs))
	for _, p := range programs {
		card := &Card{
			ID:          r.next,
			Key:         p.MatchKey(),
			Icon:        p.Icon,
			Title:       p.Name,
			Description: p.Description,
			Visible:     true,
		}
		r.next++
		r.programs[card.ID] = p
		r.container.Append(card)
		cards = append(cards, card)
	}
	return cards
}

// Program returns the descriptor a card was rendered from.
func (r *Renderer) Program(id CardID) (catalog.Program, bool) {
	p, ok := r.programs[id]
	return p, ok
}
