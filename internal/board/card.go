package board

// CardID identifies a rendered card within one Renderer.
type CardID int

// Card is the rendered unit for one program.
type Card struct {
	ID          CardID
	Key         string // lowercase program name at render time
	Icon        string
	Title       string
	Description string
	Visible     bool
}

// Container receives rendered cards and hands them back for filtering.
type Container interface {
	Append(card *Card)
	Cards() []*Card
}

// SearchBox is the text input the filter reads from.
type SearchBox interface {
	Value() string
}

// Navigator sends the user to a file path.
type Navigator interface {
	Navigate(path string) error
}

// Board is an in-memory Container. The zero value is ready to use.
type Board struct {
	cards []*Card
}

// Append adds a card after the existing ones.
func (b *Board) Append(card *Card) {
	b.cards = append(b.cards, card)
}

// Cards returns the cards in insertion order. The slice is shared; callers
// mutate visibility through it.
func (b *Board) Cards() []*Card {
	return b.cards
}

// Len reports the number of cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// Visible returns the visible cards of c in order.
func Visible(c Container) []*Card {
	var out []*Card
	for _, card := range c.Cards() {
		if card.Visible {
			out = append(out, card)
		}
	}
	return out
}
