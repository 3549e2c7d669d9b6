package engine

import (
	"fmt"
	"math/rand/v2"
)

// Card is a face-down policy card.
type Card string

const (
	CardLoyal       Card = "LOYAL"
	CardInfiltrated Card = "INFILTRATED"
)

// Fixed 17-card economy: 6 loyal, 11 infiltrated.
const (
	loyalCards       = 6
	infiltratedCards = 11
	totalCards       = loyalCards + infiltratedCards
)

// NewDeck returns the fixed policy composition, shuffled.
func NewDeck() []Card {
	cards := make([]Card, 0, totalCards)
	for i := 0; i < loyalCards; i++ {
		cards = append(cards, CardLoyal)
	}
	for i := 0; i < infiltratedCards; i++ {
		cards = append(cards, CardInfiltrated)
	}
	return Shuffle(cards)
}

// Shuffle returns a uniform random permutation of cards. The input is
// not mutated.
func Shuffle(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Draw pops n cards off the deck, reshuffling the discard pile into a
// fresh deck whenever the deck runs dry mid-draw. Neither input slice is
// mutated. The fixed card economy guarantees n never exceeds what is in
// circulation; a caller that manages it has corrupted the state, so the
// breach is fatal rather than recoverable.
func Draw(deck, discard []Card, n int) (drawn, newDeck, newDiscard []Card) {
	if n > len(deck)+len(discard) {
		panic(fmt.Sprintf("engine: draw %d from %d cards in circulation", n, len(deck)+len(discard)))
	}

	newDeck = make([]Card, len(deck))
	copy(newDeck, deck)
	newDiscard = make([]Card, len(discard))
	copy(newDiscard, discard)

	drawn = make([]Card, 0, n)
	for len(drawn) < n {
		if len(newDeck) == 0 {
			newDeck = Shuffle(newDiscard)
			newDiscard = nil
		}
		drawn = append(drawn, newDeck[0])
		newDeck = newDeck[1:]
	}
	return drawn, newDeck, newDiscard
}
