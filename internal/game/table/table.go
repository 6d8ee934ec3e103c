package table

import (
	"fmt"
	"strings"
	"time"

	"CardGame/internal/game/player"
)

// Table 一局游戏的只读快照，推送给展示层
type Table struct {
	ID             string    `json:"id"`
	Policy         string    `json:"policy"`
	CardsPerPlayer int       `json:"cardsPerPlayer"`
	State          string    `json:"state"`
	DeckRemaining  int       `json:"deckRemaining"`
	Seats          []Seat    `json:"seats"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Seat is one player's view: name, policy and the shown hand.
type Seat struct {
	Index  int               `json:"index"`
	Name   string            `json:"name"`
	Policy string            `json:"policy"`
	Cards  []player.CardView `json:"cards"`
	Value  int               `json:"value"`
}

func NewSeat(i int, p *player.Player) Seat {
	return Seat{
		Index:  i,
		Name:   p.Name(),
		Policy: p.Policy().Name(),
		Cards:  p.ShowHand(),
		Value:  p.HandValue(),
	}
}

func (s Seat) String() string {
	parts := make([]string, 0, len(s.Cards))
	for _, c := range s.Cards {
		parts = append(parts, fmt.Sprintf("%s:%d", c.Category, c.Value))
	}
	return fmt.Sprintf("%s(%d) [%s]", s.Name, s.Value, strings.Join(parts, " "))
}
