package dealer

import (
	"strings"

	"CardGame/internal/game/card"
	"CardGame/internal/game/random"
)

// Receiver 接收发出的牌（通常是 *player.Player）
type Receiver interface {
	DealCard(c card.Card)
}

// Deck 随机生成的一副牌，从前往后发
type Deck struct {
	cards []card.Card
	size  int
	rnd   random.Source
}

// NewDeck 创建并立即洗牌。size 不做校验，<= 0 即空牌堆
func NewDeck(size int, rnd random.Source) *Deck {
	if rnd == nil {
		rnd = random.Default()
	}
	d := &Deck{
		cards: make([]card.Card, 0, max(size, 0)),
		size:  size,
		rnd:   rnd,
	}
	d.Shuffle()
	return d
}

// Shuffle 清空后重新生成 size 张全新的随机牌（不是对原牌重排）
func (d *Deck) Shuffle() {
	d.cards = d.cards[:0]
	for i := 0; i < d.size; i++ {
		d.cards = append(d.cards, card.NewRandom(d.rnd))
	}
}

// DealCards gives amount cards from the front to r, in order. When fewer than
// amount remain nothing is dealt. Returns the number of cards dealt.
func (d *Deck) DealCards(r Receiver, amount int) int {
	if amount > len(d.cards) || amount <= 0 {
		return 0
	}
	for i := 0; i < amount; i++ {
		r.DealCard(d.draw())
	}
	return amount
}

func (d *Deck) draw() card.Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

// Size is the target size fixed at construction.
func (d *Deck) Size() int { return d.size }

func (d *Deck) Remaining() int { return len(d.cards) }

// Cards returns a copy of the remaining cards, front first.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// 用于测试/日志
func (d *Deck) String() string {
	parts := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		parts = append(parts, c.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
