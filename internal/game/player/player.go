package player

import (
	"CardGame/internal/game/card"
)

// Hand 玩家当前手牌，按发牌顺序
type Hand []card.Card

func (h Hand) Value() int {
	total := 0
	for _, c := range h {
		total += c.Value()
	}
	return total
}

// CardView is the (category, value) pair handed to displays.
type CardView struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
}

// Player owns a hand; the deal policy is fixed at construction.
type Player struct {
	name   string
	hand   Hand
	policy DealPolicy
}

func New(name string, policy DealPolicy) *Player {
	if policy == nil {
		policy = Unbounded{}
	}
	return &Player{name: name, policy: policy}
}

// NewNormal 普通玩家，手牌无上限
func NewNormal(name string) *Player {
	return New(name, Unbounded{})
}

// NewWeak 弱玩家，最多持有 HandCap 张
func NewWeak(name string) *Player {
	return New(name, Capped{})
}

func (p *Player) Name() string { return p.name }

func (p *Player) SetName(name string) { p.name = name }

func (p *Player) Policy() DealPolicy { return p.policy }

// DealCard 交给策略处理，可能触发淘汰
func (p *Player) DealCard(c card.Card) {
	p.policy.Incorporate(&p.hand, c)
}

func (p *Player) HandValue() int {
	return p.hand.Value()
}

// Hand returns a copy of the current hand.
func (p *Player) Hand() Hand {
	out := make(Hand, len(p.hand))
	copy(out, p.hand)
	return out
}

func (p *Player) ShowHand() []CardView {
	out := make([]CardView, 0, len(p.hand))
	for _, c := range p.hand {
		out = append(out, CardView{Category: c.Category.String(), Value: c.Value()})
	}
	return out
}
