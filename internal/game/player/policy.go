package player

import (
	"errors"
	"fmt"
	"strings"

	"CardGame/internal/game/card"
)

// HandCap is the bound enforced by Capped.
const HandCap = 3

var ErrUnknownPolicy = errors.New("unknown deal policy")

// DealPolicy 决定一张新牌如何进入手牌，从不拒牌
type DealPolicy interface {
	Incorporate(h *Hand, c card.Card)
	Name() string
}

// Unbounded 无上限，直接追加
type Unbounded struct{}

func (Unbounded) Incorporate(h *Hand, c card.Card) {
	*h = append(*h, c)
}

func (Unbounded) Name() string { return "unbounded" }

// Capped 追加后超过 HandCap 则丢弃最早的一张（FIFO）
type Capped struct{}

func (Capped) Incorporate(h *Hand, c card.Card) {
	*h = append(*h, c)
	if len(*h) <= HandCap {
		return
	}
	*h = (*h)[1:]
}

func (Capped) Name() string { return "capped" }

// PolicyByName maps config values to policies.
func PolicyByName(name string) (DealPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unbounded", "normal":
		return Unbounded{}, nil
	case "capped", "weak":
		return Capped{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
