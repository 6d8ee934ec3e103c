package card

import (
	"fmt"

	"CardGame/internal/game/random"
)

// Category 花色，顺序决定倍率
type Category int

const (
	Red Category = iota
	Blue
	Green
	Yellow
	Gold
)

// NumCategories is the size of the closed category set.
const NumCategories = 5

// 点数区间 [MinFace, MaxFace]
const (
	MinFace = 1
	MaxFace = 8
)

var names = [NumCategories]string{"Red", "Blue", "Green", "Yellow", "Gold"}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return "?"
	}
	return names[c]
}

// Multiplier returns 1 for Red up to 5 for Gold.
func (c Category) Multiplier() int {
	return int(c) + 1
}

// Card is immutable once created; Value is always derived.
type Card struct {
	Category Category `json:"category"`
	Face     int      `json:"face"`
}

func New(c Category, face int) Card {
	return Card{Category: c, Face: face}
}

// NewRandom 从 src 取两次：先花色，后点数
func NewRandom(src random.Source) Card {
	c := Category(src.Next(0, NumCategories))
	face := src.Next(MinFace, MaxFace+1)
	return New(c, face)
}

func (c Card) Multiplier() int {
	return c.Category.Multiplier()
}

func (c Card) Value() int {
	return c.Multiplier() * c.Face
}

func (c Card) String() string {
	return fmt.Sprintf("%s : %d", c.Category, c.Value())
}
