package winner

import (
	"errors"
	"fmt"
	"strings"

	"CardGame/internal/game/player"
)

var (
	// ErrEmptyInput means the caller passed no players; this is a programming error.
	ErrEmptyInput    = errors.New("winner: no players to select from")
	ErrUnknownPolicy = errors.New("unknown winner policy")
)

// Policy 根据手牌总值选出赢家
type Policy interface {
	SelectWinner(players []*player.Player) (*player.Player, error)
	Name() string
}

// HighestWins 最大值获胜，平局取最先出现者
type HighestWins struct{}

func (HighestWins) SelectWinner(players []*player.Player) (*player.Player, error) {
	return pick(players, func(v, best int) bool { return v > best })
}

func (HighestWins) Name() string { return "highest" }

// LowestWins 最小值获胜，平局取最先出现者
type LowestWins struct{}

func (LowestWins) SelectWinner(players []*player.Player) (*player.Player, error) {
	return pick(players, func(v, best int) bool { return v < best })
}

func (LowestWins) Name() string { return "lowest" }

// pick replaces the holder only on a strict improvement, so earlier ties stay.
func pick(players []*player.Player, better func(v, best int) bool) (*player.Player, error) {
	if len(players) == 0 {
		return nil, ErrEmptyInput
	}
	best := players[0]
	bestVal := best.HandValue()
	for _, p := range players[1:] {
		if v := p.HandValue(); better(v, bestVal) {
			best, bestVal = p, v
		}
	}
	return best, nil
}

func ByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "highest", "high", "normal":
		return HighestWins{}, nil
	case "lowest", "low", "lowscore":
		return LowestWins{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
