package display

import (
	"bytes"
	"testing"

	"CardGame/internal/events"
	"CardGame/internal/game/card"
	"CardGame/internal/game/engine"
	"CardGame/internal/game/player"
	"CardGame/internal/game/random"
	"CardGame/internal/game/table"
	"CardGame/internal/game/winner"
	"CardGame/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seat() table.Seat {
	p := player.NewNormal("Jens")
	p.DealCard(card.New(card.Red, 2))
	p.DealCard(card.New(card.Gold, 3))
	return table.NewSeat(0, p)
}

func TestShowHand(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Handle(events.Message{Event: events.DealHand, Data: seat()})

	want := "Player Jens has following cards in hand\nRed : 2\nGold : 15\n"
	assert.Equal(t, want, buf.String())
}

func TestShowWinnerHighest(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Handle(events.Message{Event: events.Winner, Data: engine.WinnerEvent{Policy: winner.HighestWins{}.Name(), Seat: seat()}})

	assert.Contains(t, buf.String(), "The winner is: Player Jens has following cards in hand")
}

func TestShowWinnerLowest(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Handle(events.Message{Event: events.Winner, Data: engine.WinnerEvent{Policy: winner.LowestWins{}.Name(), Seat: seat()}})

	assert.Contains(t, buf.String(), "The winner with a hand value of 17 is: Player Jens")
}

// 未知花色用无样式输出
func TestShowHandUnknownCategory(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.ShowHand(table.Seat{Name: "X", Cards: []player.CardView{{Category: "Purple", Value: 3}}})
	assert.Equal(t, "Player X has following cards in hand\nPurple : 3\n", buf.String())
}

func TestUnknownEventIgnored(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Handle(events.Message{Event: "chat", Data: "hi"})
	c.Handle(events.Message{Event: events.DealHand, Data: "not a seat"})
	assert.Empty(t, buf.String())
}

// ✅ 挂到 Hub 上跑完整一局
func TestConsoleOnHub(t *testing.T) {
	var buf bytes.Buffer
	hub := events.NewHub()
	hub.Register("console", NewConsole(&buf).Handle)

	e, err := engine.NewEngine(3, winner.LowestWins{},
		engine.WithHub(hub),
		engine.WithSource(random.New(1)),
		engine.WithLogger(utils.Discard()),
		engine.WithID("g1"),
	)
	require.NoError(t, err)
	e.AddPlayer(player.NewNormal("Jens"))
	e.AddPlayer(player.NewWeak("Karl"))
	e.StartNewGame()
	_, err = e.AnnounceWinner()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "New game g1: 2 players, 3 cards each")
	assert.Contains(t, out, "Player Jens has following cards in hand")
	assert.Contains(t, out, "Player Karl has following cards in hand")
	assert.Contains(t, out, "The winner with a hand value of")
}
