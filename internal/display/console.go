package display

import (
	"fmt"
	"io"

	"CardGame/internal/events"
	"CardGame/internal/game/engine"
	"CardGame/internal/game/table"
	"CardGame/internal/game/winner"

	"github.com/charmbracelet/lipgloss"
)

// Console prints game events as text. Colors are dropped when w is not a terminal.
type Console struct {
	w      io.Writer
	plain  lipgloss.Style
	title  lipgloss.Style
	name   lipgloss.Style
	suits  map[string]lipgloss.Style
	banner lipgloss.Style
}

func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:     w,
		plain: r.NewStyle(),
		title: r.NewStyle().Bold(true).Underline(true),
		name:  r.NewStyle().Bold(true),
		suits: map[string]lipgloss.Style{
			"Red":    r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
			"Blue":   r.NewStyle().Foreground(lipgloss.Color("#5F87FF")),
			"Green":  r.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
			"Yellow": r.NewStyle().Foreground(lipgloss.Color("#FFFF5F")),
			"Gold":   r.NewStyle().Foreground(lipgloss.Color("#D7AF00")).Bold(true),
		},
		banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#006400")),
	}
}

// Handle 作为 events.Handler 注册到 Hub
func (c *Console) Handle(msg events.Message) {
	switch msg.Event {
	case events.GameStarted:
		if t, ok := msg.Data.(table.Table); ok {
			c.printf("%s\n", c.title.Render(fmt.Sprintf("New game %s: %d players, %d cards each",
				t.ID, len(t.Seats), t.CardsPerPlayer)))
		}
	case events.DealHand:
		if s, ok := msg.Data.(table.Seat); ok {
			c.ShowHand(s)
		}
	case events.Winner:
		if ev, ok := msg.Data.(engine.WinnerEvent); ok {
			c.ShowWinner(ev)
		}
	}
}

func (c *Console) ShowHand(s table.Seat) {
	c.printf("Player %s has following cards in hand\n", c.name.Render(s.Name))
	for _, card := range s.Cards {
		style, ok := c.suits[card.Category]
		if !ok {
			style = c.plain
		}
		c.printf("%s : %d\n", style.Render(card.Category), card.Value)
	}
}

func (c *Console) ShowWinner(ev engine.WinnerEvent) {
	if ev.Policy == (winner.LowestWins{}).Name() {
		c.printf("%s ", c.banner.Render(fmt.Sprintf("The winner with a hand value of %d is:", ev.Seat.Value)))
	} else {
		c.printf("%s ", c.banner.Render("The winner is:"))
	}
	c.ShowHand(ev.Seat)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.w, format, args...)
}
