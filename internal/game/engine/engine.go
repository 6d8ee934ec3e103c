package engine

import (
	"errors"
	"fmt"
	"time"

	"CardGame/internal/events"
	"CardGame/internal/game/dealer"
	"CardGame/internal/game/player"
	"CardGame/internal/game/random"
	"CardGame/internal/game/table"
	"CardGame/internal/game/winner"
	"CardGame/internal/utils"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// MinPlayers needed before a game can start.
const MinPlayers = 2

var ErrInvalidConfiguration = errors.New("invalid configuration")

// ---------------------
//        STATE
// ---------------------

type State int

const (
	NotStarted State = iota
	Started
	Concluded
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Started:
		return "started"
	case Concluded:
		return "concluded"
	}
	return "unknown"
}

// Settings 开局时冻结
type Settings struct {
	CardsPerPlayer int
}

func (s Settings) Validate() error {
	if s.CardsPerPlayer <= 0 {
		return fmt.Errorf("%w: cards per player must be positive, got %d", ErrInvalidConfiguration, s.CardsPerPlayer)
	}
	return nil
}

// ---------------------
//       ENGINE
// ---------------------

// Engine runs a single game: register, start (deal), announce, in that order.
type Engine struct {
	id        string
	players   []*player.Player
	deck      *dealer.Deck
	settings  Settings
	frozen    Settings
	state     State
	policy    winner.Policy
	rnd       random.Source
	hub       events.Broadcaster
	log       *log.Logger
	createdAt time.Time
}

type Option func(*Engine)

func WithSource(src random.Source) Option {
	return func(e *Engine) { e.rnd = src }
}

func WithHub(hub events.Broadcaster) Option {
	return func(e *Engine) { e.hub = hub }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithID(id string) Option {
	return func(e *Engine) { e.id = id }
}

func NewEngine(cardsPerPlayer int, policy winner.Policy, opts ...Option) (*Engine, error) {
	s := Settings{CardsPerPlayer: cardsPerPlayer}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, fmt.Errorf("%w: winner policy is required", ErrInvalidConfiguration)
	}
	e := &Engine{
		id:        uuid.NewString(),
		settings:  s,
		policy:    policy,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = random.Default()
	}
	if e.hub == nil {
		e.hub = events.Discard{}
	}
	if e.log == nil {
		e.log = utils.Logger()
	}
	e.log = e.log.With("game", e.id)
	return e, nil
}

// AddPlayer 任何状态都允许加入，开局后加入不影响已发的牌
func (e *Engine) AddPlayer(p *player.Player) {
	e.players = append(e.players, p)
	e.log.Debug("player added", "name", p.Name(), "policy", p.Policy().Name(), "state", e.state)
}

// SetCardsPerPlayer takes effect at the next StartNewGame.
func (e *Engine) SetCardsPerPlayer(n int) error {
	s := Settings{CardsPerPlayer: n}
	if err := s.Validate(); err != nil {
		return err
	}
	e.settings = s
	return nil
}

// SetPolicy swaps the winner policy; ignored once the game has concluded.
func (e *Engine) SetPolicy(p winner.Policy) {
	if p == nil || e.state == Concluded {
		return
	}
	e.policy = p
}

// StartNewGame 仅在未开局且至少两名玩家时生效，否则静默返回
func (e *Engine) StartNewGame() {
	if e.state != NotStarted || len(e.players) < MinPlayers {
		e.log.Debug("start ignored", "state", e.state, "players", len(e.players))
		return
	}

	e.frozen = e.settings
	n := e.frozen.CardsPerPlayer
	e.deck = dealer.NewDeck(n*len(e.players), e.rnd)

	// 共用一副牌，按注册顺序依次发 n 张
	for _, p := range e.players {
		e.deck.DealCards(p, n)
	}
	e.state = Started

	e.log.Debug("game started", "players", len(e.players), "cardsPerPlayer", n, "left", e.deck.Remaining())

	e.hub.Publish(events.Message{Event: events.GameStarted, Data: e.Table()})
	for i, p := range e.players {
		e.hub.Publish(events.Message{Event: events.DealHand, Data: table.NewSeat(i, p)})
	}
}

// AnnounceWinner returns (nil, nil) unless the game is running. On success the
// game concludes; a policy error leaves it running.
func (e *Engine) AnnounceWinner() (*player.Player, error) {
	if e.state != Started {
		return nil, nil
	}
	w, err := e.policy.SelectWinner(e.players)
	if err != nil {
		return nil, fmt.Errorf("select winner: %w", err)
	}
	e.state = Concluded
	e.deck = nil

	idx := e.indexOf(w)
	e.log.Debug("winner", "name", w.Name(), "value", w.HandValue(), "policy", e.policy.Name())
	e.hub.Publish(events.Message{Event: events.Winner, Data: WinnerEvent{
		Policy: e.policy.Name(),
		Seat:   table.NewSeat(idx, w),
	}})
	return w, nil
}

// WinnerEvent is the payload of events.Winner.
type WinnerEvent struct {
	Policy string     `json:"policy"`
	Seat   table.Seat `json:"seat"`
}

func (e *Engine) indexOf(p *player.Player) int {
	for i, x := range e.players {
		if x == p {
			return i
		}
	}
	return -1
}

func (e *Engine) ID() string { return e.id }

func (e *Engine) State() State { return e.state }

func (e *Engine) Started() bool { return e.state == Started }

func (e *Engine) Policy() winner.Policy { return e.policy }

// CardsPerPlayer is the configured value; the running game uses the one frozen at start.
func (e *Engine) CardsPerPlayer() int { return e.settings.CardsPerPlayer }

// Deck is nil unless the game is running.
func (e *Engine) Deck() *dealer.Deck { return e.deck }

func (e *Engine) Players() []*player.Player {
	out := make([]*player.Player, len(e.players))
	copy(out, e.players)
	return out
}

// Table 当前局面快照
func (e *Engine) Table() table.Table {
	t := table.Table{
		ID:             e.id,
		Policy:         e.policy.Name(),
		CardsPerPlayer: e.settings.CardsPerPlayer,
		State:          e.state.String(),
		Seats:          make([]table.Seat, 0, len(e.players)),
		CreatedAt:      e.createdAt,
	}
	if e.state != NotStarted {
		t.CardsPerPlayer = e.frozen.CardsPerPlayer
	}
	if e.deck != nil {
		t.DeckRemaining = e.deck.Remaining()
	}
	for i, p := range e.players {
		t.Seats = append(t.Seats, table.NewSeat(i, p))
	}
	return t
}
