package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"CardGame/internal/events"
	"CardGame/internal/game/engine"
	"CardGame/internal/game/player"
	"CardGame/internal/game/random"
	"CardGame/internal/game/winner"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// PlayerSpec 玩家配置
type PlayerSpec struct {
	Name   string
	Policy string
}

// GameSpec describes one game; players are rebuilt from it for every round.
type GameSpec struct {
	CardsPerPlayer int
	WinnerPolicy   string
	Players        []PlayerSpec
}

// Result of one finished game. Seat is the winner's registration index.
type Result struct {
	GameID string
	Seat   int
	Winner string
	Value  int
}

// seatKey 名字可以重复，按座位区分
type seatKey struct {
	seat int
	name string
}

// GameManager 管理所有对局，按顺序一局一局地跑
type GameManager struct {
	mu      sync.RWMutex
	engines map[string]*engine.Engine // gameID → engine
	wins    map[seatKey]int           // seat → wins
	hub     events.Broadcaster
	rnd     random.Source
	log     *log.Logger
}

func NewGameManager(hub events.Broadcaster, rnd random.Source, l *log.Logger) *GameManager {
	return &GameManager{
		engines: make(map[string]*engine.Engine),
		wins:    make(map[seatKey]int),
		hub:     hub,
		rnd:     rnd,
		log:     l,
	}
}

// StartGame 创建 engine、登记玩家并开局
func (m *GameManager) StartGame(id string, spec GameSpec) (*engine.Engine, error) {
	pol, err := winner.ByName(spec.WinnerPolicy)
	if err != nil {
		return nil, err
	}
	players := make([]*player.Player, 0, len(spec.Players))
	for _, ps := range spec.Players {
		dp, err := player.PolicyByName(ps.Policy)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", ps.Name, err)
		}
		players = append(players, player.New(ps.Name, dp))
	}
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.engines[id]; ok {
		return nil, fmt.Errorf("game %s exists", id)
	}

	opts := []engine.Option{engine.WithID(id), engine.WithHub(m.hub)}
	if m.rnd != nil {
		opts = append(opts, engine.WithSource(m.rnd))
	}
	if m.log != nil {
		opts = append(opts, engine.WithLogger(m.log))
	}
	eng, err := engine.NewEngine(spec.CardsPerPlayer, pol, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		eng.AddPlayer(p)
	}
	eng.StartNewGame()
	if !eng.Started() {
		return nil, fmt.Errorf("game %s: need at least %d players, got %d", id, engine.MinPlayers, len(players))
	}
	m.engines[id] = eng
	return eng, nil
}

// Finish announces the winner of a running game and records the win.
func (m *GameManager) Finish(id string) (Result, error) {
	m.mu.RLock()
	eng := m.engines[id]
	m.mu.RUnlock()

	if eng == nil {
		return Result{}, fmt.Errorf("game %s not found", id)
	}
	w, err := eng.AnnounceWinner()
	if err != nil {
		return Result{}, err
	}
	if w == nil {
		return Result{}, fmt.Errorf("game %s is not running", id)
	}

	seat := -1
	for i, p := range eng.Players() {
		if p == w {
			seat = i
			break
		}
	}

	m.mu.Lock()
	m.wins[seatKey{seat: seat, name: w.Name()}]++
	m.mu.Unlock()

	if m.log != nil {
		m.log.Info("game finished", "game", id, "winner", w.Name(), "seat", seat, "value", w.HandValue())
	}
	return Result{GameID: id, Seat: seat, Winner: w.Name(), Value: w.HandValue()}, nil
}

// Remove drops a game from the registry.
func (m *GameManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, id)
}

// Len returns the number of games currently held.
func (m *GameManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.engines)
}

// Play runs rounds games back to back; ctx is checked between rounds.
// Finished games are removed from the registry.
func (m *GameManager) Play(ctx context.Context, spec GameSpec, rounds int) ([]Result, error) {
	results := make([]Result, 0, rounds)
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		eng, err := m.StartGame("", spec)
		if err != nil {
			return results, fmt.Errorf("round %d: %w", i+1, err)
		}
		res, err := m.Finish(eng.ID())
		m.Remove(eng.ID())
		if err != nil {
			return results, fmt.Errorf("round %d: %w", i+1, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (m *GameManager) Get(id string) (*engine.Engine, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	eng, ok := m.engines[id]
	return eng, ok
}

// Standing is one line of the win table.
type Standing struct {
	Seat int
	Name string
	Wins int
}

// Standings 按胜场降序，同分按座位
func (m *GameManager) Standings() []Standing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Standing, 0, len(m.wins))
	for k, w := range m.wins {
		out = append(out, Standing{Seat: k.seat, Name: k.name, Wins: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].Seat != out[j].Seat {
			return out[i].Seat < out[j].Seat
		}
		return out[i].Name < out[j].Name
	})
	return out
}
