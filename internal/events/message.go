package events

// 引擎推送的事件名
const (
	GameStarted = "game_started"
	DealHand    = "deal_hand"
	Winner      = "winner"
)

type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
