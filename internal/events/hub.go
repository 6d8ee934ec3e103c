package events

import (
	"sync"
)

// Broadcaster is what the engine publishes to.
type Broadcaster interface {
	Publish(msg Message)
}

// Handler 处理一条事件，同步调用
type Handler func(Message)

type registration struct {
	name    string
	handler Handler
}

// Hub fans messages out to registered handlers in registration order.
// Delivery is synchronous: Publish returns after every handler ran.
type Hub struct {
	mu       sync.RWMutex
	handlers []registration
}

func NewHub() *Hub {
	return &Hub{}
}

// Register 同名注册会替换旧的 handler
func (h *Hub) Register(name string, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, r := range h.handlers {
		if r.name == name {
			h.handlers[i].handler = fn
			return
		}
	}
	h.handlers = append(h.handlers, registration{name: name, handler: fn})
}

func (h *Hub) Unregister(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, r := range h.handlers {
		if r.name == name {
			h.handlers = append(h.handlers[:i], h.handlers[i+1:]...)
			return
		}
	}
}

func (h *Hub) Publish(msg Message) {
	h.mu.RLock()
	regs := make([]registration, len(h.handlers))
	copy(regs, h.handlers)
	h.mu.RUnlock()

	for _, r := range regs {
		r.handler(msg)
	}
}

// Discard drops every message.
type Discard struct{}

func (Discard) Publish(Message) {}
