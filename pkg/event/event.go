// Package event is an in-process dispatcher. Listeners run on their
// own goroutine so emitters never block on slow subscribers.
package event

import (
	"context"
	"sync"

	"github.com/chitralaya/chitralaya/pkg/logger"
)

type Listener func(ctx context.Context, payload any)

var (
	mu        sync.RWMutex
	listeners = make(map[string][]Listener)
)

// On subscribes a listener to an event name.
func On(name string, l Listener) {
	mu.Lock()
	defer mu.Unlock()
	listeners[name] = append(listeners[name], l)
}

// Emit fans the payload out to every listener of name.
func Emit(ctx context.Context, name string, payload any) {
	mu.RLock()
	subs := append([]Listener(nil), listeners[name]...)
	mu.RUnlock()

	for _, l := range subs {
		go func(l Listener) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("event: listener panicked", "event", name, "panic", rec)
				}
			}()
			l(ctx, payload)
		}(l)
	}
}

// Reset drops every subscription, used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	listeners = make(map[string][]Listener)
}
