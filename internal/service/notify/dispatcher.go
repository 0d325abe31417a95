package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Provider delivers a notification payload over one transport.
type Provider interface {
	Name() string
	Send(ctx context.Context, payload Payload) error
}

type Result struct {
	Provider string
	Err      error
}

// Dispatcher fans a payload out to every registered provider. Providers are
// registered once at startup; Send runs them concurrently and a failure in
// one never prevents the others from running.
type Dispatcher struct {
	providers []Provider
}

func NewDispatcher(providers ...Provider) *Dispatcher {
	enabled := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			enabled = append(enabled, p)
		}
	}
	return &Dispatcher{providers: enabled}
}

func (d *Dispatcher) Providers() []string {
	names := make([]string, len(d.providers))
	for i, p := range d.providers {
		names[i] = p.Name()
	}
	return names
}

// Send invokes every provider concurrently and waits for all of them,
// collecting one result per provider. Failures are logged and returned but
// never escalated; there is no retry.
func (d *Dispatcher) Send(ctx context.Context, payload Payload) []Result {
	providers := d.providers
	results := make([]Result, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result{Provider: p.Name(), Err: fmt.Errorf("provider panicked: %v", r)}
					log.Printf("notify: provider %s panicked on %s: %v", p.Name(), payload.Kind(), r)
				}
			}()
			err := p.Send(ctx, payload)
			results[i] = Result{Provider: p.Name(), Err: err}
			if err != nil {
				log.Printf("notify: provider %s failed to send %s to %s: %v",
					p.Name(), payload.Kind(), payload.Recipient(), err)
			}
		}(i, p)
	}
	wg.Wait()
	return results
}

// Dispatch is the fire-and-forget entry used by write paths: a detached
// goroutine with a fresh context, so the HTTP response never waits on
// notification transports.
func (d *Dispatcher) Dispatch(payload Payload) {
	go d.Send(context.Background(), payload)
}
