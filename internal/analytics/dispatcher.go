// Package analytics delivers diagnostic events to the helper service in the
// background. Delivery is best-effort: a full queue drops the event, a
// recoverable send failure is retried with exponential backoff, and Stop
// drains whatever is still queued.
package analytics

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/privsafe/agegate-go/internal/api"
	sdkerrors "github.com/privsafe/agegate-go/internal/errors"
	"github.com/privsafe/agegate-go/internal/types"
)

// Dispatcher owns the event queue and its worker goroutine.
type Dispatcher struct {
	cfg       Config
	http      *http.Client
	helperURL string
	log       zerolog.Logger

	queue chan types.AnalyticEvent

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 → running, 1 → closed

	wg sync.WaitGroup
}

// NewDispatcher constructs the dispatcher and starts its worker.
func NewDispatcher(cfg Config, httpClient *http.Client, helperURL string, log zerolog.Logger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 4
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 5 * time.Second
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}

	d := &Dispatcher{
		cfg:       cfg,
		http:      httpClient,
		helperURL: helperURL,
		log:       log,
		queue:     make(chan types.AnalyticEvent, cfg.QueueSize),
		done:      make(chan struct{}),
	}
	d.wg.Add(1)
	go d.runWorker()
	return d
}

// Submit enqueues an event without blocking. Events offered after Stop, or
// when the queue is full, are counted and dropped — analytics never applies
// back-pressure to gate evaluations.
func (d *Dispatcher) Submit(event types.AnalyticEvent) {
	if atomic.LoadUint32(&d.closed) == 1 {
		eventsDroppedTotal.Inc()
		return
	}
	select {
	case d.queue <- event:
		eventsSubmittedTotal.Inc()
	default:
		eventsDroppedTotal.Inc()
	}
}

// Stop signals the worker to drain the queue, waits for it to terminate, and
// returns. Idempotent and safe for concurrent use.
func (d *Dispatcher) Stop() {
	if !atomic.CompareAndSwapUint32(&d.closed, 0, 1) {
		return // already closed
	}
	close(d.done)
	d.wg.Wait()
}

// ------------------------- internals -------------------------

func (d *Dispatcher) runWorker() {
	defer d.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("analytics worker panic")
		}
	}()

	for {
		select {
		case event := <-d.queue:
			d.send(event)
			queueDepth.Set(float64(len(d.queue)))

		case <-d.done:
			// Drain remaining events, preserving FIFO, then exit.
			for {
				select {
				case event := <-d.queue:
					d.send(event)
				default:
					queueDepth.Set(0)
					return
				}
			}
		}
	}
}

// send delivers one event, retrying recoverable failures until MaxAttempts.
func (d *Dispatcher) send(event types.AnalyticEvent) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = d.cfg.MaxInterval
	exp.Reset()

	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
		err := api.SendAnalyticEvent(ctx, d.http, d.helperURL, event)
		cancel()

		if err == nil {
			eventsSentTotal.Inc()
			return
		}
		if sdkerrors.IsIrrecoverable(err) || attempt >= d.cfg.MaxAttempts-1 {
			eventsFailedTotal.Inc()
			d.log.Debug().Err(err).Msg("analytic event delivery failed")
			return
		}
		select {
		case <-time.After(exp.NextBackOff()):
		case <-d.done:
			// Shutting down; one final immediate attempt happens via drain
			// for queued events, this one is abandoned.
			eventsFailedTotal.Inc()
			return
		}
	}
}
