// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// PollStats summarizes poll-loop activity for the heartbeat job and the
// /status command.
type PollStats struct {
	Cycles      uint64
	Failures    uint64
	LastSuccess time.Time
}

// loopState is the mutable state owned exclusively by the poll loop: the
// rolling timestamp cursor and the id of the most recent homework seen.
type loopState struct {
	cursor            int64
	currentHomeworkID int64
}

// Poller orchestrates the fetch-parse-translate-notify cycle on a fixed
// interval. Execution is strictly sequential: one cycle runs to completion
// before the pause, then the next.
type Poller struct {
	provider homework.StatusProvider
	notifier *Notifier
	interval time.Duration
	log      *logrus.Logger

	mu    sync.Mutex
	stats PollStats
}

func NewPoller(provider homework.StatusProvider, notifier *Notifier, interval time.Duration, log *logrus.Logger) *Poller {
	return &Poller{
		provider: provider,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

// Run executes poll cycles until ctx is cancelled; main never cancels it.
// Per-cycle failures never stop the loop, and the fixed-interval pause runs
// after every cycle, success or failure alike.
func (p *Poller) Run(ctx context.Context) error {
	state := &loopState{cursor: time.Now().Unix()}
	for {
		p.runCycle(ctx, state)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) runCycle(ctx context.Context, state *loopState) {
	p.mu.Lock()
	p.stats.Cycles++
	p.mu.Unlock()

	body, err := p.provider.Fetch(ctx, state.cursor)
	if err != nil {
		p.reportFailure(err, state)
		return
	}
	state.cursor = body.CurrentDate(state.cursor)

	homeworks, err := homework.ExtractHomeworks(body)
	if err != nil {
		p.reportFailure(err, state)
		return
	}
	if len(homeworks) == 0 {
		p.log.Debug("Homework statuses have not changed.")
		p.recordSuccess()
		return
	}

	latest := homeworks[0] // the service returns most-recent-first
	state.currentHomeworkID = latest.ID
	message, err := homework.Describe(latest)
	if err != nil {
		p.reportFailure(err, state)
		return
	}
	p.notifier.Notify(message, state.currentHomeworkID)
	p.recordSuccess()
}

// reportFailure logs a cycle failure and forwards the same description to the
// recipient best-effort; the notifier dedupes it like any other message.
func (p *Poller) reportFailure(err error, state *loopState) {
	description := fmt.Sprintf("Program failure: %v", err)
	p.log.Error(description)
	p.notifier.Notify(description, state.currentHomeworkID)

	p.mu.Lock()
	p.stats.Failures++
	p.mu.Unlock()
}

func (p *Poller) recordSuccess() {
	p.mu.Lock()
	p.stats.LastSuccess = time.Now()
	p.mu.Unlock()
}

// Stats returns a snapshot of poll-loop activity.
func (p *Poller) Stats() PollStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
