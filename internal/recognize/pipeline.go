package recognize

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Result is delivered to the single consumer of a Pipeline.
type Result struct {
	Text string
	Err  error
}

// Options configures a Pipeline. The zero value is usable.
type Options struct {
	// Workers is the number of concurrent recognitions (default 1).
	Workers int

	// Rate limits capture submissions (default 2/s). Submissions beyond
	// the limit are dropped, not queued: a stale capture is worthless.
	Rate rate.Limit

	// Burst is the submission burst size (default 1).
	Burst int

	// Queue is the number of pending captures (default 4).
	Queue int
}

func (o *Options) applyDefaults() {
	if o.Workers <= 0 {
		o.Workers = 1
	}

	if o.Rate == 0 {
		o.Rate = rate.Limit(2)
	}

	if o.Burst <= 0 {
		o.Burst = 1
	}

	if o.Queue <= 0 {
		o.Queue = 4
	}
}

// Pipeline runs recognition on background workers and hands results to a
// single consumer. Submit is safe for concurrent use; Results must be
// drained by exactly one goroutine.
type Pipeline struct {
	rec     Recognizer
	limiter *rate.Limiter
	logger  *slog.Logger
	workers int

	jobs    chan image.Image
	results chan Result

	mu     sync.Mutex
	closed bool
}

// NewPipeline creates a Pipeline over the given recognizer. A nil logger
// discards log output.
func NewPipeline(rec Recognizer, logger *slog.Logger, opts Options) *Pipeline {
	opts.applyDefaults()

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Pipeline{
		rec:     rec,
		limiter: rate.NewLimiter(opts.Rate, opts.Burst),
		logger:  logger,
		workers: opts.Workers,
		jobs:    make(chan image.Image, opts.Queue),
		results: make(chan Result, opts.Queue),
	}
}

// Run processes submitted captures until the context is canceled or Close
// is called and the queue drains. The results channel is closed on return.
func (p *Pipeline) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for range p.workers {
		g.Go(func() error {
			return p.worker(ctx)
		})
	}

	err := g.Wait()
	close(p.results)

	return err
}

// Submit enqueues a capture for recognition. It reports false when the
// submission was dropped, either rate-limited or because the queue is full.
func (p *Pipeline) Submit(img image.Image) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	if !p.limiter.Allow() {
		p.logger.Debug("capture dropped, rate limited")

		return false
	}

	select {
	case p.jobs <- img:
		return true
	default:
		p.logger.Debug("capture dropped, queue full")

		return false
	}
}

// Results returns the channel the consumer drains. It is closed when Run
// returns.
func (p *Pipeline) Results() <-chan Result {
	return p.results
}

// Close stops accepting captures. Pending captures are still processed.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	close(p.jobs)
}

func (p *Pipeline) worker(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case img, ok := <-p.jobs:
			if !ok {
				return nil
			}

			p.process(ctx, img)
		}
	}
}

func (p *Pipeline) process(ctx context.Context, img image.Image) {
	lines, err := p.rec.Recognize(ctx, img)
	if err != nil {
		p.logger.Warn("recognition failed", "error", err)
		p.deliver(ctx, Result{Err: err})

		return
	}

	text := JoinLines(lines)
	if text == "" {
		p.logger.Warn("recognition produced no text")
	}

	p.deliver(ctx, Result{Text: text})
}

func (p *Pipeline) deliver(ctx context.Context, res Result) {
	select {
	case p.results <- res:
	case <-ctx.Done():
	}
}
