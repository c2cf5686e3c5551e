package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
)

// State is the reporting session state.
type State int

const (
	// Offline means no subscription is active.
	Offline State = iota
	// Online means positions are sampled and reported.
	Online
	// Failed means the position source could not be used.
	Failed
)

func (s State) String() string {
	switch s {
	case Offline:
		return "offline"
	case Online:
		return "online"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrPermissionDenied is returned when the position source is not accessible.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrClosed is returned by GoOnline after Close.
	ErrClosed = errors.New("location reporter closed")
)

const defaultReportTimeout = 10 * time.Second

// Config configures a Reporter.
type Config struct {
	CourierID     int64
	Gate          Gate
	ReportTimeout time.Duration
}

// Reporter samples positions while online and forwards them to a Sender.
type Reporter struct {
	source  Source
	sender  Sender
	logger  logx.Logger
	reports *prometheus.CounterVec
	cfg     Config
	now     func() time.Time
	newID   func() string

	// opMu serializes state transitions; mu guards the fields below.
	opMu sync.Mutex
	mu   sync.Mutex

	state   State
	err     error
	gen     uint64
	session string
	sub     Subscription
	cancel  context.CancelFunc
	last    *domain.Position
	closed  bool

	wg sync.WaitGroup
}

// NewReporter creates a Reporter in the Offline state. reports may be nil.
func NewReporter(source Source, sender Sender, logger logx.Logger, reports *prometheus.CounterVec, cfg Config) *Reporter {
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.ReportTimeout <= 0 {
		cfg.ReportTimeout = defaultReportTimeout
	}
	return &Reporter{
		source:  source,
		sender:  sender,
		logger:  logger,
		reports: reports,
		cfg:     cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// GoOnline reports the current position once and subscribes to updates.
// A source failure moves the session to Failed; there is no automatic retry.
func (r *Reporter) GoOnline(ctx context.Context) error {
	r.opMu.Lock()
	defer r.opMu.Unlock()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.state == Online {
		r.mu.Unlock()
		return nil
	}
	r.gen++
	gen := r.gen
	r.session = r.newID()
	r.err = nil
	r.last = nil
	session := r.session
	r.mu.Unlock()

	logger := r.logger.With(logx.String("session", session), logx.Int64("courier_id", r.cfg.CourierID))

	pos, err := r.source.Current(ctx)
	if err != nil {
		r.fail(gen, err)
		return fmt.Errorf("current position: %w", err)
	}

	sessCtx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	r.state = Online
	r.cancel = cancel
	r.mu.Unlock()

	r.accept(gen, pos, true)

	sub, err := r.source.Watch(sessCtx, func(p domain.Position) {
		r.accept(gen, p, false)
	}, func(err error) {
		r.watchFailed(gen, err)
	})
	if err != nil {
		cancel()
		r.fail(gen, err)
		return fmt.Errorf("watch position: %w", err)
	}

	r.mu.Lock()
	r.sub = sub
	r.mu.Unlock()

	logger.Info("location reporting started")
	return nil
}

// GoOffline stops the subscription. Callbacks arriving afterwards are dropped.
func (r *Reporter) GoOffline() {
	r.opMu.Lock()
	defer r.opMu.Unlock()
	r.stop(Offline, nil)
}

// Close stops reporting and waits for in-flight reports.
func (r *Reporter) Close() {
	r.opMu.Lock()
	r.stop(Offline, nil)
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.opMu.Unlock()

	r.wg.Wait()
}

// State returns the current session state.
func (r *Reporter) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the error that moved the session to Failed.
func (r *Reporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Session returns the id of the current or last online session.
func (r *Reporter) Session() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

func (r *Reporter) stop(to State, cause error) {
	r.mu.Lock()
	r.gen++
	sub, cancel := r.sub, r.cancel
	r.sub, r.cancel = nil, nil
	wasOnline := r.state == Online
	r.state = to
	r.err = cause
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if sub != nil {
		sub.Stop()
	}
	if wasOnline {
		r.logger.Info("location reporting stopped", logx.Int64("courier_id", r.cfg.CourierID))
	}
}

func (r *Reporter) fail(gen uint64, err error) {
	r.mu.Lock()
	if r.gen != gen {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.stop(Failed, err)
	r.logger.Error("location unavailable",
		logx.Int64("courier_id", r.cfg.CourierID),
		logx.Bool("permission_denied", errors.Is(err, ErrPermissionDenied)),
		logx.Err(err),
	)
}

// watchFailed runs on the source's goroutine, so the subscription is stopped elsewhere.
func (r *Reporter) watchFailed(gen uint64, err error) {
	r.mu.Lock()
	if r.gen != gen || r.closed {
		r.mu.Unlock()
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		r.opMu.Lock()
		defer r.opMu.Unlock()
		r.fail(gen, err)
	}()
}

func (r *Reporter) accept(gen uint64, p domain.Position, force bool) {
	p.At = r.now()

	r.mu.Lock()
	if r.gen != gen || r.state != Online {
		r.mu.Unlock()
		return
	}
	if !force && !r.cfg.Gate.Allow(r.last, p) {
		r.mu.Unlock()
		r.observe("skipped")
		return
	}
	last := p
	r.last = &last
	r.wg.Add(1)
	r.mu.Unlock()

	go r.report(p.Point)
}

func (r *Reporter) report(p domain.Point) {
	defer r.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.ReportTimeout)
	defer cancel()

	if err := r.sender.ReportLocation(ctx, r.cfg.CourierID, p); err != nil {
		r.observe("failed")
		r.logger.Warn("location report failed",
			logx.Int64("courier_id", r.cfg.CourierID),
			logx.Err(err),
		)
		return
	}
	r.observe("sent")
	r.logger.Debug("location reported",
		logx.Int64("courier_id", r.cfg.CourierID),
		logx.Float64("lat", p.Lat),
		logx.Float64("lon", p.Lon),
	)
}

func (r *Reporter) observe(result string) {
	if r.reports == nil {
		return
	}
	r.reports.WithLabelValues(result).Inc()
}
