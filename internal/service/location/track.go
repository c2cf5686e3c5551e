package location

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"order-policy-service/internal/domain"
)

const defaultTrackInterval = 2 * time.Second

type trackPoint struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type trackFile struct {
	Loop   bool         `yaml:"loop"`
	Points []trackPoint `yaml:"points"`
}

// TrackSource replays a recorded list of positions at a fixed interval.
type TrackSource struct {
	points   []domain.Point
	loop     bool
	interval time.Duration
	now      func() time.Time

	mu  sync.Mutex
	idx int
}

// LoadTrack reads a YAML track file.
func LoadTrack(path string, interval time.Duration) (*TrackSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("read track: %w", err)
	}
	return ParseTrack(data, interval)
}

// ParseTrack decodes a YAML track:
//
//	loop: true
//	points:
//	  - {lat: 55.75, lon: 37.61}
func ParseTrack(data []byte, interval time.Duration) (*TrackSource, error) {
	var f trackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse track: %w", err)
	}
	if len(f.Points) == 0 {
		return nil, errors.New("parse track: no points")
	}

	points := make([]domain.Point, 0, len(f.Points))
	for i, tp := range f.Points {
		p := domain.Point{Lat: tp.Lat, Lon: tp.Lon}
		if !p.Valid() {
			return nil, fmt.Errorf("parse track: point %d out of range", i)
		}
		points = append(points, p)
	}
	return NewTrackSource(points, f.Loop, interval), nil
}

// NewTrackSource creates a source over points.
func NewTrackSource(points []domain.Point, loop bool, interval time.Duration) *TrackSource {
	if interval <= 0 {
		interval = defaultTrackInterval
	}
	return &TrackSource{
		points:   append([]domain.Point(nil), points...),
		loop:     loop,
		interval: interval,
		now:      time.Now,
	}
}

// Current returns the position the track is at.
func (s *TrackSource) Current(ctx context.Context) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Position{Point: s.points[s.idx], At: s.now()}, nil
}

// Watch emits the next track point on every tick until stopped or the track ends.
func (s *TrackSource) Watch(ctx context.Context, onPosition func(domain.Position), _ func(error)) (Subscription, error) {
	if onPosition == nil {
		return nil, errors.New("watch: nil callback")
	}
	ctx, cancel := context.WithCancel(ctx)
	sub := &trackSubscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p, ok := s.advance()
				if !ok {
					return
				}
				onPosition(p)
			}
		}
	}()
	return sub, nil
}

func (s *TrackSource) advance() (domain.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.idx + 1
	if next >= len(s.points) {
		if !s.loop {
			return domain.Position{}, false
		}
		next = 0
	}
	s.idx = next
	return domain.Position{Point: s.points[next], At: s.now()}, true
}

type trackSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the replay and waits for the ticker goroutine to exit.
func (t *trackSubscription) Stop() {
	t.once.Do(t.cancel)
	<-t.done
}
