package hydraulics

import (
	"fmt"

	"github.com/pjazdzyk/sound-dampening-analyzer/geometry"
)

// Simple is a single-section state: one cross section and one flow.
type Simple struct {
	limits   geometry.Limits
	upstream Section
	flow     float64
	velocity float64
}

// NewSimple validates the upstream section and flow.
func NewSimple(flow float64, upstream Dims, opts ...Option) (*Simple, error) {
	s, err := newSimple(flow, upstream, applyOptions(opts))
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func newSimple(flow float64, upstream Dims, cfg config) (Simple, error) {
	s := Simple{limits: cfg.limits}

	sec, err := NewSection(cfg.limits, upstream)
	if err != nil {
		return Simple{}, err
	}

	err = checkFlow(flow)
	if err != nil {
		return Simple{}, err
	}

	velocity, err := sec.Velocity(flow)
	if err != nil {
		return Simple{}, err
	}

	s.upstream, s.flow, s.velocity = sec, flow, velocity

	return s, nil
}

// Kind returns [KindSimple].
func (s *Simple) Kind() Kind { return KindSimple }

// Limits returns the dimension limits the state validates against.
func (s *Simple) Limits() geometry.Limits { return s.limits }

// Upstream returns the upstream section.
func (s *Simple) Upstream() Section { return s.upstream }

// UpstreamFlow returns the upstream volume flow in m³/s.
func (s *Simple) UpstreamFlow() float64 { return s.flow }

// UpstreamVelocity returns the upstream mean velocity in m/s.
func (s *Simple) UpstreamVelocity() float64 { return s.velocity }

// SetUpstreamGeometry replaces the upstream section and re-derives the velocity.
func (s *Simple) SetUpstreamGeometry(d Dims) error {
	sec, err := NewSection(s.limits, d)
	if err != nil {
		return err
	}

	velocity, err := sec.Velocity(s.flow)
	if err != nil {
		return err
	}

	s.upstream, s.velocity = sec, velocity

	return nil
}

// SetUpstreamFlow replaces the upstream flow and re-derives the velocity.
func (s *Simple) SetUpstreamFlow(flow float64) error {
	err := checkFlow(flow)
	if err != nil {
		return err
	}

	velocity, err := s.upstream.Velocity(flow)
	if err != nil {
		return err
	}

	s.flow, s.velocity = flow, velocity

	return nil
}

func (s *Simple) upstreamString() string {
	return fmt.Sprintf("upstream: %s flow=%.3f m³/s v=%.2f m/s", s.upstream, s.flow, s.velocity)
}

// String formats the state on one line.
func (s *Simple) String() string {
	return "simple " + s.upstreamString()
}
