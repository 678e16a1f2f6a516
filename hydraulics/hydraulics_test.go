package hydraulics

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pjazdzyk/sound-dampening-analyzer/catalog"
	"github.com/pjazdzyk/sound-dampening-analyzer/geometry"
)

const eps = 1e-12

var (
	_ State = (*Simple)(nil)
	_ State = (*Duct)(nil)
	_ State = (*Fan)(nil)
	_ State = (*Damper)(nil)
	_ State = (*Terminal)(nil)
	_ State = (*Bend)(nil)
	_ State = (*Branch)(nil)
)

func TestSimple(t *testing.T) {
	s, err := NewSimple(0.1, Rect(0.5, 0.2))
	if err != nil {
		t.Fatalf("NewSimple() error = %v", err)
	}

	if got := s.Upstream().Area; math.Abs(got-0.1) > eps {
		t.Fatalf("area = %v, want 0.1", got)
	}

	if got := s.UpstreamVelocity(); math.Abs(got-1) > eps {
		t.Fatalf("velocity = %v, want 1", got)
	}

	if err := s.SetUpstreamFlow(0.3); err != nil {
		t.Fatalf("SetUpstreamFlow() error = %v", err)
	}

	if got := s.UpstreamVelocity(); math.Abs(got-3) > eps {
		t.Fatalf("velocity after flow change = %v, want 3", got)
	}

	if err := s.SetUpstreamGeometry(Round(0.4)); err != nil {
		t.Fatalf("SetUpstreamGeometry() error = %v", err)
	}

	want := 0.3 / (math.Pi * 0.04)
	if got := s.UpstreamVelocity(); math.Abs(got-want) > eps {
		t.Fatalf("velocity after geometry change = %v, want %v", got, want)
	}

	if !s.Upstream().IsCircular() || s.Upstream().EquivalentDiameter != 0.4 {
		t.Fatalf("Upstream() = %+v, want circular 0.4 m", s.Upstream())
	}
}

func TestSimpleRejectsAndKeepsState(t *testing.T) {
	s, _ := NewSimple(DefaultFlow, DefaultDims)
	before := *s

	if err := s.SetUpstreamGeometry(Rect(0, 0.5)); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("zero dim1: error = %v, want ErrInvalidGeometry", err)
	}

	if err := s.SetUpstreamGeometry(Rect(0.5, -1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("negative dim2: error = %v, want ErrInvalidGeometry", err)
	}

	if err := s.SetUpstreamGeometry(Rect(25, 0.5)); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("oversized dim1: error = %v, want ErrInvalidGeometry", err)
	}

	if err := s.SetUpstreamFlow(-0.1); !errors.Is(err, ErrInvalidFlow) {
		t.Fatalf("negative flow: error = %v, want ErrInvalidFlow", err)
	}

	if *s != before {
		t.Fatal("state changed after rejected updates")
	}
}

func TestWithLimits(t *testing.T) {
	if _, err := NewSimple(0.1, Rect(3, 1), WithLimits(geometry.Limits{MaxDimension: 2})); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("error = %v, want ErrInvalidGeometry", err)
	}

	s, err := NewSimple(0.1, Rect(25, 1), WithLimits(geometry.Limits{MaxDimension: 30}))
	if err != nil {
		t.Fatalf("NewSimple() error = %v", err)
	}

	if err := s.SetUpstreamGeometry(Rect(28, 1)); err != nil {
		t.Fatalf("SetUpstreamGeometry() error = %v", err)
	}
}

func TestDuct(t *testing.T) {
	d, err := NewDuct(DefaultFlow, DefaultLength, DefaultDims)
	if err != nil {
		t.Fatalf("NewDuct() error = %v", err)
	}

	if d.Kind() != KindDuct || d.Length() != DefaultLength {
		t.Fatalf("duct = %v", d)
	}

	for _, l := range []float64{0, -1, math.NaN()} {
		if err := d.SetLength(l); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("SetLength(%v) error = %v, want ErrInvalidParameter", l, err)
		}
	}

	if d.Length() != DefaultLength {
		t.Fatal("length changed after rejected update")
	}

	if _, err := NewDuct(0.1, 0, DefaultDims); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NewDuct(length 0) error = %v", err)
	}
}

func TestFan(t *testing.T) {
	model, err := catalog.Fans().Lookup(catalog.DefaultFan)
	if err != nil {
		t.Fatalf("fan catalog: %v", err)
	}

	f, err := NewFan(DefaultFlow, DefaultFanPressure, DefaultFanRPM, model, DefaultDims)
	if err != nil {
		t.Fatalf("NewFan() error = %v", err)
	}

	if f.Model().Key != catalog.DefaultFan || f.RPM() != DefaultFanRPM || f.TotalPressure() != DefaultFanPressure {
		t.Fatalf("fan = %v", f)
	}

	if err := f.SetRPM(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetRPM(-1) error = %v", err)
	}

	if err := f.SetTotalPressure(-5); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetTotalPressure(-5) error = %v", err)
	}

	if _, err := NewFan(0.1, -1, 1500, model, DefaultDims); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NewFan(negative pressure) error = %v", err)
	}
}

func TestDamper(t *testing.T) {
	d, err := NewDamper(DefaultFlow, DefaultDamperDischarge, DefaultBladeHeight, BladesOpposed, DefaultDims)
	if err != nil {
		t.Fatalf("NewDamper() error = %v", err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{name: "zero discharge", call: func() error { return d.SetDischargeCoefficient(0) }},
		{name: "negative blade height", call: func() error { return d.SetBladeHeight(-0.1) }},
		{name: "zero blade height", call: func() error { return d.SetBladeHeight(0) }},
		{name: "unknown blades", call: func() error { return d.SetBlades(BladeType(7)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}

	if err := d.SetBlades(BladesParallel); err != nil || d.Blades() != BladesParallel {
		t.Fatalf("SetBlades(parallel) error = %v, blades = %v", err, d.Blades())
	}

	if d.DischargeCoefficient() != DefaultDamperDischarge || d.BladeHeight() != DefaultBladeHeight {
		t.Fatalf("damper = %v", d)
	}
}

func TestTerminal(t *testing.T) {
	term, err := NewTerminal(DefaultFlow, 0, DefaultTerminalPressure, Rect(0.6, 0.6))
	if err != nil {
		t.Fatalf("NewTerminal() error = %v", err)
	}

	if term.PressureDrop() != DefaultTerminalPressure || term.DischargeCoefficient() != 0 {
		t.Fatalf("terminal = %v", term)
	}

	if err := term.SetPressureDrop(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetPressureDrop(-1) error = %v", err)
	}

	if err := term.SetDischargeCoefficient(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("SetDischargeCoefficient(-1) error = %v", err)
	}
}

func TestBend(t *testing.T) {
	b, err := NewBend(0.2, 90, Rect(0.5, 0.4), Rect(0.4, 0.25))
	if err != nil {
		t.Fatalf("NewBend() error = %v", err)
	}

	// The outlet carries the whole upstream flow.
	if got := b.BranchVelocity(); math.Abs(got-2) > eps {
		t.Fatalf("branch velocity = %v, want 2", got)
	}

	if err := b.SetUpstreamFlow(0.4); err != nil {
		t.Fatalf("SetUpstreamFlow() error = %v", err)
	}

	if got := b.BranchVelocity(); math.Abs(got-4) > eps {
		t.Fatalf("branch velocity after flow change = %v, want 4", got)
	}

	if err := b.SetBranchGeometry(Rect(0.5, 0.4)); err != nil {
		t.Fatalf("SetBranchGeometry() error = %v", err)
	}

	if got := b.BranchVelocity(); math.Abs(got-2) > eps {
		t.Fatalf("branch velocity after geometry change = %v, want 2", got)
	}

	up := b.Upstream()
	if err := b.SetAngle(45); err != nil || b.Angle() != 45 {
		t.Fatalf("SetAngle(45) error = %v, angle = %v", err, b.Angle())
	}

	if b.Upstream() != up {
		t.Fatal("SetAngle changed the upstream section")
	}

	for _, a := range []float64{-1, 90.5, math.NaN()} {
		if err := b.SetAngle(a); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("SetAngle(%v) error = %v, want ErrInvalidParameter", a, err)
		}
	}

	if b.Angle() != 45 {
		t.Fatal("angle changed after rejected update")
	}

	if _, err := NewBend(0.1, 120, DefaultDims, DefaultDims); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NewBend(120°) error = %v", err)
	}
}

func requireBalance(t *testing.T, b *Branch) {
	t.Helper()

	if got := b.DownstreamFlow() + b.BranchFlow(); math.Abs(got-b.UpstreamFlow()) > eps {
		t.Fatalf("downstream %v + branch %v != upstream %v", b.DownstreamFlow(), b.BranchFlow(), b.UpstreamFlow())
	}

	want, _ := b.Downstream().Velocity(b.DownstreamFlow())
	if b.DownstreamVelocity() != want {
		t.Fatalf("downstream velocity = %v, want %v", b.DownstreamVelocity(), want)
	}
}

func TestBranchDefaults(t *testing.T) {
	b, err := NewBranch(DefaultBranchConfig())
	if err != nil {
		t.Fatalf("NewBranch() error = %v", err)
	}

	requireBalance(t, b)

	if math.Abs(b.DownstreamFlow()-0.05) > eps {
		t.Fatalf("downstream flow = %v, want 0.05", b.DownstreamFlow())
	}

	// Branch velocity follows the branch flow, not the upstream flow.
	if math.Abs(b.BranchVelocity()-0.2) > eps {
		t.Fatalf("branch velocity = %v, want 0.2", b.BranchVelocity())
	}
}

func TestBranchFlowConservation(t *testing.T) {
	b, err := NewBranch(DefaultBranchConfig())
	if err != nil {
		t.Fatalf("NewBranch() error = %v", err)
	}

	steps := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{name: "raise upstream", call: func() error { return b.SetUpstreamFlow(0.8) }},
		{name: "raise branch", call: func() error { return b.SetBranchFlow(0.5) }},
		{name: "upstream below branch", call: func() error { return b.SetUpstreamFlow(0.4) }, wantErr: ErrFlowBalance},
		{name: "branch above upstream", call: func() error { return b.SetBranchFlow(0.81) }, wantErr: ErrFlowBalance},
		{name: "negative branch", call: func() error { return b.SetBranchFlow(-0.1) }, wantErr: ErrInvalidFlow},
		{name: "negative upstream", call: func() error { return b.SetUpstreamFlow(-1) }, wantErr: ErrInvalidFlow},
		{name: "branch takes all", call: func() error { return b.SetBranchFlow(0.8) }},
		{name: "downstream geometry", call: func() error { return b.SetDownstreamGeometry(Round(0.3)) }},
		{name: "branch geometry", call: func() error { return b.SetBranchGeometry(Rect(0.3, 0.2)) }},
		{name: "upstream geometry", call: func() error { return b.SetUpstreamGeometry(Rect(0.6, 0.6)) }},
		{name: "zero branch", call: func() error { return b.SetBranchFlow(0) }},
		{name: "zero upstream", call: func() error { return b.SetUpstreamFlow(0) }},
	}

	for _, st := range steps {
		before := *b

		err := st.call()
		if st.wantErr != nil {
			if !errors.Is(err, st.wantErr) {
				t.Fatalf("%s: error = %v, want %v", st.name, err, st.wantErr)
			}

			if *b != before {
				t.Fatalf("%s: state changed after rejected update", st.name)
			}
		} else if err != nil {
			t.Fatalf("%s: unexpected error %v", st.name, err)
		}

		requireBalance(t, b)
	}
}

func TestNewBranchRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BranchConfig)
		wantErr error
	}{
		{name: "branch above upstream", mutate: func(c *BranchConfig) { c.BranchFlow = 0.2 }, wantErr: ErrFlowBalance},
		{name: "negative fillet", mutate: func(c *BranchConfig) { c.FilletRadius = -0.01 }, wantErr: ErrInvalidParameter},
		{name: "bad angle", mutate: func(c *BranchConfig) { c.Angle = 100 }, wantErr: ErrInvalidParameter},
		{name: "bad downstream", mutate: func(c *BranchConfig) { c.Downstream = Rect(0, 0) }, wantErr: ErrInvalidGeometry},
		{name: "bad branch", mutate: func(c *BranchConfig) { c.Branch = Rect(0.2, -0.2) }, wantErr: ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBranchConfig()
			tt.mutate(&cfg)

			if _, err := NewBranch(cfg); !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBranch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	states := []State{}

	s, _ := NewSimple(DefaultFlow, DefaultDims)
	d, _ := NewDuct(DefaultFlow, DefaultLength, DefaultDims)
	b, _ := NewBend(DefaultFlow, MaxAngle, DefaultDims, DefaultDims)
	br, _ := NewBranch(DefaultBranchConfig())
	states = append(states, s, d, b, br)

	want := []string{"simple", "duct", "bend", "branch"}
	for i, st := range states {
		if st.Kind().String() != want[i] {
			t.Fatalf("Kind() = %q, want %q", st.Kind(), want[i])
		}

		if !strings.HasPrefix(st.String(), want[i]+" upstream: ") {
			t.Fatalf("String() = %q", st.String())
		}
	}

	if Kind(42).String() != "unknown" {
		t.Fatal("unexpected name for unknown kind")
	}
}
