package hydraulics

import "fmt"

// outlet is the second section shared by bends and branches.
type outlet struct {
	outletSection  Section
	angle          float64
	outletVelocity float64
}

// Branch returns the outlet section.
func (o *outlet) Branch() Section { return o.outletSection }

// Angle returns the outlet angle in degrees.
func (o *outlet) Angle() float64 { return o.angle }

// BranchVelocity returns the outlet mean velocity in m/s.
func (o *outlet) BranchVelocity() float64 { return o.outletVelocity }

// SetAngle replaces the outlet angle. Only branch-side values depend on it.
func (o *outlet) SetAngle(angle float64) error {
	err := checkAngle(angle)
	if err != nil {
		return err
	}

	o.angle = angle

	return nil
}

// Bend is an elbow: an upstream section turning through an angle into
// an outlet section. The whole upstream flow passes the outlet.
type Bend struct {
	Simple
	outlet
}

// NewBend validates both sections, the flow and an angle in [0°, 90°].
func NewBend(flow, angle float64, upstream, branch Dims, opts ...Option) (*Bend, error) {
	cfg := applyOptions(opts)

	s, err := newSimple(flow, upstream, cfg)
	if err != nil {
		return nil, err
	}

	err = checkAngle(angle)
	if err != nil {
		return nil, err
	}

	sec, err := NewSection(cfg.limits, branch)
	if err != nil {
		return nil, err
	}

	velocity, err := sec.Velocity(flow)
	if err != nil {
		return nil, err
	}

	return &Bend{Simple: s, outlet: outlet{outletSection: sec, angle: angle, outletVelocity: velocity}}, nil
}

// Kind returns [KindBend].
func (b *Bend) Kind() Kind { return KindBend }

// SetBranchGeometry replaces the outlet section and re-derives its velocity.
func (b *Bend) SetBranchGeometry(d Dims) error {
	sec, err := NewSection(b.limits, d)
	if err != nil {
		return err
	}

	velocity, err := sec.Velocity(b.flow)
	if err != nil {
		return err
	}

	b.outletSection, b.outletVelocity = sec, velocity

	return nil
}

// SetUpstreamFlow replaces the flow and re-derives both velocities.
func (b *Bend) SetUpstreamFlow(flow float64) error {
	err := checkFlow(flow)
	if err != nil {
		return err
	}

	velocity, err := b.outletSection.Velocity(flow)
	if err != nil {
		return err
	}

	err = b.Simple.SetUpstreamFlow(flow)
	if err != nil {
		return err
	}

	b.outletVelocity = velocity

	return nil
}

func (b *Bend) String() string {
	return fmt.Sprintf("bend %s\nbranch: %s angle=%.1f° v=%.2f m/s",
		b.upstreamString(), b.outletSection, b.angle, b.outletVelocity)
}

// Branch is a tee: the upstream flow splits into a branch at an angle
// and a straight-through downstream section.
type Branch struct {
	Simple
	outlet

	fillet             float64
	branchFlow         float64
	downstream         Section
	downstreamFlow     float64
	downstreamVelocity float64
}

// BranchConfig holds the geometry and flows of a new [Branch].
type BranchConfig struct {
	UpstreamFlow float64
	BranchFlow   float64
	Angle        float64 // degrees
	FilletRadius float64 // m
	Upstream     Dims
	Branch       Dims
	Downstream   Dims
}

// DefaultBranchConfig returns a 90° tee of default sections splitting the
// default flow in half.
func DefaultBranchConfig() BranchConfig {
	return BranchConfig{
		UpstreamFlow: DefaultFlow,
		BranchFlow:   DefaultBranchFlow,
		Angle:        MaxAngle,
		FilletRadius: DefaultFilletRadius,
		Upstream:     DefaultDims,
		Branch:       DefaultDims,
		Downstream:   DefaultDims,
	}
}

// NewBranch validates every section, the angle, the fillet radius and
// the flow balance.
func NewBranch(bc BranchConfig, opts ...Option) (*Branch, error) {
	cfg := applyOptions(opts)

	s, err := newSimple(bc.UpstreamFlow, bc.Upstream, cfg)
	if err != nil {
		return nil, err
	}

	err = checkAngle(bc.Angle)
	if err != nil {
		return nil, err
	}

	err = checkNonNegative("fillet radius", bc.FilletRadius)
	if err != nil {
		return nil, err
	}

	err = checkBalance(bc.UpstreamFlow, bc.BranchFlow)
	if err != nil {
		return nil, err
	}

	brSec, err := NewSection(cfg.limits, bc.Branch)
	if err != nil {
		return nil, err
	}

	downSec, err := NewSection(cfg.limits, bc.Downstream)
	if err != nil {
		return nil, err
	}

	b := &Branch{
		Simple:     s,
		outlet:     outlet{outletSection: brSec, angle: bc.Angle},
		fillet:     bc.FilletRadius,
		branchFlow: bc.BranchFlow,
		downstream: downSec,
	}
	b.derive()

	return b, nil
}

func checkBalance(upstream, branch float64) error {
	err := checkFlow(branch)
	if err != nil {
		return err
	}

	if branch > upstream {
		return fmt.Errorf("%w: branch=%g upstream=%g", ErrFlowBalance, branch, upstream)
	}

	return nil
}

// derive recomputes the branch and downstream flow values. Every
// input has been validated, so the velocities cannot fail.
func (b *Branch) derive() {
	b.downstreamFlow = b.flow - b.branchFlow
	b.outletVelocity, _ = b.outletSection.Velocity(b.branchFlow)
	b.downstreamVelocity, _ = b.downstream.Velocity(b.downstreamFlow)
}

// Kind returns [KindBranch].
func (b *Branch) Kind() Kind { return KindBranch }

// FilletRadius returns the edge fillet radius in metres.
func (b *Branch) FilletRadius() float64 { return b.fillet }

// BranchFlow returns the flow leaving through the branch in m³/s.
func (b *Branch) BranchFlow() float64 { return b.branchFlow }

// Downstream returns the straight-through section.
func (b *Branch) Downstream() Section { return b.downstream }

// DownstreamFlow returns UpstreamFlow - BranchFlow.
func (b *Branch) DownstreamFlow() float64 { return b.downstreamFlow }

// DownstreamVelocity returns the downstream mean velocity in m/s.
func (b *Branch) DownstreamVelocity() float64 { return b.downstreamVelocity }

// SetUpstreamFlow checks the flow balance, then replaces the upstream
// flow and re-derives the downstream values.
func (b *Branch) SetUpstreamFlow(flow float64) error {
	err := checkFlow(flow)
	if err != nil {
		return err
	}

	err = checkBalance(flow, b.branchFlow)
	if err != nil {
		return err
	}

	err = b.Simple.SetUpstreamFlow(flow)
	if err != nil {
		return err
	}

	b.derive()

	return nil
}

// SetBranchFlow checks the flow balance, then replaces the branch flow
// and re-derives the branch and downstream values.
func (b *Branch) SetBranchFlow(flow float64) error {
	err := checkBalance(b.flow, flow)
	if err != nil {
		return err
	}

	b.branchFlow = flow
	b.derive()

	return nil
}

// SetFilletRadius replaces the edge fillet radius.
func (b *Branch) SetFilletRadius(r float64) error {
	err := checkNonNegative("fillet radius", r)
	if err != nil {
		return err
	}

	b.fillet = r

	return nil
}

// SetBranchGeometry replaces the branch section.
func (b *Branch) SetBranchGeometry(d Dims) error {
	sec, err := NewSection(b.limits, d)
	if err != nil {
		return err
	}

	b.outletSection = sec
	b.derive()

	return nil
}

// SetDownstreamGeometry replaces the downstream section.
func (b *Branch) SetDownstreamGeometry(d Dims) error {
	sec, err := NewSection(b.limits, d)
	if err != nil {
		return err
	}

	b.downstream = sec
	b.derive()

	return nil
}

func (b *Branch) String() string {
	return fmt.Sprintf("branch %s\nbranch: %s flow=%.3f m³/s v=%.2f m/s angle=%.1f° r=%.3f m\ndownstream: %s flow=%.3f m³/s v=%.2f m/s",
		b.upstreamString(),
		b.outletSection, b.branchFlow, b.outletVelocity, b.angle, b.fillet,
		b.downstream, b.downstreamFlow, b.downstreamVelocity)
}
