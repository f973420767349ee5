package domain

// SegmentVariant tags a running segment.
type SegmentVariant string

const (
	SegmentWarmup        SegmentVariant = "warmup"
	SegmentMain          SegmentVariant = "main"
	SegmentInterval      SegmentVariant = "interval"
	SegmentRecovery      SegmentVariant = "recovery"
	SegmentCooldown      SegmentVariant = "cooldown"
	SegmentIntervalGroup SegmentVariant = "interval_group"
)

// Valid reports whether v is one of the known segment variants.
func (v SegmentVariant) Valid() bool {
	switch v {
	case SegmentWarmup, SegmentMain, SegmentInterval, SegmentRecovery, SegmentCooldown, SegmentIntervalGroup:
		return true
	}
	return false
}

// IntervalVariant tags an interval inside an interval group.
type IntervalVariant string

const (
	IntervalWork     IntervalVariant = "work"
	IntervalRest     IntervalVariant = "rest"
	IntervalRecovery IntervalVariant = "recovery"
)

func (v IntervalVariant) Valid() bool {
	return v == IntervalWork || v == IntervalRest || v == IntervalRecovery
}

// Intensity is an RPE-style ordinal from 1 (easy) to 5 (max).
type Intensity int

const (
	IntensityMin Intensity = 1
	IntensityMax Intensity = 5
)

func (i Intensity) Valid() bool { return i >= IntensityMin && i <= IntensityMax }

// HeartRateRange is a target heart rate band, optionally named after a zone.
type HeartRateRange struct {
	Min  int
	Max  int
	Zone string // e.g. "Zone 2", "Aerobic"
}

// SegmentBase carries the fields every running segment has.
type SegmentBase struct {
	ID              string
	Name            string
	Duration        *float64 // Minutes
	Distance        *float64
	Pace            *string // e.g. "7:30/mile"
	TargetHeartRate *HeartRateRange
	Intensity       *Intensity
	Notes           *string
}

func (b SegmentBase) NodeID() string { return b.ID }

// Segment is a phase of a running workout. The variants are SteadySegment
// and IntervalGroup; only an IntervalGroup can hold intervals.
type Segment interface {
	NodeID() string
	Variant() SegmentVariant
	Base() SegmentBase
	// WithBase returns a copy of the segment carrying b instead of its current base.
	WithBase(b SegmentBase) Segment
	isSegment()
}

// SteadySegment is any segment that is not an interval group.
type SteadySegment struct {
	SegmentBase
	Kind SegmentVariant // Never SegmentIntervalGroup
}

func (s SteadySegment) Variant() SegmentVariant { return s.Kind }
func (s SteadySegment) Base() SegmentBase       { return s.SegmentBase }
func (SteadySegment) isSegment()                {}
func (s SteadySegment) WithBase(b SegmentBase) Segment {
	s.SegmentBase = b
	return s
}

// IntervalGroup repeats its intervals Repetitions times, e.g. "4 x [3' work, 1' rest]".
type IntervalGroup struct {
	SegmentBase
	Repetitions *int
	Intervals   []RunningInterval
}

func (IntervalGroup) Variant() SegmentVariant { return SegmentIntervalGroup }
func (g IntervalGroup) Base() SegmentBase     { return g.SegmentBase }
func (IntervalGroup) isSegment()              {}
func (g IntervalGroup) WithBase(b SegmentBase) Segment {
	g.SegmentBase = b
	return g
}

// RunningInterval only exists nested inside an IntervalGroup.
type RunningInterval struct {
	ID        string
	Name      string
	Duration  *float64
	Distance  *float64
	Pace      *string
	Intensity *Intensity
	Kind      IntervalVariant
}

func (i RunningInterval) NodeID() string { return i.ID }
