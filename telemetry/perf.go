package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one canvas tick.
const (
	PhaseInput     = "input"
	PhaseBackdrop  = "backdrop"
	PhaseFade      = "fade"
	PhasePhysics   = "physics"
	PhaseRender    = "render"
	PhaseTelemetry = "telemetry"
)

// Phases lists the known phases in tick order.
var Phases = []string{
	PhaseInput, PhaseBackdrop, PhaseFade, PhasePhysics, PhaseRender, PhaseTelemetry,
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector keeps tick timings over a rolling window. Phases are
// sequential: starting one ends the previous.
type PerfCollector struct {
	window  []PerfSample
	next    int
	filled  int
	current map[string]time.Duration

	tickStart  time.Time
	phaseStart time.Time
	phase      string

	lastFrame time.Time
	frame     time.Duration

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		window:  make([]PerfSample, windowSize),
		current: make(map[string]time.Duration),
		now:     time.Now,
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = make(map[string]time.Duration, len(Phases))
	p.phase = ""
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick sample.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.phase = ""

	p.window[p.next] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.current,
	}
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

// RecordFrame measures the time since the previous presented frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated timing over the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average tick

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		out.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return out
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i, s := range p.window[:p.filled] {
		total += s.TickDuration
		if i == 0 || s.TickDuration < out.MinTickDuration {
			out.MinTickDuration = s.TickDuration
		}
		if s.TickDuration > out.MaxTickDuration {
			out.MaxTickDuration = s.TickDuration
		}
		for phase, d := range s.Phases {
			sums[phase] += d
		}
	}

	n := time.Duration(p.filled)
	out.AvgTickDuration = total / n
	for phase, sum := range sums {
		avg := sum / n
		out.PhaseAvg[phase] = avg
		if out.AvgTickDuration > 0 {
			out.PhasePct[phase] = float64(avg) / float64(out.AvgTickDuration) * 100
		}
	}
	if out.AvgTickDuration > 0 {
		out.TicksPerSecond = float64(time.Second) / float64(out.AvgTickDuration)
	}
	return out
}

// LogStats logs the stats, skipping phases under 0.1% of the tick.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the flat perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	BackdropPct  float64 `csv:"backdrop_pct"`
	FadePct      float64 `csv:"fade_pct"`
	PhysicsPct   float64 `csv:"physics_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		InputPct:     s.PhasePct[PhaseInput],
		BackdropPct:  s.PhasePct[PhaseBackdrop],
		FadePct:      s.PhasePct[PhaseFade],
		PhysicsPct:   s.PhasePct[PhasePhysics],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
