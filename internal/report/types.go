package report

import (
	"encoding/json"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/linqs/srinivasan-mlj20/internal/study"
)

// Report is the result of one aggregation run: one performance row and one
// timing row per condition, in walk order.
type Report struct {
	RunID       uuid.UUID        `json:"run_id"`
	Method      string           `json:"method"`
	GeneratedAt time.Time        `json:"generated_at"`
	Environment EnvironmentInfo  `json:"environment"`
	Performance []PerformanceRow `json:"performance"`
	Timing      []TimingRow      `json:"timing"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func New(method string) *Report {
	return &Report{
		RunID:       uuid.New(),
		Method:      method,
		GeneratedAt: time.Now().UTC(),
		Environment: NewEnvironmentInfo(),
		Performance: []PerformanceRow{},
		Timing:      []TimingRow{},
	}
}

func (r *Report) AddPerformance(row PerformanceRow) {
	r.Performance = append(r.Performance, row)
}

func (r *Report) AddTiming(row TimingRow) {
	r.Timing = append(r.Timing, row)
}

// PerformanceRow is the metric summary of one condition. Mean and StdDev may
// be NaN.
type PerformanceRow struct {
	Condition study.Condition
	Mean      float64
	StdDev    float64
	Samples   int
}

func (r PerformanceRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		study.Condition
		Mean    *float64 `json:"mean"`
		StdDev  *float64 `json:"standard_deviation"`
		Samples int      `json:"samples"`
	}{
		Condition: r.Condition,
		Mean:      nullable(r.Mean),
		StdDev:    nullable(r.StdDev),
		Samples:   r.Samples,
	})
}

// TimingRow is the weight learning wall-clock summary of one condition, in
// seconds.
type TimingRow struct {
	Condition  study.Condition
	MeanWall   float64
	StdDevWall float64
	Samples    int
}

func (r TimingRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		study.Condition
		MeanWall   *float64 `json:"mean_wall_clock_time"`
		StdDevWall *float64 `json:"wall_clock_time_standard_deviation"`
		Samples    int      `json:"samples"`
	}{
		Condition:  r.Condition,
		MeanWall:   nullable(r.MeanWall),
		StdDevWall: nullable(r.StdDevWall),
		Samples:    r.Samples,
	})
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
