package server

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/linqs/srinivasan-mlj20/internal/report"
	"github.com/linqs/srinivasan-mlj20/internal/study"
)

var filterParams = []string{"acq", "dataset", "evaluator", "wl_method"}

type ReportRouter struct {
	e     *echo.Echo
	store *Store
}

func NewReportRouter(e *echo.Echo, store *Store) *ReportRouter {
	return &ReportRouter{
		e:     e,
		store: store,
	}
}

func (r *ReportRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.GET("/runs/latest", r.latestHandler)
	g.GET("/performance", r.performanceHandler)
	g.GET("/timing", r.timingHandler)
}

type TableResponse[T any] struct {
	RunID  uuid.UUID `json:"run_id"`
	Method string    `json:"method"`
	Total  int       `json:"total"`
	Rows   []T       `json:"rows"`
}

func (r *ReportRouter) latestHandler(c echo.Context) error {
	rpt, err := r.latest()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpt)
}

func (r *ReportRouter) performanceHandler(c echo.Context) error {
	f, err := parseFilter(c.QueryParams())
	if err != nil {
		return err
	}
	rpt, err := r.latest()
	if err != nil {
		return err
	}

	rows := make([]report.PerformanceRow, 0, len(rpt.Performance))
	for _, row := range rpt.Performance {
		if f.matches(row.Condition) {
			rows = append(rows, row)
		}
	}
	return c.JSON(http.StatusOK, TableResponse[report.PerformanceRow]{
		RunID:  rpt.RunID,
		Method: rpt.Method,
		Total:  len(rows),
		Rows:   rows,
	})
}

func (r *ReportRouter) timingHandler(c echo.Context) error {
	f, err := parseFilter(c.QueryParams())
	if err != nil {
		return err
	}
	rpt, err := r.latest()
	if err != nil {
		return err
	}

	rows := make([]report.TimingRow, 0, len(rpt.Timing))
	for _, row := range rpt.Timing {
		if f.matches(row.Condition) {
			rows = append(rows, row)
		}
	}
	return c.JSON(http.StatusOK, TableResponse[report.TimingRow]{
		RunID:  rpt.RunID,
		Method: rpt.Method,
		Total:  len(rows),
		Rows:   rows,
	})
}

func (r *ReportRouter) latest() (*report.Report, error) {
	rpt, ok := r.store.Latest()
	if !ok {
		return nil, fmt.Errorf("%w: no report has been published", apperr.ErrNotFound)
	}
	return rpt, nil
}

// filter matches conditions field by field. Empty fields match anything.
type filter struct {
	study.Condition
}

func parseFilter(q url.Values) (filter, error) {
	var unknown []string
	for k := range q {
		if i := sort.SearchStrings(filterParams, k); i == len(filterParams) || filterParams[i] != k {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return filter{}, apperr.NewValidation(fmt.Sprintf("unknown query parameters %v, supported: %v", unknown, filterParams))
	}

	return filter{study.Condition{
		Dataset:     q.Get("dataset"),
		WlMethod:    q.Get("wl_method"),
		Evaluator:   q.Get("evaluator"),
		Acquisition: q.Get("acq"),
	}}, nil
}

func (f filter) matches(c study.Condition) bool {
	return match(f.Dataset, c.Dataset) &&
		match(f.WlMethod, c.WlMethod) &&
		match(f.Evaluator, c.Evaluator) &&
		match(f.Acquisition, c.Acquisition)
}

func match(want, got string) bool {
	return want == "" || want == got
}
