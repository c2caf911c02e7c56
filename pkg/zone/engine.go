package zone

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/surface"
)

// Reporter is the error and user-message façade the engine reports through.
// Internal faults (unknown zone type, surface failures) go to LogError;
// user-correctable constraint violations go to ShowUserError and never
// become errors.
type Reporter interface {
	// LogError records an internal fault with the operation it occurred in.
	LogError(err error, context string)

	// ShowUserError surfaces a user-facing message at the given severity.
	ShowUserError(message string, severity errors.Severity)
}

// LogReporter is the default Reporter: it writes both channels to a
// charmbracelet logger (internal faults at error level, user messages at
// their severity's level).
type LogReporter struct {
	Logger *log.Logger
}

// LogError records an internal fault.
func (r LogReporter) LogError(err error, context string) {
	r.Logger.Error(context, "err", err)
}

// ShowUserError surfaces a user-facing message.
func (r LogReporter) ShowUserError(message string, severity errors.Severity) {
	switch severity {
	case errors.SeverityInfo:
		r.Logger.Info(message)
	case errors.SeverityWarning:
		r.Logger.Warn(message)
	default:
		r.Logger.Error(message)
	}
}

// Engine is the zone layout engine for one page surface. It owns an
// immutable constraint table and is the only component that mutates zone
// heights and size-related presentation attributes.
type Engine struct {
	table    Table
	surf     surface.Surface
	logger   *log.Logger
	reporter Reporter
}

// Option configures an Engine.
type Option func(*Engine)

// WithTable injects an alternate constraint table. The engine clones the
// table, so later mutation by the caller has no effect.
func WithTable(t Table) Option {
	return func(e *Engine) { e.table = t.Clone() }
}

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithReporter sets the error/user-message façade. The default reports
// through the engine's logger.
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates an engine for the given page surface.
func New(surf surface.Surface, opts ...Option) *Engine {
	e := &Engine{
		table:  DefaultTable(),
		surf:   surf,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = LogReporter{Logger: e.logger}
	}
	return e
}

// Table returns the engine's constraint table. Callers must not mutate it.
func (e *Engine) Table() Table {
	return e.table
}

// InitializeZones discovers the page's zones, audits the layout, and
// returns the zones ready for interactive wiring. Advisory validation
// warnings are logged but never fail initialization; an internal fault
// (a panicking surface implementation) is logged and returned.
func (e *Engine) InitializeZones() (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeInternal, "zone initialization failed: %v", r)
			e.reporter.LogError(err, "initialize zones")
		}
	}()

	page = e.Discover()
	if res := e.ValidatePageLayout(); !res.Valid {
		for _, w := range res.Warnings {
			e.logger.Warn("layout validation", "warning", w)
		}
	}
	e.logger.Debug("zones initialized", "count", len(page.Zones), "total_mm", fmt.Sprintf("%.1f", page.TotalHeight()))
	return page, nil
}
