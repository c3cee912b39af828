// Package override keeps a custom font dominant on a live page.
//
// An Engine runs once per page load. It decides from the settings whether
// the page gets an override, injects a style element as the last child of
// <head>, then reacts to head and body mutations plus a bounded watchdog,
// funnelling all three into a single debounced reapply.
package override

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/exclusion"
	"github.com/bnema/fontify/internal/logging"
)

// ErrNoHead is returned by Document implementations when <head> is missing.
var ErrNoHead = port.ErrNoHead

const eventBuffer = 64

// SettingsSource loads the current settings.
type SettingsSource interface {
	Load(ctx context.Context) (*entity.Settings, error)
}

// FontResolver turns a direct font URL into an inline payload, or nil.
type FontResolver interface {
	Resolve(ctx context.Context, fontURL string) (*entity.FontPayload, error)
}

// Deps are the engine collaborators.
type Deps struct {
	Settings SettingsSource
	Fonts    FontResolver
}

// Options tune the maintenance timing.
type Options struct {
	// Debounce delays a reapply so bursts of mutations coalesce.
	Debounce time.Duration
	// WatchdogInterval is the period of the dominance check.
	WatchdogInterval time.Duration
	// WatchdogMaxTicks bounds the watchdog; it stops for good afterwards.
	// A negative value disables the watchdog.
	WatchdogMaxTicks int
}

// DefaultOptions returns 100ms debounce and a 5s watchdog running 10 times.
func DefaultOptions() Options {
	return Options{
		Debounce:         100 * time.Millisecond,
		WatchdogInterval: 5 * time.Second,
		WatchdogMaxTicks: 10,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Debounce <= 0 {
		o.Debounce = d.Debounce
	}
	if o.WatchdogInterval <= 0 {
		o.WatchdogInterval = d.WatchdogInterval
	}
	if o.WatchdogMaxTicks == 0 {
		o.WatchdogMaxTicks = d.WatchdogMaxTicks
	}
	return o
}

// State is the engine lifecycle state.
type State int32

const (
	// StateStarting is the state before the settings are read.
	StateStarting State = iota
	// StateIdle is terminal: disabled, excluded, no font, or a failure.
	StateIdle
	// StateResolving waits for the inline font payload.
	StateResolving
	// StateApplying inserts the override.
	StateApplying
	// StateMaintaining keeps the override dominant until the page unloads.
	StateMaintaining
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateApplying:
		return "applying"
	case StateMaintaining:
		return "maintaining"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type eventKind int

const (
	eventReady eventKind = iota
	eventHead
	eventBody
)

type event struct {
	kind      eventKind
	mutations []port.Mutation
}

// Engine is the per-page override controller. All page work happens on a
// single goroutine; document callbacks only post events to it.
type Engine struct {
	deps Deps
	opts Options

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc

	state    atomic.Int32
	applies  atomic.Int64
	overflow atomic.Bool

	events     chan event
	settled    chan struct{}
	settleOnce sync.Once
	done       chan struct{}

	// Owned by the engine goroutine.
	doc        port.Document
	spec       entity.FontSpec
	payload    *entity.FontPayload
	family     string
	stopHead   func()
	stopBody   func()
	debounce   *time.Timer
	debounceC  <-chan time.Time
	watchdog   *time.Ticker
	watchdogC  <-chan time.Time
	watchTicks int

	// headPending is set while no override could be inserted for lack of <head>.
	headPending bool
}

// New creates an engine. Zero options fall back to DefaultOptions.
func New(deps Deps, opts Options) *Engine {
	return &Engine{
		deps:    deps,
		opts:    opts.withDefaults(),
		events:  make(chan event, eventBuffer),
		settled: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the engine on doc in the background and returns immediately.
// Calling Start more than once has no effect.
func (e *Engine) Start(ctx context.Context, doc port.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return
	}
	e.started = true

	ctx, e.cancel = context.WithCancel(ctx)
	ctx = logging.WithComponent(ctx, "override")
	ctx = logging.WithURL(ctx, doc.URL())
	e.doc = doc

	go e.run(ctx)
}

// Stop tears the engine down, as on page unload, and waits for it to exit.
// Injected elements stay in the document.
func (e *Engine) Stop() {
	e.mu.Lock()
	started, cancel := e.started, e.cancel
	e.mu.Unlock()

	if !started {
		return
	}
	cancel()
	<-e.done
}

// Settled is closed once the engine reached Idle or Maintaining, or exited.
func (e *Engine) Settled() <-chan struct{} {
	return e.settled
}

// Done is closed when the engine goroutine has exited.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Applies returns how many times the override has been (re)inserted.
func (e *Engine) Applies() int {
	return int(e.applies.Load())
}

func (e *Engine) setState(s State) {
	e.state.Store(int32(s))
}

func (e *Engine) markSettled() {
	e.settleOnce.Do(func() { close(e.settled) })
}

// post never blocks: a full queue is recorded and turns into a reapply.
func (e *Engine) post(ev event) {
	select {
	case e.events <- ev:
	default:
		e.overflow.Store(true)
	}
}

func (e *Engine) run(ctx context.Context) {
	log := logging.FromContext(ctx)

	defer close(e.done)
	defer e.markSettled()
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("override engine panicked, removing override")
			e.degrade(ctx)
		}
	}()
	defer e.teardown()

	if !e.prepare(ctx) {
		e.setState(StateIdle)
		return
	}

	if !e.waitReady(ctx) {
		return
	}

	e.setState(StateApplying)
	if err := e.apply(); err != nil {
		if !errors.Is(err, port.ErrNoHead) {
			log.Warn().Err(err).Msg("failed to apply override")
			e.degrade(ctx)
			return
		}
		e.headPending = true
		if e.opts.WatchdogMaxTicks < 0 {
			log.Debug().Msg("head not available yet, retrying on the next body mutation")
		} else {
			log.Debug().Msg("head not available yet, retrying on body mutations and watchdog ticks")
		}
	}

	e.observe(ctx)
	e.startWatchdog()
	e.setState(StateMaintaining)
	e.markSettled()

	log.Debug().
		Str("font_url", e.spec.FontURL).
		Bool("inline", e.payload != nil).
		Msg("override applied, maintaining")

	e.loop(ctx)
}

// prepare reads the settings and resolves the font. It returns false when
// the page must be left alone.
func (e *Engine) prepare(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	settings, err := e.deps.Settings.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load settings, leaving page untouched")
		return false
	}
	if !settings.IsEnabled {
		log.Trace().Msg("font replacement disabled")
		return false
	}
	if exclusion.IsExcluded(e.doc.URL(), settings.ExcludeURLs) {
		log.Debug().Msg("page excluded")
		return false
	}

	e.spec = settings.Font.Normalize()
	if !e.spec.HasFont() {
		log.Trace().Msg("no font configured")
		return false
	}
	e.family = entity.FontFamilyFor(e.spec.FontURL)

	if !entity.IsDirectFontFile(e.spec.FontURL) {
		return true
	}

	if e.deps.Fonts == nil {
		log.Debug().Msg("no font resolver, keeping native fonts")
		return false
	}

	e.setState(StateResolving)
	payload, err := e.deps.Fonts.Resolve(ctx, e.spec.FontURL)
	if err != nil {
		log.Warn().Err(err).Str("font_url", e.spec.FontURL).Msg("failed to resolve font")
		return false
	}
	if payload == nil {
		log.Debug().Str("font_url", e.spec.FontURL).Msg("font unavailable, keeping native fonts")
		return false
	}
	e.payload = payload
	e.family = entity.DefaultFontFamily
	return true
}

func (e *Engine) waitReady(ctx context.Context) bool {
	if !e.doc.Loading() {
		return true
	}

	e.doc.OnReady(func() { e.post(event{kind: eventReady}) })

	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-e.events:
			if ev.kind == eventReady {
				return true
			}
		}
	}
}

func (e *Engine) loop(ctx context.Context) {
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Trace().Msg("override engine stopped")
			return

		case ev := <-e.events:
			e.handle(ev)

		case <-e.debounceC:
			e.debounceC = nil
			if e.headPending {
				e.observe(ctx)
			}
			if err := e.apply(); err != nil {
				if errors.Is(err, port.ErrNoHead) {
					log.Debug().Msg("head missing on reapply, deferring")
					continue
				}
				log.Warn().Err(err).Msg("failed to reapply override")
				e.degrade(ctx)
				return
			}
			e.headPending = false
			log.Trace().Int("applies", e.Applies()).Msg("override reapplied")

		case <-e.watchdogC:
			e.watchTicks++
			e.observe(ctx)
			if !e.dominant() {
				log.Debug().Int("tick", e.watchTicks).Msg("override not dominant, reapplying")
				e.schedule()
			}
			if e.watchTicks >= e.opts.WatchdogMaxTicks {
				e.stopWatchdog()
				log.Trace().Msg("watchdog finished")
			}
		}

		if e.overflow.Swap(false) {
			e.schedule()
		}
	}
}

func (e *Engine) handle(ev event) {
	switch ev.kind {
	case eventHead:
		if addsForeignStylesheet(ev.mutations) {
			e.schedule()
		}
	case eventBody:
		if addsNodes(ev.mutations) && !e.dominant() {
			e.schedule()
		}
	}
}

// apply removes any previous override and inserts a fresh one at the end of <head>.
func (e *Engine) apply() error {
	e.applies.Add(1)

	if _, err := e.doc.RemoveByID(StyleElementID); err != nil {
		return fmt.Errorf("failed to remove override style: %w", err)
	}
	if _, err := e.doc.RemoveByID(LinkElementID); err != nil {
		return fmt.Errorf("failed to remove override link: %w", err)
	}

	if e.payload == nil {
		if err := e.doc.AppendToHead(linkNode(e.spec.FontURL)); err != nil {
			return fmt.Errorf("failed to insert font link: %w", err)
		}
	}

	css := BuildStylesheet(e.spec, e.payload, e.family)
	if err := e.doc.AppendToHead(styleNode(css)); err != nil {
		return fmt.Errorf("failed to insert override style: %w", err)
	}
	return nil
}

// dominant reports whether the override style is the last element in <head>.
func (e *Engine) dominant() bool {
	children, err := e.doc.HeadChildren()
	if err != nil || len(children) == 0 {
		return false
	}
	return children[len(children)-1].ID == StyleElementID
}

func (e *Engine) schedule() {
	if e.debounce == nil {
		e.debounce = time.NewTimer(e.opts.Debounce)
	} else {
		e.debounce.Reset(e.opts.Debounce)
	}
	e.debounceC = e.debounce.C
}

// observe installs the head and body observers that are not installed yet.
func (e *Engine) observe(ctx context.Context) {
	log := logging.FromContext(ctx)

	if e.stopHead == nil {
		stop, err := e.doc.ObserveHead(func(m []port.Mutation) {
			e.post(event{kind: eventHead, mutations: m})
		})
		if err != nil {
			log.Debug().Err(err).Msg("head observer not installed")
		} else {
			e.stopHead = stop
		}
	}

	if e.stopBody == nil {
		stop, err := e.doc.ObserveBody(func(m []port.Mutation) {
			e.post(event{kind: eventBody, mutations: m})
		})
		if err != nil {
			log.Debug().Err(err).Msg("body observer not installed")
		} else {
			e.stopBody = stop
		}
	}
}

func (e *Engine) startWatchdog() {
	if e.opts.WatchdogMaxTicks < 0 {
		return
	}
	e.watchdog = time.NewTicker(e.opts.WatchdogInterval)
	e.watchdogC = e.watchdog.C
}

func (e *Engine) stopWatchdog() {
	if e.watchdog != nil {
		e.watchdog.Stop()
	}
	e.watchdogC = nil
}

// teardown stops timers and observers. It never touches the document nodes.
func (e *Engine) teardown() {
	e.stopWatchdog()
	if e.debounce != nil {
		e.debounce.Stop()
	}
	e.debounceC = nil
	if e.stopHead != nil {
		e.stopHead()
		e.stopHead = nil
	}
	if e.stopBody != nil {
		e.stopBody()
		e.stopBody = nil
	}
}

// degrade removes the engine's own elements so the page falls back to its
// native fonts, then parks the engine in Idle.
func (e *Engine) degrade(ctx context.Context) {
	log := logging.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("failed to remove override after error")
		}
	}()
	defer e.setState(StateIdle)

	e.teardown()
	for _, id := range []string{StyleElementID, LinkElementID} {
		if _, err := e.doc.RemoveByID(id); err != nil {
			log.Debug().Err(err).Str("id", id).Msg("failed to remove override element")
		}
	}
}

func addsForeignStylesheet(mutations []port.Mutation) bool {
	for _, m := range mutations {
		for _, n := range m.Added {
			if n.IsStylesheet() && !isOverrideID(n.ID) {
				return true
			}
			for _, c := range n.Children {
				if c.ContainsStylesheet() {
					return true
				}
			}
		}
	}
	return false
}

func addsNodes(mutations []port.Mutation) bool {
	for _, m := range mutations {
		if len(m.Added) > 0 {
			return true
		}
	}
	return false
}
