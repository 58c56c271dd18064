package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/macro"
	"github.com/dshills/modalcore/internal/input/vim"
)

// Logger receives structured dispatcher logs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Saver is implemented by documents that can be written back to disk.
type Saver interface {
	Save() error
}

// Dispatcher turns key events into editor changes. It owns the key state
// machine and the macro recorder, and routes each key by the editor mode.
type Dispatcher struct {
	mu sync.Mutex

	ed     *editor.Editor
	state  *vim.State
	rec    *macro.Recorder
	player *macro.Player

	config  Config
	metrics *Metrics
	log     Logger

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a dispatcher driving ed.
func New(ed *editor.Editor, config Config) *Dispatcher {
	d := &Dispatcher{
		ed:     ed,
		state:  vim.NewState(),
		config: config,
		log:    nopLogger{},
	}
	d.setRecorder(macro.NewRecorder())
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults(ed *editor.Editor) *Dispatcher {
	return New(ed, DefaultConfig())
}

func (d *Dispatcher) setRecorder(rec *macro.Recorder) {
	d.rec = rec
	d.player = macro.NewPlayer(rec)
}

// SetRecorder replaces the macro recorder, for example with one loaded
// from disk.
func (d *Dispatcher) SetRecorder(rec *macro.Recorder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setRecorder(rec)
}

// Recorder returns the macro recorder.
func (d *Dispatcher) Recorder() *macro.Recorder {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rec
}

// SetLogger sets the logger. A nil logger disables logging.
func (d *Dispatcher) SetLogger(log Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if log == nil {
		log = nopLogger{}
	}
	d.log = log
}

// Editor returns the driven editor.
func (d *Dispatcher) Editor() *editor.Editor {
	return d.ed
}

// Metrics returns the collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// RegisterPreHook adds a hook run before each action.
func (d *Dispatcher) RegisterPreHook(h PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, h)
}

// RegisterPostHook adds a hook run after each action.
func (d *Dispatcher) RegisterPostHook(h PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, h)
}

// PendingKeys renders the keys of an incomplete command, for a status line.
func (d *Dispatcher) PendingKeys() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.PendingDisplay()
}

// Recording returns the register being recorded, or zero.
func (d *Dispatcher) Recording() rune {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.rec.IsRecording() {
		return 0
	}
	return d.rec.Register()
}

// HandleKey processes one key event.
func (d *Dispatcher) HandleKey(ev key.Event) Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handleKey(ev)
}

// HandleKeys processes a sequence and returns the last result. It stops
// early when a key asks to quit.
func (d *Dispatcher) HandleKeys(events []key.Event) Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	var res Result
	for _, ev := range events {
		res = d.handleKey(ev)
		if res.Quit {
			break
		}
	}
	return res
}

func (d *Dispatcher) handleKey(ev key.Event) Result {
	if d.metrics != nil {
		d.metrics.RecordKey()
	}
	recording := d.rec.IsRecording()
	d.state.SetRecording(recording)

	var a vim.Action
	switch mode := d.ed.Mode(); {
	case mode.IsInsert():
		a = vim.ProcessInsertKey(ev)
	case mode.IsVisual():
		a = d.state.ProcessVisualKey(ev)
	default:
		a = d.state.ProcessNormalKey(ev)
	}

	res := d.dispatch(a)
	if recording && !d.player.IsPlaying() && a.Kind != vim.ActionStopRecordMacro {
		d.rec.Record(ev)
	}
	return res
}

// Dispatch applies an already resolved action.
func (d *Dispatcher) Dispatch(a vim.Action) Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatch(a)
}

func (d *Dispatcher) dispatch(a vim.Action) Result {
	for _, h := range d.preHooks {
		if !h.PreDispatch(&a) {
			return Result{Action: a, Status: StatusCancelled, Err: ErrActionCancelled}
		}
	}
	if d.config.MaxRepeatCount > 0 && a.Count > d.config.MaxRepeatCount {
		a.Count = d.config.MaxRepeatCount
	}

	start := time.Now()
	res := d.apply(a)
	res.Action = a
	if res.Err != nil {
		res.Status = StatusError
	}

	for _, h := range d.postHooks {
		h.PostDispatch(a, &res)
	}
	if d.metrics != nil && res.Status != StatusPending {
		d.metrics.RecordDispatch(a.Kind.String(), time.Since(start), res.Status)
	}
	return res
}

func (d *Dispatcher) apply(a vim.Action) Result {
	switch a.Kind {
	case vim.ActionPending:
		return Result{Status: StatusPending}
	case vim.ActionUnknown:
		return Result{Status: StatusUnknown}
	case vim.ActionStartRecordMacro:
		return d.startRecording(a.Char)
	case vim.ActionStopRecordMacro:
		name, events := d.rec.Stop()
		d.ed.ClearStatus()
		d.log.Debug("macro recorded", "register", string(name), "keys", len(events))
		return Result{Status: StatusHandled}
	case vim.ActionPlayMacro, vim.ActionReplayLastMacro:
		return d.play(a)
	case vim.ActionSave:
		return d.save()
	case vim.ActionQuit:
		return Result{Status: StatusHandled, Quit: true}
	}
	if a.Kind.IsPassthrough() {
		return Result{Status: StatusPassthrough}
	}
	return d.execute(a)
}

func (d *Dispatcher) execute(a vim.Action) (res Result) {
	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				buf := make([]byte, 4096)
				buf = buf[:runtime.Stack(buf, false)]
				d.log.Error("panic in editor", "action", a.String(), "panic", r, "stack", string(buf))
				if d.metrics != nil {
					d.metrics.RecordPanic(a.Kind.String())
				}
				res = Result{Status: StatusError, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
			}
		}()
	}
	if !d.ed.Execute(a) {
		return Result{Status: StatusUnknown}
	}
	return Result{Status: StatusHandled}
}

func (d *Dispatcher) startRecording(name rune) Result {
	if err := d.rec.Start(name); err != nil {
		d.ed.SetStatus(fmt.Sprintf("Invalid register: %c", name))
		return Result{Status: StatusHandled}
	}
	d.ed.SetStatus(fmt.Sprintf("recording @%c", macro.Normalize(name)))
	return Result{Status: StatusHandled}
}

// play runs a macro as one undo step. Each replayed key goes through the
// same path as a typed key, so nested @ works up to macro.MaxDepth.
func (d *Dispatcher) play(a vim.Action) Result {
	ctx := context.Background()
	if d.config.PlaybackTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.PlaybackTimeout)
		defer cancel()
	}
	handler := func(ev key.Event) error {
		if res := d.handleKey(ev); res.Quit {
			return errQuit
		}
		return nil
	}

	d.ed.BeginBatch()
	var err error
	if a.Kind == vim.ActionReplayLastMacro {
		err = d.player.PlayLast(ctx, a.Count, handler)
	} else {
		err = d.player.Play(ctx, a.Char, a.Count, handler)
	}
	d.ed.EndBatch()

	switch {
	case err == nil:
		return Result{Status: StatusHandled}
	case errors.Is(err, errQuit):
		return Result{Status: StatusHandled, Quit: true}
	case errors.Is(err, macro.ErrNotRecorded), errors.Is(err, macro.ErrInvalidRegister):
		d.ed.SetStatus(fmt.Sprintf("Macro @%c not recorded", a.Char))
	case errors.Is(err, macro.ErrEmptyMacro):
		d.ed.SetStatus(fmt.Sprintf("Macro @%c is empty", a.Char))
	case errors.Is(err, macro.ErrNoLastMacro):
		d.ed.SetStatus("No previous macro")
	case errors.Is(err, macro.ErrRecursion):
		d.ed.SetStatus("Macro recursion too deep")
	case errors.Is(err, context.DeadlineExceeded):
		d.ed.SetStatus("Macro playback timed out")
		return Result{Status: StatusError, Err: err}
	default:
		return Result{Status: StatusError, Err: err}
	}
	return Result{Status: StatusHandled}
}

var errQuit = errors.New("quit during playback")

func (d *Dispatcher) save() Result {
	doc := d.ed.Document()
	s, ok := doc.(Saver)
	if !ok || doc.Path() == "" {
		d.ed.SetStatus("No file name")
		return Result{Status: StatusError, Err: ErrNotSavable}
	}
	if err := s.Save(); err != nil {
		d.ed.SetStatus(fmt.Sprintf("Write failed: %v", err))
		return Result{Status: StatusError, Err: err}
	}
	d.ed.SetStatus(fmt.Sprintf("%q written", filepath.Base(doc.Path())))
	return Result{Status: StatusHandled}
}
