package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modalcore/internal/config"
	"github.com/dshills/modalcore/internal/dispatcher"
	"github.com/dshills/modalcore/internal/editor"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/engine/history"
	"github.com/dshills/modalcore/internal/engine/mark"
	"github.com/dshills/modalcore/internal/engine/motion"
	"github.com/dshills/modalcore/internal/engine/register"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/macro"
	"github.com/dshills/modalcore/internal/syntax"
)

// Options configures New.
type Options struct {
	// Config defaults to config.Default.
	Config *config.Config
	// ConfigPath is watched for changes when set.
	ConfigPath string
	// Path is the file to edit. An empty path edits an unnamed buffer.
	Path string
	// Screen defaults to the terminal.
	Screen tcell.Screen
	// Clipboard overrides the system clipboard.
	Clipboard register.Clipboard
	// Logger defaults to NopLogger.
	Logger *Logger
}

// App is a running editor session.
type App struct {
	cfg    *config.Config
	log    *Logger
	screen tcell.Screen

	regs      *register.Bank
	marks     *mark.Store
	comments  *syntax.Registry
	rec       *macro.Recorder
	macroPath string

	doc  *buffer.Buffer
	ed   *editor.Editor
	disp *dispatcher.Dispatcher

	watcher *config.Watcher
	view    view
}

// New builds a session. The screen is not touched until Run.
func New(opts Options) (*App, error) {
	a := &App{
		cfg:    opts.Config,
		log:    opts.Logger,
		screen: opts.Screen,
		marks:  mark.NewStore(),
		rec:    macro.NewRecorder(),
	}
	if a.cfg == nil {
		a.cfg = config.Default()
	}
	if a.log == nil {
		a.log = NopLogger
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = register.SystemClipboard{}
		if !a.cfg.Clipboard.Enabled {
			clip = register.NoClipboard{}
		}
	}
	a.regs = register.NewBank(register.WithClipboard(clip))

	comments, err := newRegistry(a.cfg)
	if err != nil {
		return nil, err
	}
	a.comments = comments

	if err := a.loadMacros(); err != nil {
		a.log.Warn("macros not loaded", "error", err)
	}

	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScreen, err)
		}
		a.screen = s
	}

	if err := a.open(opts.Path); err != nil {
		return nil, err
	}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			a.log.Warn("config not watched", "path", opts.ConfigPath, "error", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// newRegistry builds the language table: builtins, then the Lua script,
// then per-language comment overrides.
func newRegistry(cfg *config.Config) (*syntax.Registry, error) {
	var opts []syntax.Option
	if cfg.Languages.Script != "" {
		langs, err := syntax.LoadLua(context.Background(), cfg.Languages.Script)
		if err != nil {
			return nil, fmt.Errorf("loading languages: %w", err)
		}
		opts = append(opts, syntax.WithLanguages(langs...))
	}
	r := syntax.NewRegistry(opts...)
	applyComments(r, cfg)
	return r, nil
}

func applyComments(r *syntax.Registry, cfg *config.Config) {
	for name, c := range cfg.Comments {
		r.SetComment(name, syntax.Comment{Prefix: c.Prefix, Suffix: c.Suffix})
	}
}

func (a *App) loadMacros() error {
	if !a.cfg.Macros.Persist {
		return nil
	}
	path := a.cfg.Macros.Path
	if path == "" {
		p, err := macro.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	a.macroPath = path
	return macro.Load(a.rec, path)
}

// openDocument loads path, or creates an empty buffer bound to it when the
// file does not exist yet.
func openDocument(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.NewBuffer(), nil
	}
	buf, err := buffer.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.NewBuffer(buffer.WithPath(path)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDocument, err)
	}
	return buf, nil
}

// open replaces the current document. Registers, marks and macros carry
// over; undo history belongs to the document and starts empty.
func (a *App) open(path string) error {
	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	a.doc = doc
	a.ed = editor.New(doc, append(a.editorOptions(),
		editor.WithRegisters(a.regs),
		editor.WithMarks(a.marks),
		editor.WithComments(a.comments),
		editor.WithUndoStack(history.NewStack(
			history.WithGroupInterval(a.cfg.Undo.GroupInterval.Std()),
			history.WithLimit(a.cfg.Undo.Limit),
		)),
		editor.WithLogger(a.log.WithComponent("editor")),
	)...)

	a.disp = dispatcher.New(a.ed, dispatcher.DefaultConfig())
	a.disp.SetRecorder(a.rec)
	a.disp.SetLogger(a.log.WithComponent("dispatcher"))
	a.disp.RegisterPostHook(dispatcher.NewLoggingHook(a.log.WithComponent("dispatch")))
	a.view = view{}
	a.log.Info("opened", "path", doc.DisplayName(), "lines", doc.LineCount())
	return nil
}

func (a *App) editorOptions() []editor.Option {
	opts := []editor.Option{
		editor.WithTabWidth(a.cfg.Editor.TabWidth),
		editor.WithAutoIndent(a.cfg.Editor.AutoIndent),
		editor.WithScrollOff(a.cfg.Editor.ScrollOff),
	}
	if _, h := a.screen.Size(); h > 1 {
		opts = append(opts, editor.WithTextRows(h-1))
	}
	return opts
}

// Editor returns the active editor.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// Document returns the active document.
func (a *App) Document() *buffer.Buffer {
	return a.doc
}

// Run draws the document and processes events until the user quits or ctx
// is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrScreen, err)
	}
	defer a.screen.Fini()
	a.resize()
	a.render()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var updates <-chan config.Update
	if a.watcher != nil {
		updates = a.watcher.Updates()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := a.handleEvent(ev); quit {
				return nil
			}
		case u, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			a.reload(u)
		}
		a.render()
	}
}

// handleEvent processes one terminal event and reports whether to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(key.FromTcell(ev))
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return false
}

// handleKey feeds one key to the dispatcher.
func (a *App) handleKey(ev key.Event) bool {
	res := a.disp.HandleKey(ev)
	switch {
	case res.Quit:
		return true
	case res.IsPassthrough():
		a.ed.SetStatus(fmt.Sprintf("%s is not available", res.Action.Kind))
	case res.Err != nil && !errors.Is(res.Err, dispatcher.ErrNotSavable):
		a.log.Warn("action failed", "action", res.Action.String(), "error", res.Err)
	}
	if j, ok := a.ed.PendingFileJump(); ok {
		a.jump(j)
	}
	return false
}

// jump follows a global mark into another file.
func (a *App) jump(j editor.FileJump) {
	if a.doc.Dirty() {
		a.ed.SetStatus("No write since last change")
		return
	}
	if err := a.open(j.Path); err != nil {
		a.ed.SetStatus(err.Error())
		return
	}
	p := j.Pos
	if !j.Exact {
		p.Col = motion.FirstNonBlankCol(a.doc, p.Line)
	}
	a.ed.SetCursor(p)
}

func (a *App) resize() {
	_, h := a.screen.Size()
	if h > 1 {
		a.ed.Resize(h - 1)
	}
}

// reload applies a changed config file. Settings that only matter at
// startup, such as the clipboard and the macro file, are left alone.
func (a *App) reload(u config.Update) {
	if u.Err != nil {
		a.ed.SetStatus(fmt.Sprintf("Config error: %v", u.Err))
		a.log.Warn("config reload failed", "error", u.Err)
		return
	}
	a.cfg = u.Config
	a.ed.Reconfigure(a.editorOptions()...)
	applyComments(a.comments, a.cfg)
	a.log.SetLevel(ParseLogLevel(a.cfg.Log.Level))
	a.ed.SetStatus("Config reloaded")
	a.log.Info("config reloaded")
}

// Close stops the watcher and saves macros.
func (a *App) Close() error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Close())
	}
	if a.macroPath != "" {
		if err := macro.Save(a.rec, a.macroPath); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
