package registry

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spritewrap/internal/config"
	"github.com/vovakirdan/spritewrap/internal/core"
	"github.com/vovakirdan/spritewrap/internal/demo"
	"github.com/vovakirdan/spritewrap/internal/fps"
)

// Session is the state a backend runs against: the simulation, the frame
// counter shared with the report timer, and the ambient config and logger.
type Session struct {
	Demo   *demo.Demo
	Frames *fps.Counter
	Config config.Config
	Logger *log.Logger

	// Out receives FPS report lines when no custom sink is used.
	Out io.Writer
}

// NewSession creates a session with a freshly centered demo.
// A nil logger discards diagnostics; a nil out writes reports to stdout.
func NewSession(cfg config.Config, logger *log.Logger, out io.Writer) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Session{
		Demo:   demo.New(cfg.Runtime()),
		Frames: &fps.Counter{},
		Config: cfg,
		Logger: logger,
		Out:    out,
	}
}

// StartReporter starts the FPS report timer. A nil sink prints to Out.
// The caller must Remove the returned timer on exit.
func (s *Session) StartReporter(sink fps.Sink) *fps.Timer {
	if sink == nil {
		sink = fps.PrintTo(s.Out)
	}
	r := fps.NewReporter(s.Frames, s.Config.Interval(), sink)
	s.Logger.Debug("fps reporter started", "interval", r.Interval())
	return r.Start()
}

// Tick steps the simulation once with the given input.
func (s *Session) Tick(in core.InputFrame) core.Rect {
	return s.Demo.Step(in)
}

// FramePresented records one presented frame.
func (s *Session) FramePresented() {
	s.Frames.Increment()
}
