package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/porschequiz/internal/config"
	"github.com/abhisek/porschequiz/internal/quiz"
)

// New builds a logger from cfg. With no log file configured, output is
// discarded. The returned close function releases the file.
func New(cfg config.Log) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(lvl)

	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

// TransitionLogger returns a quiz listener that logs every state change.
// Each play-through, from leaving the start screen to returning to it,
// shares one attempt ID.
func TransitionLogger(log logrus.FieldLogger) quiz.Listener {
	attempt := ""
	return func(t quiz.Transition) {
		if t.From == quiz.ScreenStart && t.To == quiz.ScreenQuiz {
			attempt = uuid.NewString()
		}

		fields := logrus.Fields{
			"attempt": attempt,
			"from":    t.From.String(),
			"to":      t.To.String(),
			"index":   t.Index,
			"score":   t.Score,
		}
		if t.Correct != nil {
			fields["correct"] = *t.Correct
		}
		entry := log.WithFields(fields)

		switch {
		case t.To == quiz.ScreenQuiz && t.From == quiz.ScreenStart:
			entry.Info("quiz started")
		case t.To == quiz.ScreenQuiz:
			entry.Debug("answer recorded")
		case t.To == quiz.ScreenResult:
			entry.Info("quiz finished")
		case t.To == quiz.ScreenStart:
			entry.Info("quiz restarted")
			attempt = ""
		}
	}
}
