package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/porschequiz/internal/app"
	"github.com/abhisek/porschequiz/internal/bank"
	"github.com/abhisek/porschequiz/internal/config"
	"github.com/abhisek/porschequiz/internal/gallery"
	"github.com/abhisek/porschequiz/internal/logging"
	"github.com/abhisek/porschequiz/internal/projection"
	"github.com/abhisek/porschequiz/internal/quiz"
)

// game bundles everything a front end needs to run one quiz.
type game struct {
	bank      *bank.Bank
	ctrl      *quiz.Controller
	projector *projection.Projector
	log       *logrus.Logger
	close     func() error
}

// setupGame loads config, opens the log, loads the question bank and
// builds the controller.
func setupGame(cmd *cobra.Command) (*game, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	b, err := bank.Load(cfg.Questions)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	for _, w := range b.Warnings() {
		log.WithField("source", b.Source).Warn(w)
	}

	g := gallery.Default()
	ctrl, err := quiz.NewController(b.Questions,
		quiz.WithResultTable(b.Results),
		quiz.WithImagePicker(g),
	)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("build quiz: %w", err)
	}
	ctrl.Subscribe(logging.TransitionLogger(log))

	log.WithFields(logrus.Fields{
		"source":    b.Source,
		"questions": b.Questions.Len(),
		"images":    g.Len(),
	}).Info("question bank loaded")

	return &game{
		bank:      b,
		ctrl:      ctrl,
		projector: projection.New(b.Title, g),
		log:       log,
		close:     closeLog,
	}, nil
}

// finish closes the log file. A close failure is reported through err
// unless err already holds an earlier failure.
func (g *game) finish(err *error) {
	if cerr := g.close(); cerr != nil {
		g.log.WithError(cerr).Error("close log")
		if *err == nil {
			*err = fmt.Errorf("close log: %w", cerr)
		}
	}
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) (err error) {
	skipSplash, err := cmd.Flags().GetBool("no-splash")
	if err != nil {
		return fmt.Errorf("read --no-splash: %w", err)
	}

	g, err := setupGame(cmd)
	if err != nil {
		return err
	}
	defer g.finish(&err)

	return app.Run(app.Options{
		Title:       g.bank.Title,
		Quiz:        g.ctrl,
		Projector:   g.projector,
		Logger:      g.log,
		SkipWelcome: skipSplash,
	})
}
