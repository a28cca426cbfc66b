package app

import (
	"io"
	"os"

	config "github.com/DRSN-tech/cosmetic-product/internal/cfg"
	"github.com/DRSN-tech/cosmetic-product/internal/usecase"
	"github.com/DRSN-tech/cosmetic-product/pkg/e"
	"github.com/DRSN-tech/cosmetic-product/pkg/logger"
	"github.com/jimlawless/whereami"
)

// App связывает конфигурацию, логгер и сценарий витрины.
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	showcaseUC usecase.ShowcaseUC
}

// NewApp собирает приложение. Сообщения витрины пишутся в out, логи — в logOut.
func NewApp(cfg *config.Config, out io.Writer, logOut io.Writer) *App {
	log := logger.New(logOut, cfg.Log.Level, cfg.Log.Format)
	showcaseUC := usecase.NewShowcaseUC(usecase.NewCatalog(), out, cfg.App.CurrentDate, log)

	return &App{
		cfg:        cfg,
		logger:     log,
		showcaseUC: showcaseUC,
	}
}

func (a *App) Run() error {
	a.logger.Debugf("showcase started, current_date=%s", a.cfg.App.CurrentDate)

	if err := a.showcaseUC.Run(); err != nil {
		a.logger.Errorf(err, "showcase failed")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	a.logger.Debugf("showcase completed")
	return nil
}

// Run загружает конфигурацию и выполняет сценарий витрины в stdout.
func Run() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := NewApp(cfg, os.Stdout, os.Stderr).Run(); err != nil {
		os.Exit(1)
	}
}
