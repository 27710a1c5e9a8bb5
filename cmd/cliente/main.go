package main

import (
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/client"
	"github.com/umalmyha/clientes/internal/config"
	"github.com/umalmyha/clientes/internal/infra"
	"github.com/umalmyha/clientes/internal/listing"
)

type terminalCfg struct {
	APIURL      string        `env:"CLIENTE_API_URL" envDefault:"http://localhost:3000/api/cliente"`
	Token       string        `env:"CLIENTE_API_TOKEN" envDefault:""`
	Timeout     time.Duration `env:"CLIENTE_API_TIMEOUT" envDefault:"10s"`
	SearchDelay time.Duration `env:"CLIENTE_SEARCH_DELAY" envDefault:"300ms"`
	MessageTTL  time.Duration `env:"CLIENTE_MESSAGE_TTL" envDefault:"3s"`
	Log         config.LogCfg
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		logrus.Fatal(err)
	}

	var cfg terminalCfg
	if err := env.Parse(&cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		logrus.Fatalf("failed to parse environment variables - %s", err)
	}

	cfg.Log.Format = "text"
	logger, err := infra.Logger(cfg.Log)
	if err != nil {
		logrus.Fatal(err)
	}
	logger.SetOutput(os.Stderr)

	api := client.New(cfg.APIURL, client.WithToken(cfg.Token), client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))

	term := newTerminal(os.Stdin, os.Stdout)
	term.ctrl = listing.NewController(api, logger, listing.Options{
		SearchDelay: cfg.SearchDelay,
		MessageTTL:  cfg.MessageTTL,
		Confirm:     term.confirm,
		OnChange:    term.onChange,
	})
	defer term.ctrl.Close()

	if err := term.run(); err != nil {
		logger.Fatal(err)
	}
}
