package main

import (
	"os"

	"social-store/internal/cli"
	"social-store/internal/config"
	"social-store/internal/storage"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type params struct {
	ConfigPath string `env:"SOCIAL_STORE_CONFIG" envDefault:"config.yaml"`
	DataDir    string `env:"SOCIAL_STORE_DATA_DIR"`
	Verbose    bool   `env:"SOCIAL_STORE_VERBOSE"`
}

func main() {
	log := logrus.New()

	var p params
	if err := env.Parse(&p); err != nil {
		log.Fatal("Failed to parse environment: ", err)
	}
	if p.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	cfg, err := config.LoadConfig(p.ConfigPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if p.DataDir != "" {
		cfg.DataDir = p.DataDir
	}

	store := storage.NewSocialStore(cfg.StorageFiles(), log)
	if err := store.Load(); err != nil {
		log.Fatal("Failed to load data: ", err)
	}

	cli.New(store, os.Stdout).Run(os.Stdin)

	// все изменения пишутся на диск одним махом при выходе
	if err := store.Save(); err != nil {
		log.Fatal("Failed to save data: ", err)
	}
}
