package main

import (
	"log"

	"github.com/ds124wfegd/WB_L3/6/config"
	"github.com/ds124wfegd/WB_L3/6/internal/appServer"
)

func main() {
	v, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("cannot parse config: %v", err)
	}

	appServer.NewServer(cfg)
}
