package main

import (
	"context"
	"log"
	"os"

	"punchclock/internal/buildinfo"
	"punchclock/internal/client/cli"
	"punchclock/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
