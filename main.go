package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DedS3t/monopoly-properties/app/controllers"
	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/pkg/config"
	"github.com/DedS3t/monopoly-properties/pkg/demo"
	"github.com/DedS3t/monopoly-properties/pkg/routes"
	"github.com/DedS3t/monopoly-properties/platform/board"
	"github.com/DedS3t/monopoly-properties/platform/logging"
	socket "github.com/DedS3t/monopoly-properties/platform/sockets"
	"github.com/sirupsen/logrus"
)

func main() {
	runDemo := flag.Bool("demo", false, "print the property walkthrough and exit")
	flag.Parse()

	if *runDemo {
		demo.Run(os.Stdout)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	var spaces []models.BoardSpace
	if cfg.BoardFile != "" {
		spaces, err = board.LoadProperties(cfg.BoardFile)
	} else {
		spaces, err = board.LoadDefault()
	}
	if err != nil {
		return err
	}
	b, err := board.NewBoard(spaces)
	if err != nil {
		return err
	}

	sockets, err := socket.CreateSocketIOServer(b)
	if err != nil {
		return err
	}
	go func() {
		if err := sockets.ListenAndServe(":"+cfg.SocketPort, cfg.AllowedOrigins); err != nil {
			logrus.WithError(err).Error("socket server stopped")
		}
	}()

	app := routes.NewApp(controllers.New(b, sockets, cfg.JWTSecret))
	logrus.WithFields(logrus.Fields{"port": cfg.Port, "properties": len(spaces)}).Info("listening")
	return app.Listen(":" + cfg.Port)
}
