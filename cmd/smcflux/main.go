package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"codeberg.org/mparkin/smcflux/internal/collector"
	"codeberg.org/mparkin/smcflux/internal/config"
	"codeberg.org/mparkin/smcflux/internal/errors"
	"codeberg.org/mparkin/smcflux/internal/logger"
	"codeberg.org/mparkin/smcflux/internal/metrics"
	"codeberg.org/mparkin/smcflux/internal/smc"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) && appErr.Code() == errors.ErrHelpRequested {
			fmt.Fprint(os.Stderr, config.Usage())
			return 2
		}

		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, config.Usage())
		return 2
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// One timestamp for the whole run, captured before any read so every
	// line reports the same snapshot time.
	timestamp := time.Now().UnixNano()

	host := ""
	if cfg.Hostname {
		host = collector.HostTag()
	}

	recorder, err := metrics.NewService(metrics.Config{
		Enabled: cfg.Metrics,
		DBPath:  cfg.Database,
	}, logger.Default())
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize readings archive")
		return 1
	}

	conn, err := smc.Open()
	if err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.ErrorWithCode(appErr).Msg("failed to open SMC")
		} else {
			logger.Error().Err(err).Msg("failed to open SMC")
		}
		recorder.Close()
		return 1
	}

	col := collector.New(conn, os.Stdout, recorder, logger.Default(), collector.Options{
		Host:      host,
		Timestamp: timestamp,
	})
	col.Run(context.Background(), collector.Selection{
		CPU:        cfg.CPU,
		GPU:        cfg.GPU,
		WiFi:       cfg.WiFi,
		SSD:        cfg.SSD,
		Fans:       cfg.Fans,
		Everything: cfg.Everything,
	})

	if err := conn.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close SMC connection")
	}
	if err := recorder.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close readings archive")
	}

	return 0
}
