package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/lueurxax/forward-list/internal/checker"
	"github.com/lueurxax/forward-list/internal/listmetrics"
	"github.com/lueurxax/forward-list/internal/log"
	"github.com/lueurxax/forward-list/pkg/forwardlist"
)

var version = "dev"

type config struct {
	LoggerLevel logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs    bool         `envconfig:"LOG_TO_ECS" default:"false"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	checkCfg := checker.GetConfig()

	// init logger
	logger := log.NewLogger(log.NewLogrus(cfg.LoggerLevel, cfg.LogToEcs))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics, err := listmetrics.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}

	c, err := checker.NewChecker(
		checkCfg,
		checker.NewRandGenerator(checkCfg.Seed),
		logger.WithField(log.PkgKey, "checker"),
	)
	if err != nil {
		panic(err)
	}

	logger.WithFields(map[string]interface{}{
		"size":      checkCfg.Size,
		"seed":      checkCfg.Seed,
		"reversals": checkCfg.Reversals,
		"pops":      checkCfg.Pops,
	}).Info("starting check")

	list := listmetrics.NewMetricMiddleware("check", forwardlist.New[int](), metrics)

	report, err := c.Run(ctx, list)

	if checkCfg.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(checkCfg.MetricsFile, prometheus.DefaultGatherer); werr != nil {
			logger.WithError(werr).Error("write metrics")
		}
	}

	if err != nil {
		logger.WithError(err).Error("check failed")
		stop()
		os.Exit(1)
	}

	data, err := jsoniter.MarshalToString(report)
	if err != nil {
		panic(err)
	}

	fmt.Println(data)
}
