package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codewandler/actorcore/actor"
	"github.com/codewandler/actorcore/chameneos"
	"github.com/codewandler/actorcore/metrics"
)

const (
	defaultMeetings = 10_000
	promAddr        = ":2121"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	meetings := defaultMeetings
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "chameneos: invalid meeting count %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		meetings = n
	}

	reg := prometheus.NewRegistry()
	actorMetrics := metrics.NewActorMetrics(reg)

	promMux := http.NewServeMux()
	promMux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	promServer := &http.Server{Addr: promAddr, Handler: promMux}
	go func() {
		log.Info("prometheus metrics server starting", slog.String("addr", promAddr))
		if err := promServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("prometheus server error", slog.Any("error", err))
		}
	}()
	defer promServer.Shutdown(context.Background())

	chameneos.RunDemo(meetings, os.Stdout, actor.Options{Logger: log, Metrics: actorMetrics})
}
