package handler

import (
	"os"
	"testing"

	"gym-service/pkg/config"
	"gym-service/prometheus"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}
