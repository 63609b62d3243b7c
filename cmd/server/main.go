package main

import (
	"os"
	"os/signal"
	"syscall"

	"babysquares/internal/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewApp()
	if err != nil {
		logrus.Fatalf("babysquares: init failed: %v", err)
	}
	app.Start()

	// Ctrl+C 或容器停止时关闭 HTTP 服务、websocket 客户端和 Redis
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	logrus.Infof("Received %s, shutting down", <-sig)

	app.Shutdown()
}
