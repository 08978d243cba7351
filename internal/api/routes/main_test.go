//go:build integration
// +build integration

package routes

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"devmatch-backend/internal/testutils"
)

// TestMain runs before all routes tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\nRoutes tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting routes integration tests...")
	code := m.Run()

	log.Println("Routes tests completed, cleaning up Docker containers...")
	testutils.CleanupSharedContainer()

	os.Exit(code)
}
