package metrics

import (
	"context"
	"testing"
	"time"
)

func TestServe_ReturnsShutdownableServer(t *testing.T) {
	srv := Serve("127.0.0.1:0")
	if srv == nil {
		t.Fatal("Serve should hand back the server for shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}
