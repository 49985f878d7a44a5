package worker

import (
	"sync"
	"testing"
	"time"
)

func TestSubmitSurvivesPanic(t *testing.T) {
	for i := 0; i < 32; i++ {
		Submit(func() { panic("boom") })
	}

	var wg sync.WaitGroup
	wg.Add(1)
	Submit(wg.Done)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not run after panicking jobs")
	}
}
