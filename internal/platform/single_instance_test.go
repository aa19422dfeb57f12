package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func uniqueName(t *testing.T) string {
	return fmt.Sprintf("waterbalance-test-%s-%d", t.Name(), time.Now().UnixNano())
}

func TestAcquireSingleInstance_SecondFails(t *testing.T) {
	name := uniqueName(t)
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port for %s unavailable: %v", name, err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire error = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestActivateRunning_ReachesServe(t *testing.T) {
	name := uniqueName(t)
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port for %s unavailable: %v", name, err)
	}
	defer guard.Release()

	activated := make(chan struct{}, 1)
	go guard.Serve(func() { activated <- struct{}{} })

	if err := ActivateRunning(name); err != nil {
		t.Fatalf("ActivateRunning: %v", err)
	}
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestPortFromName_StableAndInRange(t *testing.T) {
	first := portFromName("WaterBalance")
	if first != portFromName("WaterBalance") {
		t.Error("port should be deterministic")
	}
	if first < 20000 || first > 39999 {
		t.Errorf("port %d out of range", first)
	}
	var nilGuard *InstanceGuard
	if nilGuard.Address() != "" || nilGuard.Release() != nil {
		t.Error("nil guard should be inert")
	}
}
