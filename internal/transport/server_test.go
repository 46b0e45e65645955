package transport

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/psstoyanov/sc-controller/api/proto/v1"
)

type fakeDaemon struct {
	active   string
	applyErr error
	slots    map[string]bool
	lastSens [3]float64
}

func (d *fakeDaemon) ActiveProfile() string { return d.active }
func (d *fakeDaemon) ApplyProfile(yaml []byte) (string, error) {
	if d.applyErr != nil {
		return "", d.applyErr
	}
	d.active = "applied"
	return d.active, nil
}
func (d *fakeDaemon) SetSensitivity(slot string, x, y, z float64) bool {
	if !d.slots[slot] {
		return false
	}
	d.lastSens = [3]float64{x, y, z}
	return true
}

func TestPingReportsActiveProfile(t *testing.T) {
	svc := &controlService{daemon: &fakeDaemon{active: "default"}}
	reply, err := svc.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if reply.GetStatus() != "ok: default" {
		t.Fatalf("status = %q", reply.GetStatus())
	}
}

func TestLoadProfileSwapsAndReportsName(t *testing.T) {
	d := &fakeDaemon{}
	svc := &controlService{daemon: d}
	reply, err := svc.LoadProfile(context.Background(), &pb.LoadProfileRequest{Yaml: "name: x"})
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if reply.GetName() != "applied" || d.active != "applied" {
		t.Fatalf("name = %q, active = %q", reply.GetName(), d.active)
	}
}

func TestLoadProfileMapsErrorsToInvalidArgument(t *testing.T) {
	svc := &controlService{daemon: &fakeDaemon{applyErr: errors.New("bad yaml")}}
	_, err := svc.LoadProfile(context.Background(), &pb.LoadProfileRequest{Yaml: "{"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestSetSensitivity(t *testing.T) {
	d := &fakeDaemon{slots: map[string]bool{"ABS_X": true}}
	svc := &controlService{daemon: d}

	reply, err := svc.SetSensitivity(context.Background(), &pb.SetSensitivityRequest{Slot: "ABS_X", X: 2})
	if err != nil || !reply.GetOk() {
		t.Fatalf("SetSensitivity: %v, ok=%v", err, reply.GetOk())
	}
	if d.lastSens != [3]float64{2, 0, 0} {
		t.Fatalf("sens = %v", d.lastSens)
	}

	_, err = svc.SetSensitivity(context.Background(), &pb.SetSensitivityRequest{Slot: "ABS_RY", X: 2})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", status.Code(err))
	}
}
