package nclink

import (
	"errors"
	"testing"
)

func TestValidateTree(t *testing.T) {
	dev := buildLathe(t)
	if err := dev.ValidateTree(); err != nil {
		t.Fatalf("ValidateTree() error = %v, want nil", err)
	}

	bad := NewSampleChannel("sc-2", "SLOW", "Slow")
	bad.SampleInterval, bad.UploadInterval = 2000, 1000
	bad.SetParent(dev)
	mustAdd(t, dev.AddSampleChannel(bad))

	orphan := NewDataItem("di-9", "ORPHAN", "Orphan")
	mustAdd(t, dev.AddDataItem(orphan))

	err := dev.ValidateTree()
	if !errors.Is(err, ErrInvalidNode) {
		t.Fatalf("ValidateTree() error = %v, want ErrInvalidNode", err)
	}
	if joined, ok := err.(interface{ Unwrap() []error }); !ok || len(joined.Unwrap()) != 2 {
		t.Errorf("ValidateTree() should report both invalid nodes, got %v", err)
	}
}

func TestCheckGlobalUniqueness(t *testing.T) {
	dev := buildLathe(t)
	if err := dev.CheckGlobalUniqueness(); err != nil {
		t.Fatalf("CheckGlobalUniqueness() error = %v, want nil", err)
	}

	// Same id as a component-level config, in the device-level data item registry.
	clash := NewDataItem("cfg-2", "CLASH", "Clash")
	clash.SetParent(dev)
	if err := dev.AddDataItem(clash); err != nil {
		t.Fatalf("AddDataItem() error = %v (registries are local)", err)
	}

	if err := dev.CheckGlobalUniqueness(); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("CheckGlobalUniqueness() error = %v, want ErrDuplicateID", err)
	}
}

func TestResolveSamplePoints(t *testing.T) {
	dev := buildLathe(t)
	dev.CollectNodes()

	if err := dev.ResolveSamplePoints(); err != nil {
		t.Fatalf("ResolveSamplePoints() error = %v", err)
	}
	sc, _ := dev.SampleChannels().Get("sc-1")
	if sc.SamplePoints().Len() != 2 {
		t.Errorf("SamplePoints().Len() = %d, want 2", sc.SamplePoints().Len())
	}

	// Second pass skips resolved members.
	if err := dev.ResolveSamplePoints(); err != nil {
		t.Errorf("second ResolveSamplePoints() error = %v", err)
	}

	mustAdd(t, sc.AddSamplePointID("ghost"))
	mustAdd(t, sc.AddSamplePointID("cp-1"))
	err := dev.ResolveSamplePoints()
	if !errors.Is(err, ErrUnknownID) {
		t.Errorf("ResolveSamplePoints() error = %v, want ErrUnknownID", err)
	}
	if !errors.Is(err, ErrInvalidMember) {
		t.Errorf("ResolveSamplePoints() error = %v, want ErrInvalidMember", err)
	}
}
