package nclink

import "testing"

// buildLathe assembles a small device tree:
//
//	CNC1
//	├── SAMPLE          (sc-1)
//	├── MACHINE_TYPE    (cfg-1)
//	├── STATUS          (di-1)
//	└── AXES            (cp-1)
//	    ├── FEED_MAX    (cfg-2)
//	    └── AXIS@0      (cp-2)
//	        └── POSITION (di-2)
func buildLathe(t *testing.T) *Device {
	t.Helper()

	dev := NewDevice("dev-1", "CNC1", "Lathe", "1.0")
	dev.SetDevGUID("guid-1")

	sc := NewSampleChannel("sc-1", "SAMPLE", "Fast")
	sc.SampleInterval, sc.UploadInterval = 100, 1000
	sc.SetParent(dev)
	mustAdd(t, dev.AddSampleChannel(sc))

	cfg := NewConfig("cfg-1", "MACHINE_TYPE", "Machine type")
	cfg.SetParent(dev)
	mustAdd(t, dev.AddConfig(cfg))

	di := NewDataItem("di-1", "STATUS", "Status")
	di.SetParent(dev)
	mustAdd(t, dev.AddDataItem(di))

	axes := NewComponent("cp-1", "AXES", "Axes")
	axes.SetParent(dev)
	mustAdd(t, dev.AddComponent(axes))

	feed := NewConfig("cfg-2", "FEED_MAX", "Max feed")
	feed.SetParent(axes)
	mustAdd(t, axes.AddConfig(feed))

	axis := NewComponent("cp-2", "AXIS", "X axis")
	axis.SetNumber("0")
	axis.SetParent(axes)
	mustAdd(t, axes.AddComponent(axis))

	pos := NewDataItem("di-2", "POSITION", "Position")
	pos.SetParent(axis)
	mustAdd(t, axis.AddDataItem(pos))

	mustAdd(t, sc.AddSamplePointID("di-1"))
	mustAdd(t, sc.AddSamplePointID("di-2"))

	return dev
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
