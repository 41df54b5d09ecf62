package transport

import "testing"

func TestSnapshotMetricsObserveAndForget(t *testing.T) {
	metrics := NewSnapshotMetrics()
	dropped := map[RowKind]int{CarRow: 2}
	metrics.Observe("consumer-1", 128, dropped)

	bytes := metrics.BytesPerConsumer()
	if bytes["consumer-1"] != 128 {
		t.Fatalf("unexpected bytes recorded: %+v", bytes)
	}

	counts := metrics.DropCounts()
	if counts[CarRow] != 2 {
		t.Fatalf("unexpected drop counts: %+v", counts)
	}

	metrics.ForgetConsumer("consumer-1")
	if remaining := metrics.BytesPerConsumer(); len(remaining) != 0 {
		t.Fatalf("expected consumer removal, got %+v", remaining)
	}
}

func TestRowKindString(t *testing.T) {
	cases := map[RowKind]string{BallRow: "ball", CarRow: "car", PadRow: "pad"}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("RowKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
