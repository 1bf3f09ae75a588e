package tuitest

import "testing"

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst   \r\n\x1b[1mbold\x1b[0m\r\n\r\n\x1b[2J\x1b[Hsecond")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(frames))
	}
	if frames[0].Plain != "first\nbold" {
		t.Fatalf("first frame = %q", frames[0].Plain)
	}
	if frames[1].Index != 1 || frames[1].Plain != "second" {
		t.Fatalf("second frame = %+v", frames[1])
	}
}

func TestRecordingLookups(t *testing.T) {
	rec := &Recording{Raw: []byte("\x1b[32mAgende\x1b[0m Facilmente")}
	rec.Frames = parseFrames(rec.Raw)

	if !rec.Contains("Agende Facilmente") {
		t.Fatal("Contains should ignore escape sequences")
	}
	if _, ok := rec.FrameContaining("Facilmente"); !ok {
		t.Fatal("FrameContaining should find the frame")
	}
	if _, ok := rec.FrameContaining("missing"); ok {
		t.Fatal("FrameContaining matched missing text")
	}

	var empty *Recording
	if _, ok := empty.FinalFrame(); ok {
		t.Fatal("nil recording has no frames")
	}
}
