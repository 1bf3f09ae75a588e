package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name       string
		maxFrame   int
		width      int
		height     int
		frameWidth int
		bodyWidth  int
		bodyHeight int
	}{
		{name: "wide terminal caps the frame", maxFrame: 56, width: 120, height: 40, frameWidth: 56, bodyWidth: 52, bodyHeight: 36},
		{name: "narrow terminal shrinks the frame", maxFrame: 56, width: 40, height: 20, frameWidth: 40, bodyWidth: 36, bodyHeight: 16},
		{name: "tiny terminal keeps minimums", maxFrame: 56, width: 20, height: 5, frameWidth: 32, bodyWidth: 28, bodyHeight: 6},
		{name: "unset max falls back to default", maxFrame: 0, width: 120, height: 40, frameWidth: 56, bodyWidth: 52, bodyHeight: 36},
		{name: "custom max", maxFrame: 80, width: 120, height: 40, frameWidth: 80, bodyWidth: 76, bodyHeight: 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout(tc.maxFrame)
			layout.Update(tc.width, tc.height)
			if layout.frameWidth != tc.frameWidth {
				t.Fatalf("frame width mismatch: got %d want %d", layout.frameWidth, tc.frameWidth)
			}
			if layout.bodyWidth != tc.bodyWidth {
				t.Fatalf("body width mismatch: got %d want %d", layout.bodyWidth, tc.bodyWidth)
			}
			if layout.bodyHeight != tc.bodyHeight {
				t.Fatalf("body height mismatch: got %d want %d", layout.bodyHeight, tc.bodyHeight)
			}
		})
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	plain := lipgloss.NewStyle()
	cases := []struct {
		percent int
		filled  int
	}{
		{percent: -10, filled: 0},
		{percent: 0, filled: 0},
		{percent: 50, filled: 5},
		{percent: 70, filled: 7},
		{percent: 100, filled: 10},
		{percent: 150, filled: 10},
	}
	for _, tc := range cases {
		bar := progressBar(tc.percent, 10, plain, plain)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Fatalf("progressBar(%d) filled %d cells, want %d", tc.percent, got, tc.filled)
		}
		if got := lipgloss.Width(bar); got != 10 {
			t.Fatalf("progressBar(%d) width %d", tc.percent, got)
		}
	}
}

func TestCarouselDotsCount(t *testing.T) {
	if got := strings.Count(carouselDots(1, 5), "●"); got != 5 {
		t.Fatalf("dots = %d, want 5", got)
	}
}

func TestRenderCardWidth(t *testing.T) {
	for _, width := range []int{32, 52} {
		card := renderCard(cardStyle, width, "hello")
		if got := lipgloss.Width(card); got != width {
			t.Fatalf("card width = %d, want %d", got, width)
		}
	}
}

func TestStackKeepsSpacers(t *testing.T) {
	if got := stack("a", "", "b"); got != "a\n\nb" {
		t.Fatalf("stack = %q", got)
	}
	if got := joinNonEmpty([]string{"a", " ", "b"}); got != "a\nb" {
		t.Fatalf("joinNonEmpty = %q", got)
	}
}

func TestContentBuilderTracksFocusSpan(t *testing.T) {
	cb := newContentBuilder()
	cb.Write("title", "")
	cb.WriteFocus("one", false)
	cb.WriteFocus("two\nlines", true)
	cb.Write("footer")
	view := cb.View()

	if view.content != stack("title", "", "one", "two\nlines", "footer") {
		t.Fatalf("content = %q", view.content)
	}
	if view.lines != 6 {
		t.Fatalf("lines = %d, want 6", view.lines)
	}
	if view.focusTop != 3 || view.focusBottom != 4 {
		t.Fatalf("focus span = %d..%d, want 3..4", view.focusTop, view.focusBottom)
	}
}

func TestStaticViewHasNoFocus(t *testing.T) {
	view := staticView("a\nb")
	if view.focusTop != -1 || view.lines != 2 {
		t.Fatalf("view = %+v", view)
	}
}
