package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	minFrameWidth     = 32
	defaultFrameWidth = 56
	// border and horizontal padding of frameStyle
	frameChromeWidth = 4
	// frame border rows plus the status bar and the help line
	chromeHeight  = 4
	minBodyHeight = 6
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	frameWidth   int
	bodyWidth    int
	bodyHeight   int
	maxFrame     int
}

func newPageLayout(maxFrame int) pageLayout {
	if maxFrame < minFrameWidth {
		maxFrame = defaultFrameWidth
	}
	l := pageLayout{maxFrame: maxFrame}
	l.Update(80, 24)
	return l
}

// Update fits the phone-shaped frame into a width x height terminal.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	frame := l.maxFrame
	if width < frame {
		frame = width
	}
	if frame < minFrameWidth {
		frame = minFrameWidth
	}
	l.frameWidth = frame
	l.bodyWidth = frame - frameChromeWidth
	l.bodyHeight = height - chromeHeight
	if l.bodyHeight < minBodyHeight {
		l.bodyHeight = minBodyHeight
	}
}

func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	return wordwrap.String(text, width)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n")
}

// geometricFooter draws the slanted blue band that closes most screens.
func geometricFooter(width int) string {
	if width <= 0 {
		return ""
	}
	ramp := []rune("▁▂▃▄▅▆▇█")
	var band, accent strings.Builder
	for i := 0; i < width; i++ {
		band.WriteRune(ramp[i*len(ramp)/width])
		accent.WriteRune(ramp[len(ramp)-1-i*len(ramp)/width])
	}
	ship := strings.Repeat(" ", max((width-1)/2, 0)) + "⛴"
	return joinNonEmpty([]string{
		ship,
		footerAccentStyle.Render(accent.String()),
		footerBandStyle.Render(band.String()),
	})
}

func carouselDots(active, total int) string {
	dots := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i == active {
			dots = append(dots, dotActiveStyle.Render("●"))
			continue
		}
		dots = append(dots, dotInactiveStyle.Render("●"))
	}
	return strings.Join(dots, " ")
}

func progressBar(percent, width int, fill, track lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return fill.Render(strings.Repeat("█", filled)) + track.Render(strings.Repeat("░", width-filled))
}

// renderCard draws body inside style so that the card is exactly width
// columns wide, border included.
func renderCard(style lipgloss.Style, width int, body string) string {
	return style.Copy().Width(width - style.GetHorizontalBorderSize()).Render(body)
}

// cardInner is the usable content width of a card drawn with style.
func cardInner(style lipgloss.Style, width int) int {
	return width - style.GetHorizontalFrameSize()
}

// stack joins rendered blocks top to bottom, keeping empty spacer lines.
func stack(parts ...string) string {
	return strings.Join(parts, "\n")
}

// displayView is a rendered page plus the line span of its focused control.
// focusTop is -1 when nothing on the page holds focus.
type displayView struct {
	content     string
	lines       int
	focusTop    int
	focusBottom int
}

// contentBuilder stacks blocks like stack and remembers where the focused
// block landed.
type contentBuilder struct {
	builder     strings.Builder
	lines       int
	focusTop    int
	focusBottom int
	started     bool
}

func newContentBuilder() *contentBuilder {
	return &contentBuilder{focusTop: -1, focusBottom: -1}
}

// Write appends blocks, one per line group.
func (cb *contentBuilder) Write(blocks ...string) {
	for _, block := range blocks {
		cb.write(block)
	}
}

// WriteFocus appends block and records its span when focused is true.
func (cb *contentBuilder) WriteFocus(block string, focused bool) {
	top := cb.write(block)
	if focused {
		cb.focusTop = top
		cb.focusBottom = cb.lines - 1
	}
}

func (cb *contentBuilder) write(block string) int {
	if cb.started {
		cb.builder.WriteByte('\n')
	}
	cb.started = true
	top := cb.lines
	cb.builder.WriteString(block)
	cb.lines += strings.Count(block, "\n") + 1
	return top
}

func (cb *contentBuilder) View() displayView {
	return displayView{
		content:     cb.builder.String(),
		lines:       cb.lines,
		focusTop:    cb.focusTop,
		focusBottom: cb.focusBottom,
	}
}

// staticView wraps content that has no focusable control.
func staticView(content string) displayView {
	cb := newContentBuilder()
	cb.Write(content)
	return cb.View()
}
