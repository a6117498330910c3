package textris

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/session"
)

const (
	cellWidth  = 3  // " A " per column
	hudHeight  = 3  // title, score, blank
	sideWidth  = 14 // next-letter and word panel
	sideGap    = 2
	maxWordsUI = 6 // words listed in the side panel
)

var (
	styleFrame   = core.Style{Color: core.ColorBlue}
	styleTitle   = core.Style{Color: core.ColorBrightCyan, Bold: true}
	styleLetter  = core.Style{Color: core.ColorWhite}
	styleActive  = core.Style{Color: core.ColorBrightYellow, Bold: true}
	styleFlash   = core.Style{Color: core.ColorGreen, Bold: true, Reverse: true}
	styleDim     = core.Style{Color: core.ColorGray}
	styleWord    = core.Style{Color: core.ColorGreen}
	styleOverlay = core.Style{Color: core.ColorOrange, Bold: true}
)

// boardSize returns the framed board size in cells.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Columns*cellWidth + 2, g.cfg.Board.Rows + 2
}

// minSize is the smallest screen that fits the HUD, the board and the side panel.
func (g *Game) minSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw + sideGap + sideWidth, hudHeight + bh + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.sess == nil {
		g.renderLoadError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	v := g.sess.View()
	bw, bh := g.boardSize()
	totalW := bw + sideGap + sideWidth
	boardRect := core.NewRect((g.screenW-totalW)/2, hudHeight, bw, bh)

	g.renderHUD(dst, v, boardRect, totalW)
	g.renderBoard(dst, v, boardRect)
	g.renderSide(dst, v, core.NewRect(boardRect.Right()+sideGap, boardRect.Y, sideWidth, bh))
	g.renderOverlays(dst, v, boardRect)
}

// renderLoadError explains why no game is running.
func (g *Game) renderLoadError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Textris could not start", styleOverlay)
	if g.err != nil {
		dst.DrawTextCentered(y, g.err.Error(), core.Style{})
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", styleOverlay)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.Style{})
	dst.DrawTextCentered(y+1, "Please resize terminal", styleDim)
}

// renderHUD draws the title and score.
func (g *Game) renderHUD(dst *core.Screen, v session.View, boardRect core.Rect, totalW int) {
	title := "T E X T R I S"
	dst.DrawTextStyled(boardRect.X+(totalW-len(title))/2, 0, title, styleTitle)

	dst.DrawText(boardRect.X, 1, fmt.Sprintf("Score: %d", v.Score))

	hint := "space drop  p pause"
	dst.DrawTextStyled(boardRect.X, boardRect.Bottom(), hint, styleDim)
}

// renderBoard draws the frame, settled letters, the falling tile and any
// flashing words.
func (g *Game) renderBoard(dst *core.Screen, v session.View, r core.Rect) {
	dst.DrawBox(r, styleFrame)

	inner := r.Inset(1)
	cellX := func(col int) int { return inner.X + col*cellWidth + cellWidth/2 }

	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Columns; col++ {
			letter := v.Letter(col, row)
			if letter == 0 {
				dst.SetStyled(cellX(col), inner.Y+row, '·', styleDim)
				continue
			}
			st := styleLetter
			if v.Active != nil && v.Active.Column == col && v.Active.Row == row {
				st = styleActive
			}
			dst.SetStyled(cellX(col), inner.Y+row, unicode.ToUpper(letter), st)
		}
	}

	if g.flash.visible() {
		for _, c := range g.flash.cells {
			x := cellX(c.Pos.Column)
			y := inner.Y + c.Pos.Row
			dst.SetStyled(x-1, y, ' ', styleFlash)
			dst.SetStyled(x, y, unicode.ToUpper(c.Letter), styleFlash)
			dst.SetStyled(x+1, y, ' ', styleFlash)
		}
	}
}

// renderSide draws the next-letter preview and the recent words.
func (g *Game) renderSide(dst *core.Screen, v session.View, r core.Rect) {
	dst.DrawText(r.X, r.Y, "Next")
	next := core.NewRect(r.X, r.Y+1, 5, 3)
	dst.DrawBox(next, styleFrame)
	if v.Next != 0 {
		dst.SetStyled(next.X+2, next.Y+1, unicode.ToUpper(v.Next), styleActive)
	}

	y := next.Bottom() + 1
	dst.DrawText(r.X, y, "Words")
	words := g.words
	if len(words) > maxWordsUI {
		words = words[len(words)-maxWordsUI:]
	}
	for i := len(words) - 1; i >= 0; i-- {
		y++
		if y >= r.Bottom() {
			break
		}
		dst.DrawTextStyled(r.X+1, y, strings.ToUpper(words[i]), styleWord)
	}
}

// renderOverlays draws the paused and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, v session.View, boardRect core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, boardRect, "PAUSED", "P to resume")
	case v.State == session.StateGameOver:
		g.drawOverlay(dst, boardRect, "GAME OVER", fmt.Sprintf("Score %d", v.Score), "R to restart")
	}
}

// drawOverlay draws centered lines in a box over the board.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, styleOverlay)
	for i, line := range lines {
		dst.DrawTextStyled(box.X+(box.W-len(line))/2, box.Y+1+i, line, styleOverlay)
	}
}
