package textris

import "github.com/vovakirdan/textris/internal/board"

// flashCell is one letter of a cleared word drawn at its old position.
type flashCell struct {
	Pos    board.Position
	Letter rune
}

// flash tracks the cleared-word highlight. Cells are collected from events
// during a frame and the countdown starts once the frame is done.
type flash struct {
	cells     []flashCell
	remaining int
	pending   bool
}

func (f *flash) add(m board.WordMatch) {
	letters := []rune(m.Word)
	for i, pos := range m.Positions() {
		f.cells = append(f.cells, flashCell{Pos: pos, Letter: letters[i]})
	}
	f.pending = true
}

func (f *flash) active() bool {
	return f.remaining > 0
}

// visible reports whether the highlight is drawn this frame; it blinks
// every few frames.
func (f *flash) visible() bool {
	return f.active() && (f.remaining/flashBlinkFrames)%2 == 0
}

const flashBlinkFrames = 3

// startFlash holds the session busy while words collected this frame are
// shown. With a zero flash duration the words vanish immediately.
func (g *Game) startFlash() {
	if !g.flash.pending {
		return
	}
	g.flash.pending = false
	if g.flashFrames == 0 {
		g.flash = flash{}
		return
	}
	g.flash.remaining = g.flashFrames
	g.sess.SetBusy(true)
}

// updateFlash counts down the highlight and releases the session when done.
func (g *Game) updateFlash() {
	g.flash.remaining--
	if g.flash.remaining > 0 {
		return
	}
	g.flash = flash{}
	g.sess.SetBusy(false)
}
