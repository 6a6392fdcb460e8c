package anim

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// YearTicker keeps the year label on the top border and flashes the
// milestone phrase of each new year on the row above the bottom border.
// It completes when the ship crashes.
type YearTicker struct {
	year      int
	phrase    string
	flashLeft int
	phraseOn  bool
}

// NewYearTicker creates the year label task.
func NewYearTicker() *YearTicker {
	return &YearTicker{}
}

const labelCol = 2

// Label formats the year label.
func Label(year int) string {
	return fmt.Sprintf(" Year %d ", year)
}

// Step implements engine.Task.
func (t *YearTicker) Step(w *engine.World) engine.Status {
	if w.GameOver() {
		t.erasePhrase(w)
		return engine.Done
	}

	if w.Year != t.year {
		t.year = w.Year
		t.erasePhrase(w)
		if text, ok := w.Config.History.Phrases[w.Year]; ok && text != "" {
			t.phrase = text
			t.flashLeft = w.Config.History.FlashTicks
		}
	}

	w.Screen.DrawText(labelCol, 0, Label(t.year), core.AttrBold)

	switch {
	case t.flashLeft > 0:
		w.Screen.DrawText(1, t.phraseRow(w), t.phrase, core.AttrNormal)
		t.phraseOn = true
		t.flashLeft--
	case t.phraseOn:
		t.erasePhrase(w)
	}
	return engine.Running
}

// Phrase returns the phrase currently on screen, if any.
func (t *YearTicker) Phrase() string {
	if !t.phraseOn {
		return ""
	}
	return t.phrase
}

func (t *YearTicker) phraseRow(w *engine.World) int {
	return w.Screen.Height() - 2
}

func (t *YearTicker) erasePhrase(w *engine.World) {
	if !t.phraseOn {
		return
	}
	w.Screen.DrawFrame(t.phraseRow(w), 1, t.phrase, core.AttrNormal, true)
	t.phraseOn = false
	t.flashLeft = 0
}
