package nothofagus

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key identifies a keyboard key the Controller can react to.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	Key1
	Key2
	Key3
	Key4
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	KeyEnter
	keyCount
)

var keyNames = [keyCount]string{
	"W", "A", "S", "D", "Q", "E",
	"1", "2", "3", "4",
	"Left", "Right", "Up", "Down",
	"Space", "Escape", "Enter",
}

var ebitenKeys = [keyCount]ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyQ, ebiten.KeyE,
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyEnter,
}

// String returns the key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey returns the key named s, as produced by Key.String.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if name == s {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// keyFromEbiten maps an ebiten key to a Key, if it has one.
func keyFromEbiten(ek ebiten.Key) (Key, bool) {
	for k, e := range ebitenKeys {
		if e == ek {
			return Key(k), true
		}
	}
	return 0, false
}

// DiscreteTrigger distinguishes a key press from a key release.
type DiscreteTrigger uint8

const (
	Press DiscreteTrigger = iota
	Release
)

// String returns "Press" or "Release".
func (t DiscreteTrigger) String() string {
	if t == Release {
		return "Release"
	}
	return "Press"
}

// KeyboardTrigger is a discrete key event.
type KeyboardTrigger struct {
	Key     Key
	Trigger DiscreteTrigger
}

// keyPoller turns ebiten key state into discrete press/release triggers.
type keyPoller struct {
	keys []ebiten.Key
}

// poll appends this tick's presses, then releases, to dst.
func (p *keyPoller) poll(dst []KeyboardTrigger) []KeyboardTrigger {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, ek := range p.keys {
		if k, ok := keyFromEbiten(ek); ok {
			dst = append(dst, KeyboardTrigger{k, Press})
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, ek := range p.keys {
		if k, ok := keyFromEbiten(ek); ok {
			dst = append(dst, KeyboardTrigger{k, Release})
		}
	}
	return dst
}
