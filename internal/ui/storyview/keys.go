package storyview

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings standing in for the touch
// gestures of the original surface.
type keyMap struct {
	TapLeft    key.Binding
	TapRight   key.Binding
	SwipeLeft  key.Binding
	SwipeRight key.Binding
	Finger     key.Binding
	Toggle     key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		TapLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "tap left (previous)"),
		),
		TapRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "tap right (next)"),
		),
		SwipeLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "swipe back"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "swipe forward"),
		),
		Finger: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "press/release finger"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", "esc"),
			key.WithHelp("d", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
