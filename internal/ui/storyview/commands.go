package storyview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/reel/internal/playback"
)

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. onResult receives the value and a boolean
// indicating if the channel is still open.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

func waitForSnapshot(sub *playback.Subscription) tea.Cmd {
	return waitForChannel(sub.SnapshotChanged, func(c playback.SnapshotChange, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return snapshotMsg{change: c}
	})
}

func waitForCurrent(sub *playback.Subscription) tea.Cmd {
	return waitForChannel(sub.CurrentChanged, func(c playback.CurrentChange, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return currentMsg{change: c}
	})
}

func waitForFinished(sub *playback.Subscription) tea.Cmd {
	return waitForChannel(sub.Finished, func(_ playback.FinishedEvent, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return finishedMsg{}
	})
}

func waitForError(sub *playback.Subscription) tea.Cmd {
	return waitForChannel(sub.Error, func(e playback.ErrorEvent, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return errorMsg{event: e}
	})
}

func waitForDone(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		<-sub.Done
		return subscriptionDoneMsg{}
	}
}
