package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/reel/internal/config"
	"github.com/example/reel/internal/errmsg"
	"github.com/example/reel/internal/media"
	"github.com/example/reel/internal/playback"
	"github.com/example/reel/internal/shown"
	"github.com/example/reel/internal/ui/storyview"
)

type session struct {
	store  shown.Store
	player *media.Sim
	ctrl   playback.Service
	model  *storyview.Model
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var store *shown.Manager
	if cfg.DBPath != "" {
		store, err = shown.OpenPath(cfg.DBPath)
	} else {
		store, err = shown.Open()
	}
	if err != nil {
		return nil, err
	}

	data := buildData(cfg)

	// Prune records of stories no longer in the deck. Pruning is
	// advisory: stale records only cost space, so a failure never
	// blocks the session.
	keepIDs := make([]string, 0, len(data.Stories))
	for _, s := range data.Stories {
		keepIDs = append(keepIDs, s.ID)
	}
	if err := store.Actualize(keepIDs); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpShownActualize, err))
	}

	player := media.NewSim(
		time.Duration(cfg.Video.PrepDelayMs)*time.Millisecond,
		time.Duration(cfg.Video.DurationMs)*time.Millisecond,
	)

	ctrl := playback.New(store, player)
	ctrl.Init(data)

	animator := playback.NewAnimator(time.Duration(cfg.TickMs) * time.Millisecond)

	return &session{
		store:  store,
		player: player,
		ctrl:   ctrl,
		model:  storyview.New(ctrl, animator),
	}, nil
}

// buildData converts the configured deck into session input, falling
// back to a small demo deck when none is configured.
func buildData(cfg *config.Config) playback.Data {
	defaultDuration := time.Duration(cfg.SlideDurationMs) * time.Millisecond

	if len(cfg.Stories) == 0 {
		return demoData(defaultDuration)
	}

	data := playback.Data{TargetID: cfg.TargetStory}
	for _, story := range cfg.Stories {
		sd := playback.StoryData{ID: story.ID}
		for _, slide := range story.Slides {
			d := time.Duration(slide.DurationMs) * time.Millisecond
			if !slide.Video && d <= 0 {
				d = defaultDuration
			}
			if slide.Video {
				// Video duration always arrives from the player.
				d = 0
			}
			sd.Slides = append(sd.Slides, playback.SlideData{
				Duration: d,
				Video:    slide.Video,
				URL:      slide.URL,
			})
		}
		data.Stories = append(data.Stories, sd)
	}
	if data.TargetID == "" && len(data.Stories) > 0 {
		data.TargetID = data.Stories[0].ID
	}
	return data
}

func demoData(slideDuration time.Duration) playback.Data {
	return playback.Data{
		TargetID: "aurora",
		Stories: []playback.StoryData{
			{
				ID: "aurora",
				Slides: []playback.SlideData{
					{Duration: slideDuration},
					{Duration: slideDuration},
					{Duration: slideDuration},
				},
			},
			{
				ID: "meridian",
				Slides: []playback.SlideData{
					{Duration: slideDuration},
					{Video: true, URL: "demo://meridian/clip"},
				},
			},
			{
				ID: "harbor",
				Slides: []playback.SlideData{
					{Duration: slideDuration},
					{Duration: slideDuration},
				},
			},
		},
	}
}

func (s *session) close() {
	s.ctrl.Close()
	s.player.Close()
	s.store.Close()
}

func main() {
	s, err := newSession()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
	defer s.close()

	p := tea.NewProgram(s.model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
