package testdata

import "git.lost.host/meutraa/funkin/internal/game"

// Chart returns the chart encoded in Data.
func Chart() *game.Chart {
	return &game.Chart{
		Song: game.Song{
			Name:        "Test",
			BPM:         150,
			Speed:       2.1,
			NeedsVoices: true,
			Player1:     "bf",
			Player2:     "whitty",
		},
		Sections: []game.Section{
			{
				MustHit:       false,
				LengthInSteps: 16,
				Notes: []game.NoteEvent{
					{TimeMs: 400, LaneCode: 0},
					{TimeMs: 800, LaneCode: 6},
					{TimeMs: 1200, LaneCode: 9},
				},
			},
			{
				MustHit:       true,
				LengthInSteps: 16,
				ChangeBPM:     true,
				BPM:           160,
				Notes: []game.NoteEvent{
					{TimeMs: 1600, LaneCode: 0},
					{TimeMs: 1600, LaneCode: 3},
					{TimeMs: 2000.5, LaneCode: 2},
				},
			},
			{
				MustHit:       true,
				LengthInSteps: 16,
			},
		},
	}
}
