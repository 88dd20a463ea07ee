package parser

import "git.lost.host/meutraa/funkin/internal/game"

type Parser interface {
	// Load fetches and parses the chart at a path or URL
	Load(location string) (*game.Chart, error)
	Parse(location string, data []byte) (*game.Chart, error)
}
