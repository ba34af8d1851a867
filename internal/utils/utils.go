package utils

import (
	"sweaters/internal/utils/deck"
)

type Utils struct {
	Deck interface {
		Initialize(suits []string) map[string][]string
	}
}

func New(src deck.Source) *Utils {
	return &Utils{
		Deck: deck.New(src),
	}
}
