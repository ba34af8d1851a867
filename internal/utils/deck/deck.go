package deck

import "math/rand"

// naipes e valores padrão do baralho
var (
	Suits = []string{"Hearts", "Diamonds", "Clubs", "Spades"}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Source fornece inteiros uniformes em [0, n).
type Source interface {
	Intn(n int) int
}

// fonte global do math/rand, segura para uso concorrente
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

type Deck struct {
	src Source
}

// New cria um gerador; src nil usa a fonte global.
func New(src Source) *Deck {
	if src == nil {
		src = globalSource{}
	}
	return &Deck{src: src}
}

// Shuffle embaralha cards no lugar (Fisher-Yates, do último índice até 1).
func Shuffle(src Source, cards []string) []string {
	for i := len(cards) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}

// Initialize monta um baralho com uma permutação independente dos valores por naipe.
func (d *Deck) Initialize(suits []string) map[string][]string {
	if len(suits) == 0 {
		suits = Suits
	}
	cards := make(map[string][]string, len(suits))
	for _, suit := range suits {
		values := make([]string, len(Ranks))
		copy(values, Ranks)
		cards[suit] = Shuffle(d.src, values)
	}
	return cards
}
