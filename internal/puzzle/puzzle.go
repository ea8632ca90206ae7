package puzzle

import (
	"math/rand"
	"slices"
)

// Puzzle is one animal challenge: the word to spell, the letters the player
// is given, and the image shown while the round is played.
type Puzzle struct {
	Word    string
	Jumbled []rune
	Image   string
}

// Letters returns a copy of the jumbled letters.
func (p Puzzle) Letters() []rune {
	return slices.Clone(p.Jumbled)
}

// Len is the number of slots a round for this puzzle has.
func (p Puzzle) Len() int {
	return len([]rune(p.Word))
}

// Defaults returns the built-in animal puzzles.
func Defaults() []Puzzle {
	return []Puzzle{
		{Word: "dog", Jumbled: []rune("gdo"), Image: "dog.png"},
		{Word: "cat", Jumbled: []rune("tac"), Image: "cat.png"},
		{Word: "tiger", Jumbled: []rune("ietgr"), Image: "tiger.png"},
		{Word: "zebra", Jumbled: []rune("abezr"), Image: "zebra.png"},
		{Word: "monkey", Jumbled: []rune("mkyoen"), Image: "monkey.png"},
		{Word: "horse", Jumbled: []rune("soehr"), Image: "horse.png"},
	}
}

// NewDeck returns a shuffled copy of puzzles. The input is left untouched.
// A nil rng uses the package-level source.
func NewDeck(puzzles []Puzzle, rng *rand.Rand) []Puzzle {
	deck := make([]Puzzle, len(puzzles))
	for i, p := range puzzles {
		deck[i] = Puzzle{Word: p.Word, Jumbled: p.Letters(), Image: p.Image}
	}

	swap := func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	}
	if rng != nil {
		rng.Shuffle(len(deck), swap)
	} else {
		rand.Shuffle(len(deck), swap)
	}
	return deck
}

// Scramble shuffles the letters of word. For words with at least two distinct
// letters the result never spells the word itself.
func Scramble(word string, rng *rand.Rand) []rune {
	letters := []rune(word)
	if !hasDistinct(letters) {
		return letters
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	for {
		shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if string(letters) != word {
			return letters
		}
	}
}

// IsPermutation reports whether letters holds exactly the runes of word.
func IsPermutation(word string, letters []rune) bool {
	want := []rune(word)
	if len(want) != len(letters) {
		return false
	}
	a := slices.Clone(want)
	b := slices.Clone(letters)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func hasDistinct(letters []rune) bool {
	for _, r := range letters[min(1, len(letters)):] {
		if r != letters[0] {
			return true
		}
	}
	return false
}
