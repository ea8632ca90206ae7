package puzzle

import (
	"math/rand"
	"slices"
	"testing"
)

func TestDefaults(t *testing.T) {
	puzzles := Defaults()
	if len(puzzles) != 6 {
		t.Fatalf("Expected 6 puzzles, got %d", len(puzzles))
	}
	for _, p := range puzzles {
		if !IsPermutation(p.Word, p.Jumbled) {
			t.Errorf("Puzzle %q: jumbled %q is not a permutation", p.Word, string(p.Jumbled))
		}
		if p.Image == "" {
			t.Errorf("Puzzle %q has no image", p.Word)
		}
	}
}

func TestNewDeck_IsPermutation(t *testing.T) {
	puzzles := Defaults()
	want := words(puzzles)
	slices.Sort(want)

	for seed := int64(0); seed < 50; seed++ {
		deck := NewDeck(puzzles, rand.New(rand.NewSource(seed)))
		if len(deck) != len(puzzles) {
			t.Fatalf("seed %d: expected %d puzzles, got %d", seed, len(puzzles), len(deck))
		}
		got := words(deck)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Errorf("seed %d: deck %v is not a permutation of %v", seed, got, want)
		}
	}
}

func TestNewDeck_LeavesInputUntouched(t *testing.T) {
	puzzles := Defaults()
	before := words(puzzles)

	deck := NewDeck(puzzles, rand.New(rand.NewSource(7)))
	deck[0].Jumbled[0] = '!'

	if !slices.Equal(words(puzzles), before) {
		t.Error("NewDeck reordered its input")
	}
	for _, p := range puzzles {
		if slices.Contains(p.Jumbled, '!') {
			t.Errorf("Deck shares letters with input puzzle %q", p.Word)
		}
	}
}

func TestNewDeck_NilRand(t *testing.T) {
	deck := NewDeck(Defaults(), nil)
	if len(deck) != 6 {
		t.Errorf("Expected 6 puzzles, got %d", len(deck))
	}
}

func TestScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		got := Scramble("tiger", rng)
		if string(got) == "tiger" {
			t.Fatal("Scramble returned the word unchanged")
		}
		if !IsPermutation("tiger", got) {
			t.Fatalf("Scramble(%q) = %q, not a permutation", "tiger", string(got))
		}
	}

	if got := string(Scramble("aaa", rng)); got != "aaa" {
		t.Errorf("Scramble of a single repeated letter should be unchanged, got %q", got)
	}
	if got := Scramble("", rng); len(got) != 0 {
		t.Errorf("Scramble of empty word should be empty, got %q", string(got))
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		word    string
		letters string
		expect  bool
	}{
		{"dog", "gdo", true},
		{"dog", "dog", true},
		{"dog", "dgg", false},
		{"dog", "do", false},
		{"Dog", "dog", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := IsPermutation(tt.word, []rune(tt.letters)); got != tt.expect {
			t.Errorf("IsPermutation(%q, %q) = %v, expected %v", tt.word, tt.letters, got, tt.expect)
		}
	}
}

func TestPuzzle_Len(t *testing.T) {
	p := Puzzle{Word: "monkey"}
	if p.Len() != 6 {
		t.Errorf("Expected 6, got %d", p.Len())
	}
}

func words(puzzles []Puzzle) []string {
	out := make([]string, len(puzzles))
	for i, p := range puzzles {
		out[i] = p.Word
	}
	return out
}
