package puzzle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var separatorRe = regexp.MustCompile(`(?m)^-{3,}[ \t]*$`)

// Load reads puzzles from a list of paths (files or directories).
// Each file holds one or more blocks separated by a line of 3+ dashes:
//
//	WORD: dog
//	JUMBLED: gdo
//	IMAGE: dog.png
//
// JUMBLED is optional; a scramble of WORD is used when it is missing.
func Load(paths []string) ([]Puzzle, error) {
	var puzzles []Puzzle

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			p, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			puzzles = append(puzzles, p...)
			continue
		}

		files, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
		}
		for _, entry := range files {
			if entry.IsDir() {
				continue
			}
			p, err := loadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			puzzles = append(puzzles, p...)
		}
	}

	return puzzles, nil
}

func loadFile(path string) ([]Puzzle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		b.WriteString(scanner.Text() + "\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	var puzzles []Puzzle
	for i, block := range separatorRe.Split(b.String(), -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		p, err := parseBlock(block)
		if err != nil {
			return nil, fmt.Errorf("%s: puzzle %d: %w", path, i+1, err)
		}
		puzzles = append(puzzles, p)
	}

	return puzzles, nil
}

func parseBlock(block string) (Puzzle, error) {
	var p Puzzle
	var jumbled string

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Puzzle{}, fmt.Errorf("malformed line %q", line)
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "WORD":
			p.Word = value
		case "JUMBLED":
			jumbled = value
		case "IMAGE":
			p.Image = value
		default:
			return Puzzle{}, fmt.Errorf("unknown key %q", key)
		}
	}

	if p.Word == "" {
		return Puzzle{}, fmt.Errorf("missing WORD")
	}
	if jumbled == "" {
		p.Jumbled = Scramble(p.Word, nil)
	} else {
		p.Jumbled = []rune(jumbled)
	}
	if !IsPermutation(p.Word, p.Jumbled) {
		return Puzzle{}, fmt.Errorf("jumbled letters %q do not match word %q", jumbled, p.Word)
	}
	return p, nil
}
