package ui

import (
	"path/filepath"
	"strings"
)

// art maps image refs of the built-in puzzles to a terminal drawing.
var art = map[string]string{
	"dog.png": `
  / \__
 (    @\___
 /         O
/   (_____/
/_____/   U`,
	"cat.png": `
 /\_/\
( o.o )
 > ^ <`,
	"tiger.png": `
  (\_/)
 (=o.o=)
 ( ||| )
 (")_(")`,
	"zebra.png": `
   __/\_
  /||||o\
 /||||||_>
 ||||||
 || ||`,
	"monkey.png": `
   .-"-.
 _/.-.-.\_
( ( o o ) )
 |/  "  \|
  \ .-. /`,
	"horse.png": `
      _(\_/)
    ,((((^'\
  ,((((( ,  \
,(((((  /"._ ,'
((((    \  (`,
}

// imageArt returns the drawing for ref, or a labelled frame for images
// without one.
func imageArt(ref string) string {
	if a, ok := art[ref]; ok {
		return strings.TrimPrefix(a, "\n")
	}
	if ref == "" {
		return "[ no image ]"
	}
	name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	return "[ image: " + name + " ]"
}

// videoFrames is the looping backdrop of the welcome screen.
var videoFrames = []string{
	"~  ~  ~  ~  ~  ~  ~  ~",
	" ~  ~  ~  ~  ~  ~  ~  ",
	"  ~  ~  ~  ~  ~  ~  ~ ",
}
