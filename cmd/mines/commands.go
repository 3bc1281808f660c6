package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/session"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": 0,
	"p": 0,
	"q": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// playCues prints one line per cue event, standing in for the audio
// collaborator.
func playCues(events []session.Event) {
	for _, e := range events {
		switch e.Kind {
		case session.CellRevealed:
			fmt.Printf("cue: %s @ %d:%d\n", e.Kind, e.Cell.Row, e.Cell.Col)
		case session.MineExploded:
			fmt.Printf("cue: %s @ %d:%d\n", e.Kind, e.Cell.Row, e.Cell.Col)
		case session.FlagToggled:
			fmt.Printf("cue: %s @ %d:%d (flagged=%t)\n",
				e.Kind, e.Cell.Row, e.Cell.Col, e.Flagged)
		default:
			fmt.Printf("cue: %s\n", e.Kind)
		}
	}
}

func executeCommand(s *session.Session, c string) (quit bool, err error) {
	parts := strings.Split(strings.TrimSpace(c), " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return false, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		if row, col, err := parseRowCol(parts[1:]); err != nil {
			return false, err
		} else {
			playCues(s.HandleReveal(row, col))
		}
		return
	case "f":
		if row, col, err := parseRowCol(parts[1:]); err != nil {
			return false, err
		} else {
			playCues(s.HandleFlagToggle(row, col))
		}
		return
	case "n":
		return false, s.NewGame()
	case "p":
		return
	case "q":
		return true, nil
	}
	return false, errors.New("invalid command")
}
