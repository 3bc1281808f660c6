// Command mines is a line-command driver for the rules engine. It
// plays the role of the input/render/audio collaborator: it turns text
// commands into discrete engine commands, prints the board snapshot
// after every command and prints one cue line per emitted event.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var (
	log = logrus.New()

	debug bool
	rnd   = rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))
)

func init() {
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if debug {
		logLevel = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, mines.Log, session.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
}

func main() {
	flag.Parse()
	setupLogging()

	params := mines.GameParams{Rows: 9, Cols: 9, MineCount: 10}

	s, err := session.New(params, rnd)
	if err != nil {
		log.Fatal("unable to create session: ", err)
	}
	if err := s.NewGame(); err != nil {
		log.Fatal("unable to start game: ", err)
	}

	fmt.Printf("%s, session %s\n", params, s.ID())
	fmt.Println("commands: o ROW COL | f ROW COL | n | p | q")
	fmt.Print(s.Render())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		quit, err := executeCommand(s, scanner.Text())
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if quit {
			return
		}
		fmt.Print(s.Render())
		fmt.Println("phase:", s.Phase())
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
