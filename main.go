package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"micattix/internal/game"
)

// Hotseat console game: everyone shares one terminal and the keyboard
// passes around the table.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Micattix")
	size := askSize(reader)
	mode := askMode(reader)

	mgr, err := game.NewManager(game.Config{Size: size, Mode: mode})
	if err != nil {
		fmt.Println("cannot set up game:", err)
		os.Exit(1)
	}
	mgr.AddListener(printer{})

	if err := mgr.StartGame(); err != nil {
		fmt.Println("cannot start game:", err)
		os.Exit(1)
	}

	for {
		switch mgr.Phase() {
		case game.PhaseInProgress:
			printTurn(mgr)
			if !promptMove(reader, mgr) {
				mgr.EndGame()
				return
			}
		case game.PhaseRoundOver:
			fmt.Print("Deal the next round? (y/n) ")
			if ans := readLine(reader); ans == "y" || ans == "yes" {
				if err := mgr.StartNextRound(); err != nil {
					fmt.Println("cannot continue:", err)
					mgr.EndGame()
					return
				}
				continue
			}
			mgr.EndGame()
			return
		default:
			return
		}
	}
}

func askSize(reader *bufio.Reader) game.BoardSize {
	for {
		fmt.Print("Board size, small (4x4) or large (6x6)? [small] ")
		switch readLine(reader) {
		case "", "small", "s":
			return game.SizeSmall
		case "large", "l":
			return game.SizeLarge
		}
		fmt.Println("Please answer small or large.")
	}
}

func askMode(reader *bufio.Reader) game.GameMode {
	for {
		fmt.Print("How many players, 2 or 4? [2] ")
		switch readLine(reader) {
		case "", "2":
			return game.ModeTwoPlayer
		case "4":
			return game.ModeFourPlayer
		}
		fmt.Println("Please answer 2 or 4.")
	}
}

// printTurn shows the board and everything the active player needs to pick
// a target.
func printTurn(mgr *game.Manager) {
	snap := mgr.Snapshot()
	fmt.Println()
	printBoard(snap.Board)
	fmt.Printf("Round %d, %s to move along the %s axis.\n", snap.Round, snap.Active, mgr.ActiveAxis())
	for _, sc := range mgr.RoundScores() {
		fmt.Printf("  %s: %d this round\n", sc.Seat, sc.Score)
	}

	targets, err := mgr.LegalTargets()
	if err != nil {
		return
	}
	captures, err := mgr.CaptureMoves()
	if err != nil {
		return
	}
	capturing := map[game.Coord]bool{}
	for _, c := range captures {
		capturing[c] = true
	}
	fmt.Print("Targets:")
	for _, t := range targets {
		if capturing[t] {
			fmt.Printf(" %d,%d(capture)", t.Row+1, t.Col+1)
		} else {
			fmt.Printf(" %d,%d", t.Row+1, t.Col+1)
		}
	}
	fmt.Println()
}

func printBoard(grid [][]game.Piece) {
	fmt.Print("    ")
	for c := range grid[0] {
		fmt.Printf("%4d", c+1)
	}
	fmt.Println()
	for r, row := range grid {
		fmt.Printf("%4d", r+1)
		for _, p := range row {
			fmt.Printf("%4s", p)
		}
		fmt.Println()
	}
}

// promptMove reads moves until one is accepted. Returns false when the
// player quits instead.
func promptMove(reader *bufio.Reader, mgr *game.Manager) bool {
	for {
		fmt.Print("Move (row col, or q to quit): ")
		line := readLine(reader)
		if line == "q" || line == "quit" {
			return false
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Println("Type a row and a column, like: 2 4")
			continue
		}
		row, err1 := strconv.Atoi(parts[0])
		col, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			fmt.Println("Rows and columns are numbers, like: 2 4")
			continue
		}
		if err := mgr.MakeMove(game.Coord{Row: row - 1, Col: col - 1}); err != nil {
			fmt.Println("That move is not allowed:", err)
			continue
		}
		return true
	}
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(line))
}

// printer narrates engine events.
type printer struct{}

func (printer) OnEvent(ev game.Event) {
	switch p := ev.Payload.(type) {
	case game.RoundStartedPayload:
		fmt.Printf("\n== Round %d, %s opens ==\n", p.Round, p.Opener)
	case game.MoveMadePayload:
		if p.Captured != nil {
			fmt.Printf("%s captures %s.\n", p.Seat, *p.Captured)
		}
	case game.RoundOverPayload:
		fmt.Printf("\nRound %d is over.\n", p.Round)
		printOutcome(p.Winner, p.Tie, p.Scores)
	case game.GameOverPayload:
		fmt.Println("\nGame over!")
		printOutcome(p.Winner, p.Tie, p.Totals)
	}
}

func printOutcome(winner *game.Seat, tie bool, scores []game.SeatScore) {
	for _, sc := range scores {
		fmt.Printf("  %s: %d\n", sc.Seat, sc.Score)
	}
	switch {
	case tie:
		fmt.Println("It is a tie.")
	case winner != nil:
		fmt.Printf("%s wins.\n", *winner)
	}
}
