package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"skill-reversi/internal/ai"
	"skill-reversi/internal/config"
	"skill-reversi/internal/game"
	"skill-reversi/internal/session"
)

// Terminal demo: a human (black) against the AI (white).
func main() {
	difficulty := flag.String("difficulty", "normal", "easy, normal or hard")
	seed := flag.Int64("seed", 0, "fixed seed for a reproducible game (0 = random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	s := session.NewSession(session.CreateParams{
		Mode:       session.ModeVsAI,
		Difficulty: session.Difficulty(*difficulty),
		AISide:     game.White,
		PlayerName: "You",
		Seed:       *seed,
	}, cfg.TilesPerKind, nil) // the demo drives the AI synchronously below

	var human, bot session.Player
	for _, p := range s.Players {
		if p.IsBot {
			bot = p
		} else {
			human = p
		}
	}
	aiSeed := *seed
	if aiSeed == 0 {
		aiSeed = time.Now().UnixNano()
	}
	decider := ai.New(session.Difficulty(*difficulty), cfg.Weights, aiSeed)

	reader := bufio.NewReader(os.Stdin)
	for {
		snap := s.Snapshot()
		if snap.GameOver {
			printBoard(snap)
			fmt.Printf("\nGame over. Black %d - White %d. ", snap.BlackScore, snap.WhiteScore)
			if snap.Draw {
				fmt.Println("Draw.")
			} else {
				fmt.Printf("%s wins.\n", *snap.Winner)
			}
			return
		}

		if snap.Current == bot.Side {
			applyIntent(s, bot.ID, decider.Choose(s.State(), bot.Side))
			continue
		}

		printBoard(snap)
		fmt.Printf("\nYour turn (black). Hand: %v\n", snap.Hands[game.Black.String()])
		if len(s.LegalMoves()) == 0 {
			fmt.Println("No legal moves, passing.")
			if _, err := s.Pass(human.ID); err != nil {
				fmt.Println("pass rejected:", err)
			}
			continue
		}
		fmt.Println("Enter: row col | skill <name> [row col] | pass")
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		if err := humanTurn(s, human.ID, line); err != nil {
			fmt.Println("rejected:", err)
		}
	}
}

func humanTurn(s *session.Session, playerID, line string) error {
	parts := strings.Fields(line)
	switch {
	case len(parts) == 0:
		return fmt.Errorf("empty input")
	case parts[0] == "pass":
		_, err := s.Pass(playerID)
		return err
	case parts[0] == "skill":
		if len(parts) < 2 {
			return fmt.Errorf("skill name required")
		}
		skill := game.SkillType(parts[1])
		var target *game.Coord
		if len(parts) >= 4 {
			r, _ := strconv.Atoi(parts[2])
			c, _ := strconv.Atoi(parts[3])
			target = &game.Coord{Row: r, Col: c}
		}
		_, err := s.ActivateSkill(playerID, skill, target)
		return err
	case len(parts) == 2:
		r, err1 := strconv.Atoi(parts[0])
		c, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("bad coordinates")
		}
		_, err := s.PlaceDisc(playerID, r, c)
		return err
	}
	return fmt.Errorf("unrecognized input")
}

func applyIntent(s *session.Session, playerID string, it session.Intent) {
	var err error
	switch it.Kind {
	case session.IntentPlace:
		fmt.Printf("CPU places at (%d,%d)\n", it.Move.Row, it.Move.Col)
		_, err = s.PlaceDisc(playerID, it.Move.Row, it.Move.Col)
	case session.IntentSkill:
		if it.Target != nil {
			fmt.Printf("CPU plays %s at (%d,%d)\n", it.Skill, it.Target.Row, it.Target.Col)
		} else {
			fmt.Printf("CPU plays %s\n", it.Skill)
		}
		_, err = s.ActivateSkill(playerID, it.Skill, it.Target)
	default:
		fmt.Println("CPU passes")
		_, err = s.Pass(playerID)
	}
	if err != nil {
		fmt.Println("CPU intent rejected:", err)
	}
}

func printBoard(snap session.Snapshot) {
	tiles := map[game.Coord]game.SkillType{}
	for _, t := range snap.SkillTiles {
		tiles[t.Coord] = t.Skill
	}
	fmt.Println("\n  0 1 2 3 4 5 6 7")
	for r := 0; r < game.BoardSize; r++ {
		fmt.Printf("%d ", r)
		for c := 0; c < game.BoardSize; c++ {
			switch snap.Board[r][c] {
			case game.Black:
				fmt.Print("● ")
			case game.White:
				fmt.Print("○ ")
			default:
				if _, ok := tiles[game.Coord{Row: r, Col: c}]; ok {
					fmt.Print("* ")
				} else {
					fmt.Print(". ")
				}
			}
		}
		fmt.Println()
	}
	fmt.Printf("Score: black %d, white %d (turn %d)\n", snap.BlackScore, snap.WhiteScore, snap.TurnIdx)
}
