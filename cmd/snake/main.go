package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/nonono109/snaker/pkg/config"
	"github.com/nonono109/snaker/pkg/game"
	"github.com/nonono109/snaker/pkg/input"
	"github.com/nonono109/snaker/pkg/renderer"
	"github.com/nonono109/snaker/pkg/storage"
)

var errQuit = errors.New("quit")

func main() {
	var (
		difficulty = flag.String("difficulty", "medium", "easy, medium or hard")
		dbPath     = flag.String("db", config.DefaultDBPath, "SQLite file for the high score (empty: keep in memory)")
		seed       = flag.Int64("seed", 0, "food placement seed (0: time based)")
		record     = flag.Bool("record", false, "record the session to "+config.RecordDir+"/")
	)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("snake needs an interactive terminal")
	}

	diff, ok := game.ParseDifficulty(*difficulty)
	if !ok {
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	var store game.HighScoreStore = storage.NewMemory()
	if *dbPath != "" {
		db, err := storage.OpenSQLite(*dbPath, config.HighScoreKey)
		if err != nil {
			// The game still runs, it just forgets the best score on exit
			log.Printf("high score storage unavailable: %v", err)
		} else {
			defer db.Close()
			store = db
		}
	}

	opts := []game.Option{game.WithStore(store), game.WithDifficulty(diff)}
	if *seed != 0 {
		opts = append(opts, game.WithSeed(*seed))
	}
	session := game.NewSession(opts...)
	defer session.Close()

	if *record {
		rec, err := game.NewRecorder(config.RecordDir, strconv.FormatInt(time.Now().UnixNano(), 36))
		if err != nil {
			log.Printf("recording disabled: %v", err)
		} else {
			detach := rec.Attach(session)
			defer func() {
				detach()
				if dropped, err := rec.Close(); err != nil || dropped > 0 {
					log.Printf("recording %s closed: dropped=%d err=%v", rec.Path(), dropped, err)
				}
			}()
		}
	}

	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer keys.Stop()

	render := renderer.NewTerminalRenderer(os.Stdout, config.GridSize)
	render.HideCursor()
	defer render.ShowCursor()

	if err := run(session, keys.GetInputChan(), render); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Printf("snake stopped: %v", err)
	}
	fmt.Println("\n  Thanks for playing! 👋")
}

// run drives the render loop and the input loop until quit or a signal
func run(session *game.Session, keys <-chan input.Symbol, render *renderer.TerminalRenderer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan game.Event, 1)
	cancel := session.Subscribe(func(ev game.Event) { offer(events, ev) })
	defer cancel()
	offer(events, session.Snapshot())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var last uint64
		first := true
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if !first && ev.Version <= last {
					continue
				}
				first = false
				last = ev.Version
				if err := render.Render(ev.Board, ev.HUD); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		adapter := input.NewAdapter(session)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case sym := <-keys:
				if input.IsQuit(sym) {
					return errQuit
				}
				if selectDifficulty(session, sym) {
					continue
				}
				adapter.Handle(sym)
			}
		}
	})

	return g.Wait()
}

// selectDifficulty handles the 1/2/3 keys of the start screen
func selectDifficulty(session *game.Session, sym input.Symbol) bool {
	n, err := strconv.Atoi(string(sym))
	if err != nil || n < 1 || n > len(game.Difficulties) {
		return false
	}
	session.SetDifficulty(game.Difficulties[n-1])
	return true
}

// offer keeps only the newest event in a one-slot channel
func offer(ch chan game.Event, ev game.Event) {
	for {
		select {
		case ch <- ev:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
