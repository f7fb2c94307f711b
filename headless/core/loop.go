package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// GameLoop ticks a session at a fixed rate, feeding it a script. It stops
// when the script ends, Stop is called or the context is cancelled.
type GameLoop struct {
	session  *Session
	script   Script
	tickRate int
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(session *Session, script Script, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  session,
		script:   script,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the loop stops and returns the final report.
func (g *GameLoop) Run(ctx context.Context) Report {
	g.setRunning(true)
	defer g.setRunning(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Game loop cancelled after %d frames", g.session.Frame())
			return g.session.Report()
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return g.session.Report()
		case <-ticker.C:
			if !g.tick() {
				log.Printf("Script finished after %d frames", g.session.Frame())
				return g.session.Report()
			}
		}
	}
}

// Stop ends the loop. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}

func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *GameLoop) setRunning(v bool) {
	g.mu.Lock()
	g.running = v
	g.mu.Unlock()
}

func (g *GameLoop) tick() bool {
	input, ok := g.script.At(g.session.Frame())
	if !ok {
		return false
	}
	g.session.Step(input)
	return true
}
