package room

import (
	"github.com/prometheus/client_golang/prometheus"

	"micattix/internal/game"
)

var (
	roomsOpen = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "micattix_rooms_open",
			Help: "Rooms created since startup",
		},
	)
	gamesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "micattix_games_started_total",
			Help: "Games started across all rooms",
		},
	)
	movesMade = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "micattix_moves_total",
			Help: "Accepted moves across all rooms",
		},
		[]string{"captured"},
	)
	roundsFinished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "micattix_rounds_finished_total",
			Help: "Rounds played to completion",
		},
	)
	gamesFinished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "micattix_games_finished_total",
			Help: "Games ended with final standings",
		},
	)
)

func init() {
	prometheus.MustRegister(roomsOpen)
	prometheus.MustRegister(gamesStarted)
	prometheus.MustRegister(movesMade)
	prometheus.MustRegister(roundsFinished)
	prometheus.MustRegister(gamesFinished)
}

// meter counts engine events for every room it is attached to.
type meter struct{}

func (meter) OnEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventGameStarted:
		gamesStarted.Inc()
	case game.EventMoveMade:
		captured := "no"
		if p, ok := ev.Payload.(game.MoveMadePayload); ok && p.Captured != nil {
			captured = "yes"
		}
		movesMade.WithLabelValues(captured).Inc()
	case game.EventRoundOver:
		roundsFinished.Inc()
	case game.EventGameOver:
		gamesFinished.Inc()
	}
}
