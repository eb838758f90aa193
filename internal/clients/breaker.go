package clients

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/tm-acme-shop/acme-shop-pos-service/internal/metrics"
)

const serviceName = "pos-service"

// newBreaker builds a circuit breaker for one platform API surface, wired to
// the state gauge so open circuits show up on dashboards.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from gobreaker.State, to gobreaker.State) {
			state := float64(0)
			switch to {
			case gobreaker.StateOpen:
				state = 1
			case gobreaker.StateHalfOpen:
				state = 2
			case gobreaker.StateClosed:
				state = 0
			}
			metrics.CircuitBreakerState.WithLabelValues(serviceName, cbName).Set(state)

			log.WithFields(log.Fields{
				"circuit": cbName,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})

	metrics.CircuitBreakerState.WithLabelValues(serviceName, name).Set(0)

	return cb
}
