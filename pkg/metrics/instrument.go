package metrics

import (
	"time"

	"github.com/raywall/supplychain-toolkit/faults"
)

// Outcome classifica o resultado de uma chamada AWS para fins de tag.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case faults.IsNotFound(err):
		return "not_found"
	case faults.IsValidation(err):
		return "validation"
	case faults.IsThrottled(err):
		return "throttled"
	default:
		return "error"
	}
}

// Instrument executa fn medindo duração e resultado, e registra
// aws.call (count) e aws.call.duration (histogram em ms) com as tags
// service/operation/outcome.
func Instrument(provider Provider, service, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := float64(time.Since(start).Milliseconds())

	tags := []string{
		"service:" + service,
		"operation:" + operation,
		"outcome:" + Outcome(err),
	}
	_ = provider.Count("aws.call", 1, tags)
	_ = provider.Histogram("aws.call.duration", elapsed, tags)

	return err
}
