// Package metrics define o contrato de envio de métricas do toolkit e o
// provider Datadog (statsd). Cada chamada AWS dos managers pode ser
// instrumentada com um contador por serviço/operação/resultado.
package metrics

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/raywall/supplychain-toolkit/pkg/config"
)

// Provider define o contrato para envio de métricas. Permite trocar Datadog
// por outro backend sem alterar os managers.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// NoopProvider descarta tudo; é o provider quando métricas estão desativadas.
type NoopProvider struct{}

func (NoopProvider) Count(string, float64, []string) error     { return nil }
func (NoopProvider) Gauge(string, float64, []string) error     { return nil }
func (NoopProvider) Histogram(string, float64, []string) error { return nil }

// DatadogProvider envia métricas via dogstatsd.
type DatadogProvider struct {
	client statsd.ClientInterface
}

// NewDatadogProvider conecta no agente statsd do endereço configurado.
func NewDatadogProvider(cfg config.MetricsConf) (*DatadogProvider, error) {
	client, err := statsd.New(cfg.StatsdAddr, statsd.WithNamespace(cfg.Namespace+"."))
	if err != nil {
		return nil, fmt.Errorf("metrics: conectar statsd em %s: %w", cfg.StatsdAddr, err)
	}
	return &DatadogProvider{client: client}, nil
}

// NewProvider devolve Datadog quando habilitado na config, Noop caso contrário.
func NewProvider(cfg config.MetricsConf) (Provider, error) {
	if !cfg.Enabled {
		return NoopProvider{}, nil
	}
	return NewDatadogProvider(cfg)
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}
