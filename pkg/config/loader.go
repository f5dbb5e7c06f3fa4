package config

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"gopkg.in/yaml.v3"

	"github.com/raywall/supplychain-toolkit/envloader"
)

var (
	awsOnce sync.Once
	awsCfg  aws.Config
	awsErr  error
)

// LoadAWS carrega o aws.Config padrão (credenciais, retryer, transporte) uma
// única vez por processo. Toda autenticação é delegada à cadeia default do
// SDK; o toolkit nunca lê credenciais por conta própria.
func LoadAWS(ctx context.Context, region string) (aws.Config, error) {
	awsOnce.Do(func() {
		opts := []func(*awsconfig.LoadOptions) error{}
		if region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		awsCfg, awsErr = awsconfig.LoadDefaultConfig(ctx, opts...)
	})
	return awsCfg, awsErr
}

// Load monta a configuração apenas do ambiente (defaults + env vars) e valida.
func Load() (*ToolkitConfig, error) {
	cfg := &ToolkitConfig{}
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile lê um arquivo YAML, aplica overrides do ambiente e valida.
// Precedência: variável de ambiente > YAML > envDefault.
func LoadFile(path string) (*ToolkitConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: ler %s: %w", path, err)
	}

	// Defaults primeiro; o YAML sobrescreve o que declarar (inclusive com o
	// valor zero, ex: logging.enabled: false) e o ambiente volta a valer por
	// cima no Overlay final.
	cfg := &ToolkitConfig{}
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse YAML de %s: %w", path, err)
	}
	if err := envloader.Overlay(cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
