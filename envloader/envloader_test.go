package envloader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	TableName string `env:"TEST_TABLE_NAME"`
	Region    string `env:"TEST_REGION" envDefault:"us-east-1"`
	MaxKeys   int32  `env:"TEST_MAX_KEYS"`
	Verbose   bool   `env:"TEST_VERBOSE"`
	Ignored   string
}

func TestLoad_Basico(t *testing.T) {
	t.Setenv("TEST_TABLE_NAME", "Suppliers")
	t.Setenv("TEST_MAX_KEYS", "100")
	t.Setenv("TEST_VERBOSE", "true")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "Suppliers", cfg.TableName)
	assert.Equal(t, int32(100), cfg.MaxKeys)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Ignored)
}

func TestLoad_Default(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "us-east-1", cfg.Region)
}

func TestLoad_EnvSobrepoeDefault(t *testing.T) {
	t.Setenv("TEST_REGION", "sa-east-1")

	var cfg testConfig
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "sa-east-1", cfg.Region)
}

func TestLoad_StructAninhada(t *testing.T) {
	type inner struct {
		Bucket string `env:"TEST_BUCKET"`
	}
	type outer struct {
		S3 inner
	}
	t.Setenv("TEST_BUCKET", "supply-reports")

	var cfg outer
	require.NoError(t, Load(&cfg))
	assert.Equal(t, "supply-reports", cfg.S3.Bucket)
}

func TestOverlay_IgnoraDefaults(t *testing.T) {
	// Sem env vars, Overlay não toca em nada: nem aplica envDefault,
	// nem mexe em valores já definidos por outra fonte
	cfg := testConfig{Region: "sa-east-1", Verbose: false}
	require.NoError(t, Overlay(&cfg))

	assert.Equal(t, "sa-east-1", cfg.Region)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.TableName)
}

func TestOverlay_EnvSobrescreveValorAtual(t *testing.T) {
	t.Setenv("TEST_REGION", "us-west-2")
	t.Setenv("TEST_VERBOSE", "false")

	cfg := testConfig{Region: "sa-east-1", Verbose: true}
	require.NoError(t, Overlay(&cfg))

	assert.Equal(t, "us-west-2", cfg.Region)
	// Env var presente consegue zerar um bool definido por outra fonte
	assert.False(t, cfg.Verbose)
}

func TestLoad_NaoPonteiro(t *testing.T) {
	err := Load(testConfig{})
	var invalid *InvalidConfigError
	assert.True(t, errors.As(err, &invalid))
}

func TestLoad_ConversaoInvalida(t *testing.T) {
	t.Setenv("TEST_MAX_KEYS", "não-é-número")

	var cfg testConfig
	err := Load(&cfg)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "MaxKeys", fieldErr.FieldName)
}
