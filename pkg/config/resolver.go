package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Interfaces estreitas para abstrair o SDK (permite mocking).
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var (
	_ SSMClient     = (*ssm.Client)(nil)
	_ SecretsClient = (*secretsmanager.Client)(nil)
)

// Resolver troca referências "ssm://caminho" e "secret://id" pelos valores
// reais armazenados no Parameter Store / Secrets Manager.
type Resolver struct {
	ssm     SSMClient
	secrets SecretsClient
}

// NewResolver cria um resolver com clientes injetados.
func NewResolver(ssmClient SSMClient, secretsClient SecretsClient) *Resolver {
	return &Resolver{ssm: ssmClient, secrets: secretsClient}
}

// NewResolverFromConfig cria um resolver com os clientes reais do SDK.
func NewResolverFromConfig(cfg aws.Config) *Resolver {
	return &Resolver{
		ssm:     ssm.NewFromConfig(cfg),
		secrets: secretsmanager.NewFromConfig(cfg),
	}
}

// ResolveValue resolve uma referência individual. Valores sem prefixo
// conhecido voltam inalterados.
func (r *Resolver) ResolveValue(ctx context.Context, value string) (string, error) {
	switch {
	case strings.HasPrefix(value, "ssm://"):
		path := strings.TrimPrefix(value, "ssm://")
		out, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(path),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return "", fmt.Errorf("erro no SSM GetParameter %s: %w", path, err)
		}
		return aws.ToString(out.Parameter.Value), nil

	case strings.HasPrefix(value, "secret://"):
		id := strings.TrimPrefix(value, "secret://")
		out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(id),
		})
		if err != nil {
			return "", fmt.Errorf("erro no Secrets Manager %s: %w", id, err)
		}
		return aws.ToString(out.SecretString), nil

	default:
		return value, nil
	}
}

// Resolve percorre os campos de recurso da configuração e resolve as
// referências encontradas, in place.
func (r *Resolver) Resolve(ctx context.Context, cfg *ToolkitConfig) error {
	fields := []*string{
		&cfg.S3.Bucket,
		&cfg.SNS.TopicARN,
		&cfg.Lambda.FunctionName,
		&cfg.SQS.QueueURL,
		&cfg.Tables.Suppliers,
		&cfg.Tables.RawMaterials,
		&cfg.Tables.FinishedProducts,
		&cfg.Tables.PurchaseOrders,
		&cfg.Tables.Distributors,
		&cfg.Tables.DistributorOrders,
		&cfg.Tables.DistributorInventory,
		&cfg.Tables.CustomerOrders,
	}
	for _, field := range fields {
		resolved, err := r.ResolveValue(ctx, *field)
		if err != nil {
			return err
		}
		*field = resolved
	}
	return nil
}
