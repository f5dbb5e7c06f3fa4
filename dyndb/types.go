package dyndb

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/goccy/go-json"

	"github.com/raywall/supplychain-toolkit/envloader"
)

// serviceName identifica o serviço na taxonomia de erros.
const serviceName = "dynamodb"

// DynamoDBClient é o subconjunto do *dynamodb.Client usado pelo store.
// Uma interface estreita permite substituir o SDK por mocks nos testes.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Compile-time check: o cliente real do SDK satisfaz a interface.
var _ DynamoDBClient = (*dynamodb.Client)(nil)

// Store — interface principal (genérica). Cada método é um round trip único,
// sem cache nem retry local.
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Update(ctx context.Context, hashKey, sortKey any, changes map[string]any) error
	UpdateExpr(ctx context.Context, hashKey, sortKey any, updateExpr string, values map[string]any, names map[string]string) error
	Delete(ctx context.Context, hashKey, sortKey any) error

	BatchWrite(ctx context.Context, puts []T, deletes [][2]any) error
	BatchGet(ctx context.Context, keys [][2]any) ([]T, error)

	Query() *QueryBuilder[T]
	Scan() *QueryBuilder[T]
}

// TableConfig — configuração da tabela. Pode ser preenchida por variáveis de
// ambiente quando TableName vier vazio.
type TableConfig struct {
	TableName string `env:"DYNAMODB_TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY"`
	SortKey   string `env:"DYNAMODB_SORT_KEY"` // opcional
}

// QueryBuilder — builder fluente para Query e Scan.
type QueryBuilder[T any] struct {
	store       *dynamoStore[T]
	keyCond     *expression.KeyConditionBuilder
	filterCond  *expression.ConditionBuilder
	indexName   *string
	limit       *int32
	startKey    map[string]types.AttributeValue
	scanForward *bool
	isScan      bool
}

// encodeToken serializa o LastEvaluatedKey em um token opaco de paginação.
func encodeToken(lastKey map[string]types.AttributeValue) string {
	if len(lastKey) == 0 {
		return ""
	}
	plain := make(map[string]any, len(lastKey))
	for k, av := range lastKey {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			plain[k] = map[string]string{"S": v.Value}
		case *types.AttributeValueMemberN:
			plain[k] = map[string]string{"N": v.Value}
		case *types.AttributeValueMemberB:
			plain[k] = map[string][]byte{"B": v.Value}
		}
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

// decodeToken reconstrói o ExclusiveStartKey a partir do token opaco.
// Token inválido é ignorado (recomeça do início), nunca causa erro.
func decodeToken(token string) map[string]types.AttributeValue {
	if token == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var plain map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil
	}

	key := make(map[string]types.AttributeValue, len(plain))
	for k, tv := range plain {
		if raw, ok := tv["S"]; ok {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				key[k] = &types.AttributeValueMemberS{Value: s}
			}
			continue
		}
		if raw, ok := tv["N"]; ok {
			var n string
			if json.Unmarshal(raw, &n) == nil {
				key[k] = &types.AttributeValueMemberN{Value: n}
			}
			continue
		}
		if raw, ok := tv["B"]; ok {
			var b []byte
			if json.Unmarshal(raw, &b) == nil {
				key[k] = &types.AttributeValueMemberB{Value: b}
			}
		}
	}
	if len(key) == 0 {
		return nil
	}
	return key
}

func loadTableConfig(cfg *TableConfig) {
	if cfg.TableName == "" {
		_ = envloader.Load(cfg)
	}
}
