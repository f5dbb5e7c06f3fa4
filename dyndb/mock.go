package dyndb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/raywall/supplychain-toolkit/faults"
)

// MockStore é um mock completo para testes da interface Store[T].
//
// Expõe campos de função (`GetFn`, `PutFn`, etc.) que podem ser definidos
// para simular o comportamento desejado do DynamoDB durante os testes.
// Query e Scan delegam ao Client (um MockDynamoClient, em geral); sem Client
// definido, qualquer consulta devolve página vazia.
type MockStore[T any] struct {
	GetFn        func(ctx context.Context, hashKey, sortKey any) (*T, error)
	PutFn        func(ctx context.Context, item T) error
	UpdateFn     func(ctx context.Context, hashKey, sortKey any, changes map[string]any) error
	UpdateExprFn func(ctx context.Context, hashKey, sortKey any, updateExpr string, values map[string]any, names map[string]string) error
	DeleteFn     func(ctx context.Context, hashKey, sortKey any) error
	BatchWriteFn func(ctx context.Context, puts []T, deletes [][2]any) error
	BatchGetFn   func(ctx context.Context, keys [][2]any) ([]T, error)

	// Client atende Query/Scan do mock.
	Client DynamoDBClient
}

var _ Store[struct{}] = (*MockStore[struct{}])(nil)

func (m *MockStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, hashKey, sortKey)
	}
	return nil, faults.NotFound(serviceName, "mock")
}

func (m *MockStore[T]) Put(ctx context.Context, item T) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, item)
	}
	return nil
}

func (m *MockStore[T]) Update(ctx context.Context, hashKey, sortKey any, changes map[string]any) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, hashKey, sortKey, changes)
	}
	return nil
}

func (m *MockStore[T]) UpdateExpr(ctx context.Context, hashKey, sortKey any, updateExpr string, values map[string]any, names map[string]string) error {
	if m.UpdateExprFn != nil {
		return m.UpdateExprFn(ctx, hashKey, sortKey, updateExpr, values, names)
	}
	return nil
}

func (m *MockStore[T]) Delete(ctx context.Context, hashKey, sortKey any) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, hashKey, sortKey)
	}
	return nil
}

func (m *MockStore[T]) BatchWrite(ctx context.Context, puts []T, deletes [][2]any) error {
	if m.BatchWriteFn != nil {
		return m.BatchWriteFn(ctx, puts, deletes)
	}
	return nil
}

func (m *MockStore[T]) BatchGet(ctx context.Context, keys [][2]any) ([]T, error) {
	if m.BatchGetFn != nil {
		return m.BatchGetFn(ctx, keys)
	}
	return nil, nil
}

func (m *MockStore[T]) Query() *QueryBuilder[T] {
	return m.backingStore().Query()
}

func (m *MockStore[T]) Scan() *QueryBuilder[T] {
	return m.backingStore().Scan()
}

// backingStore monta um store real sobre o Client injetado (ou um
// MockDynamoClient vazio), para que Exec/Pages funcionem no mock.
func (m *MockStore[T]) backingStore() *dynamoStore[T] {
	client := m.Client
	if client == nil {
		client = &MockDynamoClient{}
	}
	return &dynamoStore[T]{
		client: client,
		cfg:    TableConfig{TableName: "mock", HashKey: "id"},
	}
}

// MockDynamoClient é um mock para a interface DynamoDBClient de baixo nível.
//
// Permite testar a lógica interna do `dynamoStore` sem tocar no AWS SDK.
type MockDynamoClient struct {
	GetItemFn        func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItemFn        func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItemFn     func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItemFn     func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItemFn func(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	BatchGetItemFn   func(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	QueryFn          func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	ScanFn           func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoDBClient = (*MockDynamoClient)(nil)

func (m *MockDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, params, optFns...)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *MockDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutItemFn != nil {
		return m.PutItemFn(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *MockDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, params, optFns...)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (m *MockDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, params, optFns...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (m *MockDynamoClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if m.BatchWriteItemFn != nil {
		return m.BatchWriteItemFn(ctx, params, optFns...)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func (m *MockDynamoClient) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if m.BatchGetItemFn != nil {
		return m.BatchGetItemFn(ctx, params, optFns...)
	}
	return &dynamodb.BatchGetItemOutput{}, nil
}

func (m *MockDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, params, optFns...)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (m *MockDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFn != nil {
		return m.ScanFn(ctx, params, optFns...)
	}
	return &dynamodb.ScanOutput{}, nil
}
