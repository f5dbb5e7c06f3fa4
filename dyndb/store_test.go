package dyndb_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/supplychain-toolkit/dyndb"
	"github.com/raywall/supplychain-toolkit/faults"
)

type supplier struct {
	ID     string `dynamodbav:"supplier_id"`
	Name   string `dynamodbav:"name"`
	Rating int    `dynamodbav:"rating"`
}

func supplierConfig() dyndb.TableConfig {
	return dyndb.TableConfig{TableName: "Suppliers", HashKey: "supplier_id"}
}

// fakeTable simula uma tabela em memória por trás do MockDynamoClient,
// suficiente para validar o round trip Put → Get.
type fakeTable struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newFakeTable() *fakeTable {
	return &fakeTable{items: make(map[string]map[string]types.AttributeValue)}
}

func (f *fakeTable) client() *dyndb.MockDynamoClient {
	return &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id := params.Item["supplier_id"].(*types.AttributeValueMemberS).Value
			f.items[id] = params.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		GetItemFn: func(ctx context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id := params.Key["supplier_id"].(*types.AttributeValueMemberS).Value
			return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
		},
		DeleteItemFn: func(ctx context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id := params.Key["supplier_id"].(*types.AttributeValueMemberS).Value
			delete(f.items, id)
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	table := newFakeTable()
	store := dyndb.New[supplier](table.client(), supplierConfig())

	original := supplier{ID: "s1", Name: "Acme Ltda", Rating: 5}
	require.NoError(t, store.Put(context.Background(), original))

	got, err := store.Get(context.Background(), "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, original, *got)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	table := newFakeTable()
	store := dyndb.New[supplier](table.client(), supplierConfig())

	// Chave nunca escrita devolve NotFoundError, não um erro cru do provider
	_, err := store.Get(context.Background(), "nunca-escrito", nil)
	require.Error(t, err)
	assert.True(t, faults.IsNotFound(err))
}

func TestGet_NilHashKey(t *testing.T) {
	t.Parallel()

	store := dyndb.New[supplier](&dyndb.MockDynamoClient{}, supplierConfig())

	_, err := store.Get(context.Background(), nil, nil)
	assert.True(t, faults.IsValidation(err))
}

func TestGet_SortKeySemTabela(t *testing.T) {
	t.Parallel()

	store := dyndb.New[supplier](&dyndb.MockDynamoClient{}, supplierConfig())

	_, err := store.Get(context.Background(), "s1", "extra")
	assert.True(t, faults.IsValidation(err))
}

func TestPut_EmptyItem(t *testing.T) {
	t.Parallel()

	called := false
	client := &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			called = true
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	store := dyndb.New[struct{}](client, supplierConfig())

	err := store.Put(context.Background(), struct{}{})
	assert.True(t, faults.IsValidation(err))
	assert.False(t, called, "item vazio não deveria chegar ao provider")
}

func TestPut_Throttled(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockDynamoClient{
		PutItemFn: func(ctx context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException", Message: "rate exceeded"}
		},
	}
	store := dyndb.New[supplier](client, supplierConfig())

	err := store.Put(context.Background(), supplier{ID: "s1"})
	assert.True(t, faults.IsThrottled(err))
}

func TestUpdate_BuildsSetExpression(t *testing.T) {
	t.Parallel()

	var captured *dynamodb.UpdateItemInput
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			captured = params
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	store := dyndb.New[supplier](client, supplierConfig())

	err := store.Update(context.Background(), "s1", nil, map[string]any{"rating": 4})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "Suppliers", *captured.TableName)
	assert.Contains(t, *captured.UpdateExpression, "SET")
	assert.NotEmpty(t, captured.ExpressionAttributeValues)
}

func TestUpdate_SemCampos(t *testing.T) {
	t.Parallel()

	store := dyndb.New[supplier](&dyndb.MockDynamoClient{}, supplierConfig())
	err := store.Update(context.Background(), "s1", nil, nil)
	assert.True(t, faults.IsValidation(err))
}

func TestUpdateExpr_IfNotExists(t *testing.T) {
	t.Parallel()

	var captured *dynamodb.UpdateItemInput
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			captured = params
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	cfg := dyndb.TableConfig{TableName: "DistributorInventory", HashKey: "id"}
	store := dyndb.New[map[string]any](client, cfg)

	err := store.UpdateExpr(context.Background(), "d1#p1", nil,
		"SET quantity = if_not_exists(quantity, :z) + :q",
		map[string]any{":q": 10, ":z": 0}, nil)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "SET quantity = if_not_exists(quantity, :z) + :q", *captured.UpdateExpression)

	qv, ok := captured.ExpressionAttributeValues[":q"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "10", qv.Value)
}

func TestDelete_RemovesItem(t *testing.T) {
	t.Parallel()

	table := newFakeTable()
	store := dyndb.New[supplier](table.client(), supplierConfig())

	require.NoError(t, store.Put(context.Background(), supplier{ID: "s1", Name: "Acme"}))
	require.NoError(t, store.Delete(context.Background(), "s1", nil))

	_, err := store.Get(context.Background(), "s1", nil)
	assert.True(t, faults.IsNotFound(err))
}

func TestBatchWrite_SlicesAt25(t *testing.T) {
	t.Parallel()

	var batches [][]types.WriteRequest
	client := &dyndb.MockDynamoClient{
		BatchWriteItemFn: func(ctx context.Context, params *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
			batches = append(batches, params.RequestItems["Suppliers"])
			return &dynamodb.BatchWriteItemOutput{}, nil
		},
	}
	store := dyndb.New[supplier](client, supplierConfig())

	puts := make([]supplier, 30)
	for i := range puts {
		puts[i] = supplier{ID: string(rune('a' + i))}
	}
	require.NoError(t, store.BatchWrite(context.Background(), puts, nil))

	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 25)
	assert.Len(t, batches[1], 5)
}

func TestBatchGet_Unmarshals(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockDynamoClient{
		BatchGetItemFn: func(ctx context.Context, params *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
			return &dynamodb.BatchGetItemOutput{
				Responses: map[string][]map[string]types.AttributeValue{
					"Suppliers": {
						{
							"supplier_id": &types.AttributeValueMemberS{Value: "s1"},
							"name":        &types.AttributeValueMemberS{Value: "Acme"},
						},
					},
				},
			}, nil
		},
	}
	store := dyndb.New[supplier](client, supplierConfig())

	items, err := store.BatchGet(context.Background(), [][2]any{{"s1", nil}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].Name)
}
