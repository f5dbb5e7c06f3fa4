package dyndb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/supplychain-toolkit/faults"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New cria um store reutilizável para uma tabela. Se cfg.TableName vier vazio,
// a configuração é carregada das variáveis de ambiente (tags env).
func New[T any](client DynamoDBClient, cfg TableConfig) Store[T] {
	loadTableConfig(&cfg)
	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

// buildKey monta a chave primária validando o shape antes do dispatch.
func (s *dynamoStore[T]) buildKey(hashKey, sortKey any) (map[string]types.AttributeValue, error) {
	if s.cfg.TableName == "" || s.cfg.HashKey == "" {
		return nil, faults.Invalid(serviceName, s.cfg.TableName, "TableConfig sem TableName/HashKey")
	}
	if hashKey == nil {
		return nil, faults.Invalid(serviceName, s.cfg.TableName, "hash key não pode ser nil")
	}
	if s.cfg.SortKey == "" && sortKey != nil {
		return nil, faults.Invalid(serviceName, s.cfg.TableName, "sort key informada para tabela sem sort key")
	}

	key := map[string]types.AttributeValue{
		s.cfg.HashKey: attr(hashKey),
	}
	if s.cfg.SortKey != "" && sortKey != nil {
		key[s.cfg.SortKey] = attr(sortKey)
	}
	return key, nil
}

// Get busca um item pela chave primária. Item ausente vira NotFoundError.
func (s *dynamoStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	key, err := s.buildKey(hashKey, sortKey)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, faults.Translate(serviceName, s.cfg.TableName, err)
	}
	if out.Item == nil {
		return nil, faults.NotFound(serviceName, s.cfg.TableName)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dyndb: unmarshal falhou: %w", err)
	}
	return &item, nil
}

// Put insere ou substitui um item (upsert). Um item que serializa para um
// mapa vazio é rejeitado antes do dispatch.
func (s *dynamoStore[T]) Put(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return faults.Invalid(serviceName, s.cfg.TableName, fmt.Sprintf("item não serializável: %v", err))
	}
	if len(av) == 0 {
		return faults.Invalid(serviceName, s.cfg.TableName, "item vazio")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	})
	return faults.Translate(serviceName, s.cfg.TableName, err)
}

// Update aplica um SET simples campo → valor usando o expression builder do SDK.
func (s *dynamoStore[T]) Update(ctx context.Context, hashKey, sortKey any, changes map[string]any) error {
	if len(changes) == 0 {
		return faults.Invalid(serviceName, s.cfg.TableName, "nenhum campo para atualizar")
	}
	key, err := s.buildKey(hashKey, sortKey)
	if err != nil {
		return err
	}

	var update expression.UpdateBuilder
	for field, value := range changes {
		update = update.Set(expression.Name(field), expression.Value(value))
	}
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return faults.Invalid(serviceName, s.cfg.TableName, fmt.Sprintf("expressão inválida: %v", err))
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return faults.Translate(serviceName, s.cfg.TableName, err)
}

// UpdateExpr aplica uma expressão de update crua (if_not_exists, ADD, etc),
// com placeholders :valor e #nome como no console.
func (s *dynamoStore[T]) UpdateExpr(ctx context.Context, hashKey, sortKey any, updateExpr string, values map[string]any, names map[string]string) error {
	if strings.TrimSpace(updateExpr) == "" {
		return faults.Invalid(serviceName, s.cfg.TableName, "expressão de update vazia")
	}
	key, err := s.buildKey(hashKey, sortKey)
	if err != nil {
		return err
	}

	var exprValues map[string]types.AttributeValue
	if len(values) > 0 {
		exprValues = make(map[string]types.AttributeValue, len(values))
		for placeholder, v := range values {
			exprValues[placeholder] = attr(v)
		}
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       key,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: exprValues,
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	_, err = s.client.UpdateItem(ctx, input)
	return faults.Translate(serviceName, s.cfg.TableName, err)
}

// Delete remove um item pela chave primária. Deletar chave inexistente é
// um no-op no DynamoDB, e aqui também.
func (s *dynamoStore[T]) Delete(ctx context.Context, hashKey, sortKey any) error {
	key, err := s.buildKey(hashKey, sortKey)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.cfg.TableName),
		Key:       key,
	})
	return faults.Translate(serviceName, s.cfg.TableName, err)
}

// BatchWrite — puts + deletes (o DynamoDB limita a 25 operações por chamada,
// o store fatia automaticamente).
func (s *dynamoStore[T]) BatchWrite(ctx context.Context, puts []T, deletes [][2]any) error {
	var writeRequests []types.WriteRequest

	for _, item := range puts {
		itemMap, err := attributevalue.MarshalMap(item)
		if err != nil {
			return faults.Invalid(serviceName, s.cfg.TableName, fmt.Sprintf("item não serializável: %v", err))
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: itemMap},
		})
	}

	for _, pair := range deletes {
		keyMap, err := s.buildKey(pair[0], pair[1])
		if err != nil {
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: keyMap},
		})
	}

	for i := 0; i < len(writeRequests); i += 25 {
		end := min(i+25, len(writeRequests))

		_, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.cfg.TableName: writeRequests[i:end],
			},
		})
		if err != nil {
			return faults.Translate(serviceName, s.cfg.TableName, err)
		}
	}
	return nil
}

// BatchGet — até 100 chaves por chamada; fatia automaticamente.
func (s *dynamoStore[T]) BatchGet(ctx context.Context, keys [][2]any) ([]T, error) {
	var keysToGet []map[string]types.AttributeValue
	for _, pair := range keys {
		keyMap, err := s.buildKey(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		keysToGet = append(keysToGet, keyMap)
	}

	var results []T
	for i := 0; i < len(keysToGet); i += 100 {
		end := min(i+100, len(keysToGet))

		resp, err := s.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				s.cfg.TableName: {
					Keys:           keysToGet[i:end],
					ConsistentRead: aws.Bool(true),
				},
			},
		})
		if err != nil {
			return nil, faults.Translate(serviceName, s.cfg.TableName, err)
		}

		for _, item := range resp.Responses[s.cfg.TableName] {
			var t T
			if err := attributevalue.UnmarshalMap(item, &t); err != nil {
				return nil, fmt.Errorf("dyndb: unmarshal falhou: %w", err)
			}
			results = append(results, t)
		}
	}

	return results, nil
}

// attr converte qualquer valor para types.AttributeValue.
func attr(v any) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return av
}
