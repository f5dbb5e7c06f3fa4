package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/supplychain-toolkit/faults"
)

// Query inicia uma Query (exige ao menos um KeyEqual antes do Exec).
func (s *dynamoStore[T]) Query() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		store:       s,
		scanForward: aws.Bool(true),
	}
}

// Scan inicia um Scan da tabela inteira.
func (s *dynamoStore[T]) Scan() *QueryBuilder[T] {
	return &QueryBuilder[T]{
		store:  s,
		isScan: true,
	}
}

func (qb *QueryBuilder[T]) Index(name string) *QueryBuilder[T] {
	qb.indexName = aws.String(name)
	return qb
}

func (qb *QueryBuilder[T]) KeyEqual(key string, value any) *QueryBuilder[T] {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) KeyBeginsWith(key, prefix string) *QueryBuilder[T] {
	cond := expression.Key(key).BeginsWith(prefix)
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) FilterEqual(field string, value any) *QueryBuilder[T] {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) FilterContains(field string, value any) *QueryBuilder[T] {
	cond := expression.Contains(expression.Name(field), value)
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) Limit(n int32) *QueryBuilder[T] {
	qb.limit = &n
	return qb
}

// StartToken retoma a consulta a partir de um token devolvido por Exec.
// Token vazio ou inválido recomeça do início.
func (qb *QueryBuilder[T]) StartToken(token string) *QueryBuilder[T] {
	qb.startKey = decodeToken(token)
	return qb
}

func (qb *QueryBuilder[T]) ScanForward(forward bool) *QueryBuilder[T] {
	qb.scanForward = &forward
	return qb
}

// Exec executa uma página da consulta. Devolve os itens da página e o token
// de continuação ("" significa fim da sequência).
func (qb *QueryBuilder[T]) Exec(ctx context.Context) ([]T, string, error) {
	builder := expression.NewBuilder()
	hasExpr := false

	if qb.keyCond != nil {
		builder = builder.WithKeyCondition(*qb.keyCond)
		hasExpr = true
	}
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
		hasExpr = true
	}

	// O expression builder recusa Build() sem nenhuma condição; um Scan sem
	// filtro é válido e segue sem expressão.
	var expr expression.Expression
	if hasExpr {
		var err error
		expr, err = builder.Build()
		if err != nil {
			return nil, "", faults.Invalid(serviceName, qb.store.cfg.TableName, fmt.Sprintf("expressão inválida: %v", err))
		}
	}

	if qb.isScan {
		return qb.execScan(ctx, expr)
	}
	if qb.keyCond == nil {
		return nil, "", faults.Invalid(serviceName, qb.store.cfg.TableName, "query sem condição de chave")
	}
	return qb.execQuery(ctx, expr)
}

// Pages devolve um iterador lazy sobre todas as páginas restantes.
func (qb *QueryBuilder[T]) Pages() *Pager[T] {
	return &Pager[T]{qb: qb, more: true}
}

/// Pager itera páginas de Query/Scan sob demanda. Restartável: o token corrente
// (Token) pode ser guardado e retomado depois com StartToken.
type Pager[T any] struct {
	qb    *QueryBuilder[T]
	token string
	more  bool
	begun bool
}

// HasMore reporta se ainda existem páginas a buscar.
func (p *Pager[T]) HasMore() bool { return p.more }

// Token devolve o token de continuação corrente.
func (p *Pager[T]) Token() string { return p.token }

// Next busca a próxima página. Devolve itens vazios e more=false no fim.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if !p.more {
		return nil, nil
	}
	if p.begun {
		p.qb.StartToken(p.token)
	}
	p.begun = true

	items, token, err := p.qb.Exec(ctx)
	if err != nil {
		return nil, err
	}
	p.token = token
	p.more = token != ""
	return items, nil
}

func (qb *QueryBuilder[T]) execQuery(ctx context.Context, expr expression.Expression) ([]T, string, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ScanIndexForward:          qb.scanForward,
		ExclusiveStartKey:         qb.startKey,
	}

	out, err := qb.store.client.Query(ctx, input)
	if err != nil {
		return nil, "", faults.Translate(serviceName, qb.store.cfg.TableName, err)
	}
	return qb.unmarshalResults(out.Items, out.LastEvaluatedKey)
}

func (qb *QueryBuilder[T]) execScan(ctx context.Context, expr expression.Expression) ([]T, string, error) {
	input := &dynamodb.ScanInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		IndexName:                 qb.indexName,
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     qb.limit,
		ExclusiveStartKey:         qb.startKey,
	}

	out, err := qb.store.client.Scan(ctx, input)
	if err != nil {
		return nil, "", faults.Translate(serviceName, qb.store.cfg.TableName, err)
	}
	return qb.unmarshalResults(out.Items, out.LastEvaluatedKey)
}

func (qb *QueryBuilder[T]) unmarshalResults(
	items []map[string]types.AttributeValue,
	lastKey map[string]types.AttributeValue,
) ([]T, string, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, "", fmt.Errorf("dyndb: unmarshal falhou: %w", err)
		}
		result = append(result, t)
	}
	return result, encodeToken(lastKey), nil
}
