package s3store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/raywall/supplychain-toolkit/faults"
)

// List inicia uma listagem lazy das chaves do bucket sob um prefixo.
// Nada é buscado até a primeira chamada de Next.
func (b *Bucket) List(prefix string) *ObjectIterator {
	return &ObjectIterator{
		bucket: b,
		prefix: prefix,
		more:   true,
	}
}

// ObjectIterator percorre páginas de ListObjectsV2 sob demanda.
//
// A sequência é finita e restartável: o ContinuationToken corrente pode ser
// lido com Token e um iterador novo pode retomar dele via Resume.
type ObjectIterator struct {
	bucket  *Bucket
	prefix  string
	token   string
	more    bool
	begun   bool
	maxKeys *int32
}

// Resume retoma a listagem do token de continuação informado.
func (it *ObjectIterator) Resume(token string) *ObjectIterator {
	it.token = token
	it.begun = token != ""
	return it
}

// PageSize limita o número de chaves por página.
func (it *ObjectIterator) PageSize(n int32) *ObjectIterator {
	it.maxKeys = &n
	return it
}

// HasMore reporta se ainda existem páginas.
func (it *ObjectIterator) HasMore() bool { return it.more }

// Token devolve o token de continuação corrente ("" no início ou no fim).
func (it *ObjectIterator) Token() string { return it.token }

// Next busca a próxima página de objetos. No fim devolve página vazia e
// HasMore passa a reportar false.
func (it *ObjectIterator) Next(ctx context.Context) ([]ObjectInfo, error) {
	if !it.more {
		return nil, nil
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(it.bucket.name),
		Prefix:  aws.String(it.prefix),
		MaxKeys: it.maxKeys,
	}
	if it.begun && it.token != "" {
		input.ContinuationToken = aws.String(it.token)
	}
	it.begun = true

	out, err := it.bucket.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, faults.Translate(serviceName, it.bucket.name, err)
	}

	page := make([]ObjectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		info := ObjectInfo{}
		if obj.Key != nil {
			info.Key = *obj.Key
		}
		if obj.Size != nil {
			info.Size = *obj.Size
		}
		if obj.ETag != nil {
			info.ETag = *obj.ETag
		}
		if obj.LastModified != nil {
			info.LastModified = *obj.LastModified
		}
		page = append(page, info)
	}

	if out.IsTruncated != nil && *out.IsTruncated && out.NextContinuationToken != nil {
		it.token = *out.NextContinuationToken
		it.more = true
	} else {
		it.token = ""
		it.more = false
	}
	return page, nil
}

// Keys consome o iterador até o fim e devolve todas as chaves.
func (it *ObjectIterator) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for it.HasMore() {
		page, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page {
			keys = append(keys, obj.Key)
		}
	}
	return keys, nil
}
