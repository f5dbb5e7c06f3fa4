package s3store_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/supplychain-toolkit/s3store"
)

func pagedClient(t *testing.T) *s3store.MockS3Client {
	t.Helper()
	return &s3store.MockS3Client{
		ListObjectsV2Fn: func(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			assert.Equal(t, "reports/", *params.Prefix)
			if params.ContinuationToken == nil {
				return &s3.ListObjectsV2Output{
					Contents: []s3types.Object{
						{Key: aws.String("reports/a.csv"), Size: aws.Int64(10)},
						{Key: aws.String("reports/b.csv"), Size: aws.Int64(20)},
					},
					IsTruncated:           aws.Bool(true),
					NextContinuationToken: aws.String("page-2"),
				}, nil
			}
			assert.Equal(t, "page-2", *params.ContinuationToken)
			return &s3.ListObjectsV2Output{
				Contents: []s3types.Object{
					{Key: aws.String("reports/c.csv"), Size: aws.Int64(30)},
				},
				IsTruncated: aws.Bool(false),
			}, nil
		},
	}
}

func TestList_LazyAndFinite(t *testing.T) {
	t.Parallel()

	bucket, err := s3store.NewBucket(pagedClient(t), "supply-reports", "")
	require.NoError(t, err)

	it := bucket.List("reports/")
	require.True(t, it.HasMore(), "nenhuma página buscada ainda")

	keys, err := it.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/a.csv", "reports/b.csv", "reports/c.csv"}, keys)
	assert.False(t, it.HasMore())

	// Depois do fim, Next devolve página vazia sem nova chamada ao provider
	page, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestList_RestartFromToken(t *testing.T) {
	t.Parallel()

	bucket, err := s3store.NewBucket(pagedClient(t), "supply-reports", "")
	require.NoError(t, err)

	it := bucket.List("reports/")
	first, err := it.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	token := it.Token()
	require.NotEmpty(t, token)

	// Um iterador novo retoma exatamente da segunda página
	rest, err := bucket.List("reports/").Resume(token).Next(context.Background())
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "reports/c.csv", rest[0].Key)
	assert.Equal(t, int64(30), rest[0].Size)
}

func TestList_PageSize(t *testing.T) {
	t.Parallel()

	var captured *s3.ListObjectsV2Input
	client := &s3store.MockS3Client{
		ListObjectsV2Fn: func(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
			captured = params
			return &s3.ListObjectsV2Output{}, nil
		},
	}
	bucket, err := s3store.NewBucket(client, "b", "")
	require.NoError(t, err)

	_, err = bucket.List("").PageSize(100).Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, captured.MaxKeys)
	assert.Equal(t, int32(100), *captured.MaxKeys)
}
