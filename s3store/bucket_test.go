package s3store_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/supplychain-toolkit/faults"
	"github.com/raywall/supplychain-toolkit/s3store"
)

// fakeObjects simula o conteúdo do bucket em memória.
type fakeObjects struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{data: make(map[string][]byte)}
}

func (f *fakeObjects) client() *s3store.MockS3Client {
	return &s3store.MockS3Client{
		PutObjectFn: func(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			body, err := io.ReadAll(params.Body)
			if err != nil {
				return nil, err
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			f.data[*params.Key] = body
			return &s3.PutObjectOutput{}, nil
		},
		GetObjectFn: func(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			body, ok := f.data[*params.Key]
			if !ok {
				return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "the specified key does not exist"}
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
		},
		DeleteObjectFn: func(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.data, *params.Key)
			return &s3.DeleteObjectOutput{}, nil
		},
	}
}

func TestUploadDownload_RoundTrip(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	bucket, err := s3store.NewBucket(objects.client(), "supply-reports", "us-east-1")
	require.NoError(t, err)

	content := []byte("po_id,quantity\nPO-1,42\n")
	require.NoError(t, bucket.Upload(context.Background(), "reports/po.csv", bytes.NewReader(content)))

	var out bytes.Buffer
	require.NoError(t, bucket.Download(context.Background(), "reports/po.csv", &out))

	// Conteúdo byte a byte idêntico ao enviado
	assert.Equal(t, content, out.Bytes())
}

func TestDownload_KeyInexistente(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	bucket, err := s3store.NewBucket(objects.client(), "supply-reports", "")
	require.NoError(t, err)

	var out bytes.Buffer
	err = bucket.Download(context.Background(), "nunca-enviado", &out)
	assert.True(t, faults.IsNotFound(err))
}

func TestNewBucket_NomeVazio(t *testing.T) {
	t.Parallel()

	_, err := s3store.NewBucket(&s3store.MockS3Client{}, "   ", "us-east-1")
	assert.True(t, faults.IsValidation(err))
}

func TestUpload_ChaveVazia(t *testing.T) {
	t.Parallel()

	bucket, err := s3store.NewBucket(&s3store.MockS3Client{}, "b", "")
	require.NoError(t, err)

	err = bucket.Upload(context.Background(), "", bytes.NewReader([]byte("x")))
	assert.True(t, faults.IsValidation(err))
}

func TestDelete_RemovesObject(t *testing.T) {
	t.Parallel()

	objects := newFakeObjects()
	bucket, err := s3store.NewBucket(objects.client(), "supply-reports", "")
	require.NoError(t, err)

	require.NoError(t, bucket.Upload(context.Background(), "tmp.txt", bytes.NewReader([]byte("x"))))
	require.NoError(t, bucket.Delete(context.Background(), "tmp.txt"))

	var out bytes.Buffer
	assert.True(t, faults.IsNotFound(bucket.Download(context.Background(), "tmp.txt", &out)))
}

func TestUpload_ThrottlingTraduzido(t *testing.T) {
	t.Parallel()

	client := &s3store.MockS3Client{
		PutObjectFn: func(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "SlowDown", Message: "reduce your request rate"}
		},
	}
	bucket, err := s3store.NewBucket(client, "b", "")
	require.NoError(t, err)

	err = bucket.Upload(context.Background(), "k", bytes.NewReader([]byte("x")))
	assert.True(t, faults.IsThrottled(err))
}

func TestEnsureBucket_CriaQuandoAusente(t *testing.T) {
	t.Parallel()

	created := false
	client := &s3store.MockS3Client{
		HeadBucketFn: func(ctx context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "bucket not found"}
		},
		CreateBucketFn: func(ctx context.Context, params *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
			created = true
			// Fora de us-east-1 a LocationConstraint é obrigatória
			require.NotNil(t, params.CreateBucketConfiguration)
			assert.Equal(t, "sa-east-1", string(params.CreateBucketConfiguration.LocationConstraint))
			return &s3.CreateBucketOutput{}, nil
		},
	}
	bucket, err := s3store.NewBucket(client, "novo-bucket", "sa-east-1")
	require.NoError(t, err)

	require.NoError(t, bucket.EnsureBucket(context.Background()))
	assert.True(t, created)
}

func TestEnsureBucket_JaExiste(t *testing.T) {
	t.Parallel()

	client := &s3store.MockS3Client{
		CreateBucketFn: func(ctx context.Context, params *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
			t.Fatal("não deveria criar bucket existente")
			return nil, nil
		},
	}
	bucket, err := s3store.NewBucket(client, "existente", "us-east-1")
	require.NoError(t, err)
	assert.NoError(t, bucket.EnsureBucket(context.Background()))
}
