// Package s3store encapsula as operações de objeto do S3 usadas pela
// aplicação: upload, download, remoção e listagem lazy de chaves.
//
// O Bucket é construído com o nome do bucket e um cliente injetado (interface
// estreita sobre o *s3.Client), permitindo mock por instância nos testes.
// Toda chamada é um round trip real, sem cache local.
package s3store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/raywall/supplychain-toolkit/faults"
)

const serviceName = "s3"

// S3Client é o subconjunto do *s3.Client usado pelo Bucket.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// Compile-time check: o cliente real do SDK satisfaz a interface.
var _ S3Client = (*s3.Client)(nil)

// Bucket é um wrapper sem estado sobre um bucket S3.
type Bucket struct {
	client S3Client
	name   string
	region string
}

// NewBucket cria o wrapper. O nome do bucket é obrigatório; region é usada
// apenas pelo EnsureBucket (LocationConstraint).
func NewBucket(client S3Client, name, region string) (*Bucket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, faults.Invalid(serviceName, name, "nome de bucket obrigatório")
	}
	return &Bucket{client: client, name: name, region: region}, nil
}

// Name devolve o nome do bucket.
func (b *Bucket) Name() string { return b.name }

// EnsureBucket cria o bucket caso não exista. Fora de us-east-1 o S3 exige a
// LocationConstraint; em us-east-1 ela é proibida.
func (b *Bucket) EnsureBucket(ctx context.Context) error {
	_, err := b.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(b.name)})
	if err == nil {
		return nil
	}
	if !faults.IsNotFound(faults.Translate(serviceName, b.name, err)) {
		return faults.Translate(serviceName, b.name, err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(b.name)}
	if b.region != "" && b.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(b.region),
		}
	}
	_, err = b.client.CreateBucket(ctx, input)
	return faults.Translate(serviceName, b.name, err)
}

// Upload envia o conteúdo do reader para a chave informada.
func (b *Bucket) Upload(ctx context.Context, key string, body io.Reader) error {
	if strings.TrimSpace(key) == "" {
		return faults.Invalid(serviceName, b.name, "chave de objeto obrigatória")
	}
	if body == nil {
		return faults.Invalid(serviceName, b.name, "conteúdo nil")
	}

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
		Body:   body,
	})
	return faults.Translate(serviceName, b.name+"/"+key, err)
}

// UploadFile envia um arquivo local. Com key vazia usa o basename do arquivo.
func (b *Bucket) UploadFile(ctx context.Context, key, path string) error {
	if key == "" {
		key = filepath.Base(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("s3store: abrir %s: %w", path, err)
	}
	defer f.Close()
	return b.Upload(ctx, key, f)
}

// Download grava o conteúdo do objeto no writer de destino.
func (b *Bucket) Download(ctx context.Context, key string, dst io.Writer) error {
	if strings.TrimSpace(key) == "" {
		return faults.Invalid(serviceName, b.name, "chave de objeto obrigatória")
	}

	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return faults.Translate(serviceName, b.name+"/"+key, err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(dst, out.Body); err != nil {
		return fmt.Errorf("s3store: copiar corpo de %s/%s: %w", b.name, key, err)
	}
	return nil
}

// DownloadFile baixa o objeto para um arquivo local.
func (b *Bucket) DownloadFile(ctx context.Context, key, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("s3store: criar %s: %w", path, err)
	}
	defer f.Close()
	return b.Download(ctx, key, f)
}

// Delete remove um objeto do bucket.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return faults.Invalid(serviceName, b.name, "chave de objeto obrigatória")
	}

	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	return faults.Translate(serviceName, b.name+"/"+key, err)
}

// ObjectInfo é o resultado tipado da listagem; o chamador não depende do
// shape de resposta do provider.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
}
