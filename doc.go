// Package supplychain_toolkit fornece wrappers finos e tipados sobre os
// serviços AWS usados por aplicações de supply chain: DynamoDB, S3, SNS,
// Lambda e SQS, com validação de parâmetros antes do despacho e uma
// taxonomia de erros consistente entre serviços.
//
// Visão Geral:
// Cada serviço tem seu próprio pacote, com uma interface estreita sobre o
// cliente do AWS SDK v2 para facilitar mocking:
// 1. Persistência (dyndb): Store[T] genérico com CRUD, batch e QueryBuilder paginado.
// 2. Objetos (s3store): upload/download de streams e arquivos, listagem com iterador.
// 3. Mensageria (snspub): publicação, assinaturas com filter policy e parsing de eventos.
// 4. Funções (lambdafn): invocação síncrona, assíncrona e tipada via JSON.
// 5. Filas (sqsqueue): envio e consumo com long polling.
//
// Os erros de todos os pacotes são traduzidos para a taxonomia do pacote
// faults (NotFoundError, ValidationError, ThrottledError, UnknownServiceError),
// de forma que o chamador decide retry e fallback sem inspecionar códigos do SDK.
// Nenhum wrapper faz retry por conta própria: a política de retry fica no
// retryer do aws.Config.
//
// Sub-Pacotes de Suporte:
//
// 1. pkg/config:
//   - Configuração via YAML, variáveis de ambiente (tags env) ou ambos.
//   - Resolução de valores "ssm://" e "secret://" no SSM e Secrets Manager.
//
// 2. pkg/logger e pkg/metrics:
//   - Logger global zerolog e provider de métricas Datadog (statsd) opcional.
//
// 3. supply:
//   - Modelos e stores do domínio (fornecedores, produtos, pedidos, estoque),
//     alertas de estoque baixo e IDs de rastreio.
//
// Exemplo de Início Rápido:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/aws/aws-sdk-go-v2/service/dynamodb"
//
//		"github.com/raywall/supplychain-toolkit/dyndb"
//		"github.com/raywall/supplychain-toolkit/faults"
//		"github.com/raywall/supplychain-toolkit/pkg/config"
//	)
//
//	type Product struct {
//		ID   string `dynamodbav:"product_id"`
//		Name string `dynamodbav:"name"`
//	}
//
//	func main() {
//		ctx := context.Background()
//
//		awsCfg, err := config.LoadAWS(ctx, "us-east-1")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		store := dyndb.New[Product](dynamodb.NewFromConfig(awsCfg), dyndb.TableConfig{
//			TableName: "FinishedProducts",
//			HashKey:   "product_id",
//		})
//
//		product, err := store.Get(ctx, "prod-001", nil)
//		if faults.IsNotFound(err) {
//			log.Println("produto não cadastrado")
//			return
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("Produto: %+v", product)
//	}
package supplychain_toolkit
