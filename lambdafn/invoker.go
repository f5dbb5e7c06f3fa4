// Package lambdafn encapsula a invocação de funções Lambda, síncrona e
// assíncrona.
//
// O Invoker é construído com o nome (ou ARN) da função e um cliente injetado.
// Não há batching nem retry local; a invocação é um round trip único do SDK.
package lambdafn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/goccy/go-json"

	"github.com/raywall/supplychain-toolkit/faults"
)

const serviceName = "lambda"

// LambdaClient é o subconjunto do *lambda.Client usado pelo Invoker.
type LambdaClient interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Compile-time check: o cliente real do SDK satisfaz a interface.
var _ LambdaClient = (*lambda.Client)(nil)

// Invoker é um wrapper sem estado sobre uma função Lambda.
type Invoker struct {
	client       LambdaClient
	functionName string
}

// NewInvoker cria o wrapper. O nome da função é obrigatório.
func NewInvoker(client LambdaClient, functionName string) (*Invoker, error) {
	functionName = strings.TrimSpace(functionName)
	if functionName == "" {
		return nil, faults.Invalid(serviceName, functionName, "nome da função obrigatório")
	}
	return &Invoker{client: client, functionName: functionName}, nil
}

// FunctionName devolve o nome da função alvo.
func (i *Invoker) FunctionName() string { return i.functionName }

// InvokeResult é o resultado tipado de uma invocação síncrona.
type InvokeResult struct {
	StatusCode      int32
	Payload         []byte
	ExecutedVersion string
}

// FunctionError indica que a função executou e devolveu um erro (Handled ou
// Unhandled); o payload de erro fica disponível para inspeção.
type FunctionError struct {
	FunctionName string
	Kind         string
	Payload      []byte
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("lambda %s devolveu erro (%s): %s", e.FunctionName, e.Kind, string(e.Payload))
}

// marshalPayload serializa o payload. []byte e json.RawMessage passam
// inalterados; nil vira payload vazio.
func marshalPayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case []byte:
		return p, nil
	case json.RawMessage:
		return p, nil
	default:
		return json.Marshal(payload)
	}
}

// Invoke executa a função em modo síncrono (RequestResponse) e bloqueia até
// o payload de resposta chegar. Um erro da própria função vira um
// UnknownServiceError embrulhando FunctionError.
func (i *Invoker) Invoke(ctx context.Context, payload any) (*InvokeResult, error) {
	body, err := marshalPayload(payload)
	if err != nil {
		return nil, faults.Invalid(serviceName, i.functionName, "payload não serializável: "+err.Error())
	}

	out, err := i.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   &i.functionName,
		InvocationType: lambdatypes.InvocationTypeRequestResponse,
		Payload:        body,
	})
	if err != nil {
		return nil, faults.Translate(serviceName, i.functionName, err)
	}

	if out.FunctionError != nil {
		fnErr := &FunctionError{
			FunctionName: i.functionName,
			Kind:         *out.FunctionError,
			Payload:      out.Payload,
		}
		return nil, faults.Unknown(serviceName, i.functionName, fnErr)
	}

	result := &InvokeResult{Payload: out.Payload}
	result.StatusCode = out.StatusCode
	if out.ExecutedVersion != nil {
		result.ExecutedVersion = *out.ExecutedVersion
	}
	return result, nil
}

// InvokeJSON invoca em modo síncrono e desserializa a resposta em result.
func (i *Invoker) InvokeJSON(ctx context.Context, payload, result any) error {
	out, err := i.Invoke(ctx, payload)
	if err != nil {
		return err
	}
	if result == nil || len(out.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(out.Payload, result); err != nil {
		return fmt.Errorf("lambdafn: resposta não desserializável: %w", err)
	}
	return nil
}

// InvokeAsync agenda a execução (modo Event) e devolve imediatamente o
// identificador da invocação (request id do AWS).
func (i *Invoker) InvokeAsync(ctx context.Context, payload any) (string, error) {
	body, err := marshalPayload(payload)
	if err != nil {
		return "", faults.Invalid(serviceName, i.functionName, "payload não serializável: "+err.Error())
	}

	out, err := i.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   &i.functionName,
		InvocationType: lambdatypes.InvocationTypeEvent,
		Payload:        body,
	})
	if err != nil {
		return "", faults.Translate(serviceName, i.functionName, err)
	}

	if reqID, ok := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata); ok {
		return reqID, nil
	}
	// Sem request id nos metadados (mock ou transporte não-HTTP): o aceite
	// (202) ainda vale como confirmação.
	if out.StatusCode != 0 {
		return fmt.Sprintf("accepted:%d", out.StatusCode), nil
	}
	return "", errors.New("lambdafn: invocação assíncrona sem confirmação do provider")
}

// IsFunctionError reporta se err veio da execução da própria função
// (em oposição a uma falha do serviço Lambda).
func IsFunctionError(err error) bool {
	var target *FunctionError
	return errors.As(err, &target)
}
