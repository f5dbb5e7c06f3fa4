// Package sqsqueue encapsula uma fila SQS usada para eventos de atualização
// de estoque entre os componentes da aplicação.
//
// Assim como nos demais wrappers, a fila não adiciona garantia de ordenação
// nem at-least-once além do que o SQS já entrega.
package sqsqueue

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/supplychain-toolkit/faults"
)

const serviceName = "sqs"

// SQSClient define a interface necessária para a fila (permite mocking).
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Compile-time check: o cliente real do SDK satisfaz a interface.
var _ SQSClient = (*sqs.Client)(nil)

// Queue é um wrapper sem estado sobre uma fila SQS.
type Queue struct {
	client   SQSClient
	queueURL string
	logger   zerolog.Logger
}

// NewQueue cria o wrapper para a URL informada.
func NewQueue(client SQSClient, queueURL string) (*Queue, error) {
	if strings.TrimSpace(queueURL) == "" {
		return nil, faults.Invalid(serviceName, queueURL, "URL da fila obrigatória")
	}
	return &Queue{
		client:   client,
		queueURL: queueURL,
		logger:   log.With().Str("component", "sqsqueue").Logger(),
	}, nil
}

// URL devolve a URL da fila.
func (q *Queue) URL() string { return q.queueURL }

// Send envia uma mensagem de texto e devolve o message id do provider.
func (q *Queue) Send(ctx context.Context, body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", faults.Invalid(serviceName, q.queueURL, "corpo da mensagem vazio")
	}

	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return "", faults.Translate(serviceName, q.queueURL, err)
	}
	if out.MessageId == nil {
		return "", nil
	}
	return *out.MessageId, nil
}

// SendJSON serializa o payload e envia.
func (q *Queue) SendJSON(ctx context.Context, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", faults.Invalid(serviceName, q.queueURL, "payload não serializável: "+err.Error())
	}
	return q.Send(ctx, string(body))
}

// InboundMessage é o shape tipado de uma mensagem recebida. O ReceiptHandle é
// necessário para o ack via Delete.
type InboundMessage struct {
	MessageID     string
	Body          string
	ReceiptHandle string
}

// DecodeBody desserializa o corpo JSON da mensagem em target.
func (m InboundMessage) DecodeBody(target any) error {
	return json.Unmarshal([]byte(m.Body), target)
}

// Receive faz long polling (waitSeconds) e devolve até max mensagens.
// Devolver zero mensagens após o timeout de polling não é erro.
func (q *Queue) Receive(ctx context.Context, max int32, waitSeconds int32) ([]InboundMessage, error) {
	if max < 1 || max > 10 {
		return nil, faults.Invalid(serviceName, q.queueURL, "max deve estar entre 1 e 10")
	}

	out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: max,
		WaitTimeSeconds:     waitSeconds,
	})
	if err != nil {
		return nil, faults.Translate(serviceName, q.queueURL, err)
	}

	messages := make([]InboundMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		msg := InboundMessage{}
		if m.MessageId != nil {
			msg.MessageID = *m.MessageId
		}
		if m.Body != nil {
			msg.Body = *m.Body
		}
		if m.ReceiptHandle != nil {
			msg.ReceiptHandle = *m.ReceiptHandle
		}
		messages = append(messages, msg)
	}

	if len(messages) > 0 {
		q.logger.Debug().Int("count", len(messages)).Msg("mensagens recebidas")
	}
	return messages, nil
}

// Delete confirma o processamento de uma mensagem (ack).
func (q *Queue) Delete(ctx context.Context, receiptHandle string) error {
	if strings.TrimSpace(receiptHandle) == "" {
		return faults.Invalid(serviceName, q.queueURL, "receipt handle obrigatório")
	}
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	return faults.Translate(serviceName, q.queueURL, err)
}
