package sqsqueue_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/supplychain-toolkit/faults"
	"github.com/raywall/supplychain-toolkit/sqsqueue"
)

const queueURL = "https://sqs.us-east-1.amazonaws.com/123456789012/inventory-refresh"

type mockSQS struct {
	sendFn    func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	receiveFn func(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	deleteFn  func(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.sendFn != nil {
		return m.sendFn(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func (m *mockSQS) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if m.receiveFn != nil {
		return m.receiveFn(ctx, params, optFns...)
	}
	return &sqs.ReceiveMessageOutput{}, nil
}

func (m *mockSQS) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, params, optFns...)
	}
	return &sqs.DeleteMessageOutput{}, nil
}

func TestSendJSON(t *testing.T) {
	t.Parallel()

	var captured *sqs.SendMessageInput
	client := &mockSQS{
		sendFn: func(ctx context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			captured = params
			return &sqs.SendMessageOutput{MessageId: aws.String("m1")}, nil
		},
	}
	queue, err := sqsqueue.NewQueue(client, queueURL)
	require.NoError(t, err)

	id, err := queue.SendJSON(context.Background(), map[string]any{"product_id": "p1", "delta": 10})
	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	require.NotNil(t, captured)
	assert.Equal(t, queueURL, *captured.QueueUrl)
	assert.JSONEq(t, `{"product_id":"p1","delta":10}`, *captured.MessageBody)
}

func TestReceive_LongPolling(t *testing.T) {
	t.Parallel()

	client := &mockSQS{
		receiveFn: func(ctx context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			assert.Equal(t, int32(20), params.WaitTimeSeconds)
			return &sqs.ReceiveMessageOutput{
				Messages: []sqstypes.Message{
					{
						MessageId:     aws.String("m1"),
						Body:          aws.String(`{"product_id":"p1"}`),
						ReceiptHandle: aws.String("rh-1"),
					},
				},
			}, nil
		},
	}
	queue, err := sqsqueue.NewQueue(client, queueURL)
	require.NoError(t, err)

	msgs, err := queue.Receive(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "rh-1", msgs[0].ReceiptHandle)

	var payload struct {
		ProductID string `json:"product_id"`
	}
	require.NoError(t, msgs[0].DecodeBody(&payload))
	assert.Equal(t, "p1", payload.ProductID)
}

func TestReceive_MaxForaDoIntervalo(t *testing.T) {
	t.Parallel()

	queue, err := sqsqueue.NewQueue(&mockSQS{}, queueURL)
	require.NoError(t, err)

	_, err = queue.Receive(context.Background(), 11, 0)
	assert.True(t, faults.IsValidation(err))
}

func TestDelete_Ack(t *testing.T) {
	t.Parallel()

	deleted := ""
	client := &mockSQS{
		deleteFn: func(ctx context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
			deleted = *params.ReceiptHandle
			return &sqs.DeleteMessageOutput{}, nil
		},
	}
	queue, err := sqsqueue.NewQueue(client, queueURL)
	require.NoError(t, err)

	require.NoError(t, queue.Delete(context.Background(), "rh-1"))
	assert.Equal(t, "rh-1", deleted)
}

func TestSend_Throttled(t *testing.T) {
	t.Parallel()

	client := &mockSQS{
		sendFn: func(ctx context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "RequestThrottled", Message: "throttled"}
		},
	}
	queue, err := sqsqueue.NewQueue(client, queueURL)
	require.NoError(t, err)

	_, err = queue.Send(context.Background(), "x")
	assert.True(t, faults.IsThrottled(err))
}
