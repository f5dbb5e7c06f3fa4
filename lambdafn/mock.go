package lambdafn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// MockLambdaClient é um mock por campo-função da interface LambdaClient.
type MockLambdaClient struct {
	InvokeFn func(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

var _ LambdaClient = (*MockLambdaClient)(nil)

func (m *MockLambdaClient) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	if m.InvokeFn != nil {
		return m.InvokeFn(ctx, params, optFns...)
	}
	return &lambda.InvokeOutput{}, nil
}
