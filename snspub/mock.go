package snspub

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// MockSNSClient é um mock por campos-função da interface SNSClient.
type MockSNSClient struct {
	PublishFn                  func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	SubscribeFn                func(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	UnsubscribeFn              func(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error)
	ListSubscriptionsByTopicFn func(ctx context.Context, params *sns.ListSubscriptionsByTopicInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsByTopicOutput, error)
	CreateTopicFn              func(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	ListTopicsFn               func(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
}

var _ SNSClient = (*MockSNSClient)(nil)

func (m *MockSNSClient) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, params, optFns...)
	}
	return &sns.PublishOutput{}, nil
}

func (m *MockSNSClient) Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error) {
	if m.SubscribeFn != nil {
		return m.SubscribeFn(ctx, params, optFns...)
	}
	return &sns.SubscribeOutput{}, nil
}

func (m *MockSNSClient) Unsubscribe(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error) {
	if m.UnsubscribeFn != nil {
		return m.UnsubscribeFn(ctx, params, optFns...)
	}
	return &sns.UnsubscribeOutput{}, nil
}

func (m *MockSNSClient) ListSubscriptionsByTopic(ctx context.Context, params *sns.ListSubscriptionsByTopicInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsByTopicOutput, error) {
	if m.ListSubscriptionsByTopicFn != nil {
		return m.ListSubscriptionsByTopicFn(ctx, params, optFns...)
	}
	return &sns.ListSubscriptionsByTopicOutput{}, nil
}

func (m *MockSNSClient) CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error) {
	if m.CreateTopicFn != nil {
		return m.CreateTopicFn(ctx, params, optFns...)
	}
	return &sns.CreateTopicOutput{}, nil
}

func (m *MockSNSClient) ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error) {
	if m.ListTopicsFn != nil {
		return m.ListTopicsFn(ctx, params, optFns...)
	}
	return &sns.ListTopicsOutput{}, nil
}
