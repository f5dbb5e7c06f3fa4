// Package snspub encapsula publicação e gerenciamento de assinaturas em
// tópicos SNS.
//
// O Topic é construído com o ARN do tópico e um cliente injetado. O wrapper
// não adiciona garantia de ordenação nem de entrega além do que o SNS
// oferece; publish é um round trip único e o message id devolvido vem do
// provider.
package snspub

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/goccy/go-json"

	"github.com/raywall/supplychain-toolkit/faults"
)

const serviceName = "sns"

// SNSClient é o subconjunto do *sns.Client usado pelo Topic.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	Subscribe(ctx context.Context, params *sns.SubscribeInput, optFns ...func(*sns.Options)) (*sns.SubscribeOutput, error)
	Unsubscribe(ctx context.Context, params *sns.UnsubscribeInput, optFns ...func(*sns.Options)) (*sns.UnsubscribeOutput, error)
	ListSubscriptionsByTopic(ctx context.Context, params *sns.ListSubscriptionsByTopicInput, optFns ...func(*sns.Options)) (*sns.ListSubscriptionsByTopicOutput, error)
	CreateTopic(ctx context.Context, params *sns.CreateTopicInput, optFns ...func(*sns.Options)) (*sns.CreateTopicOutput, error)
	ListTopics(ctx context.Context, params *sns.ListTopicsInput, optFns ...func(*sns.Options)) (*sns.ListTopicsOutput, error)
}

// Compile-time check: o cliente real do SDK satisfaz a interface.
var _ SNSClient = (*sns.Client)(nil)

// Topic é um wrapper sem estado sobre um tópico SNS.
type Topic struct {
	client SNSClient
	arn    string
}

// NewTopic cria o wrapper. O ARN é validado na construção: ARN malformado
// falha com ValidationError antes de qualquer dispatch.
func NewTopic(client SNSClient, topicARN string) (*Topic, error) {
	if err := validateTopicARN(topicARN); err != nil {
		return nil, err
	}
	return &Topic{client: client, arn: topicARN}, nil
}

// ARN devolve o ARN do tópico.
func (t *Topic) ARN() string { return t.arn }

// validateTopicARN checa o formato arn:<partition>:sns:<region>:<account>:<name>.
func validateTopicARN(arn string) error {
	parts := strings.Split(arn, ":")
	if len(parts) != 6 || parts[0] != "arn" || parts[2] != "sns" || parts[5] == "" {
		return faults.Invalid(serviceName, arn, "topic ARN malformado")
	}
	return nil
}

// Message é a entrada tipada de Publish.
type Message struct {
	Subject    string
	Body       string
	Attributes map[string]string
}

// PublishResult é o resultado tipado de Publish.
type PublishResult struct {
	MessageID      string
	SequenceNumber string
}

// Publish envia uma mensagem ao tópico e devolve o identificador gerado
// pelo provider.
func (t *Topic) Publish(ctx context.Context, msg Message) (*PublishResult, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return nil, faults.Invalid(serviceName, t.arn, "corpo da mensagem vazio")
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(t.arn),
		Message:  aws.String(msg.Body),
	}
	if msg.Subject != "" {
		input.Subject = aws.String(msg.Subject)
	}
	if len(msg.Attributes) > 0 {
		attrs := make(map[string]snstypes.MessageAttributeValue, len(msg.Attributes))
		for k, v := range msg.Attributes {
			attrs[k] = snstypes.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
		input.MessageAttributes = attrs
	}

	out, err := t.client.Publish(ctx, input)
	if err != nil {
		return nil, faults.Translate(serviceName, t.arn, err)
	}

	result := &PublishResult{}
	if out.MessageId != nil {
		result.MessageID = *out.MessageId
	}
	if out.SequenceNumber != nil {
		result.SequenceNumber = *out.SequenceNumber
	}
	return result, nil
}

// PublishJSON serializa o payload como JSON e publica.
func (t *Topic) PublishJSON(ctx context.Context, subject string, payload any) (*PublishResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, faults.Invalid(serviceName, t.arn, "payload não serializável: "+err.Error())
	}
	return t.Publish(ctx, Message{Subject: subject, Body: string(body)})
}

// Subscription é o shape tipado de uma assinatura do tópico.
type Subscription struct {
	ARN      string
	Protocol string
	Endpoint string
}

// Subscribe inscreve um endpoint no tópico. O filterPolicy opcional é
// serializado como atributo FilterPolicy da assinatura.
func (t *Topic) Subscribe(ctx context.Context, protocol, endpoint string, filterPolicy map[string][]string) (string, error) {
	if protocol == "" || endpoint == "" {
		return "", faults.Invalid(serviceName, t.arn, "protocol e endpoint são obrigatórios")
	}

	var attrs map[string]string
	if len(filterPolicy) > 0 {
		policy, err := json.Marshal(filterPolicy)
		if err != nil {
			return "", faults.Invalid(serviceName, t.arn, "filter policy não serializável: "+err.Error())
		}
		attrs = map[string]string{"FilterPolicy": string(policy)}
	}

	out, err := t.client.Subscribe(ctx, &sns.SubscribeInput{
		TopicArn:              aws.String(t.arn),
		Protocol:              aws.String(protocol),
		Endpoint:              aws.String(endpoint),
		Attributes:            attrs,
		ReturnSubscriptionArn: true,
	})
	if err != nil {
		return "", faults.Translate(serviceName, t.arn, err)
	}
	if out.SubscriptionArn == nil {
		return "", nil
	}
	return *out.SubscriptionArn, nil
}

// Unsubscribe remove uma assinatura pelo ARN dela.
func (t *Topic) Unsubscribe(ctx context.Context, subscriptionARN string) error {
	if strings.TrimSpace(subscriptionARN) == "" {
		return faults.Invalid(serviceName, t.arn, "subscription ARN obrigatório")
	}
	_, err := t.client.Unsubscribe(ctx, &sns.UnsubscribeInput{
		SubscriptionArn: aws.String(subscriptionARN),
	})
	return faults.Translate(serviceName, t.arn, err)
}

// Subscriptions lista todas as assinaturas do tópico, paginando internamente.
func (t *Topic) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription
	var nextToken *string

	for {
		out, err := t.client.ListSubscriptionsByTopic(ctx, &sns.ListSubscriptionsByTopicInput{
			TopicArn:  aws.String(t.arn),
			NextToken: nextToken,
		})
		if err != nil {
			return nil, faults.Translate(serviceName, t.arn, err)
		}

		for _, s := range out.Subscriptions {
			sub := Subscription{}
			if s.SubscriptionArn != nil {
				sub.ARN = *s.SubscriptionArn
			}
			if s.Protocol != nil {
				sub.Protocol = *s.Protocol
			}
			if s.Endpoint != nil {
				sub.Endpoint = *s.Endpoint
			}
			subs = append(subs, sub)
		}

		if out.NextToken == nil {
			return subs, nil
		}
		nextToken = out.NextToken
	}
}

// EnsureSubscription inscreve o endpoint apenas se ele ainda não estiver
// inscrito, devolvendo o ARN da assinatura existente ou da recém-criada.
func (t *Topic) EnsureSubscription(ctx context.Context, protocol, endpoint string, filterPolicy map[string][]string) (string, error) {
	existing, err := t.Subscriptions(ctx)
	if err != nil {
		return "", err
	}
	for _, sub := range existing {
		if sub.Endpoint == endpoint {
			return sub.ARN, nil
		}
	}
	return t.Subscribe(ctx, protocol, endpoint, filterPolicy)
}

// CreateTopic cria (ou recupera, a operação é idempotente no SNS) um tópico
// pelo nome e devolve um Topic pronto para uso.
func CreateTopic(ctx context.Context, client SNSClient, name string) (*Topic, error) {
	if strings.TrimSpace(name) == "" {
		return nil, faults.Invalid(serviceName, name, "nome de tópico obrigatório")
	}
	out, err := client.CreateTopic(ctx, &sns.CreateTopicInput{Name: aws.String(name)})
	if err != nil {
		return nil, faults.Translate(serviceName, name, err)
	}
	if out.TopicArn == nil {
		return nil, faults.Invalid(serviceName, name, "provider não devolveu ARN")
	}
	return NewTopic(client, *out.TopicArn)
}

// ListTopics devolve os ARNs de todos os tópicos da conta.
func ListTopics(ctx context.Context, client SNSClient) ([]string, error) {
	var arns []string
	var nextToken *string

	for {
		out, err := client.ListTopics(ctx, &sns.ListTopicsInput{NextToken: nextToken})
		if err != nil {
			return nil, faults.Translate(serviceName, "topics", err)
		}
		for _, topic := range out.Topics {
			if topic.TopicArn != nil {
				arns = append(arns, *topic.TopicArn)
			}
		}
		if out.NextToken == nil {
			return arns, nil
		}
		nextToken = out.NextToken
	}
}
