package supply

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/supplychain-toolkit/snspub"
)

// Alerter publica notificações do domínio no tópico SNS de alertas.
type Alerter struct {
	topic  *snspub.Topic
	logger zerolog.Logger
}

// NewAlerter cria o alerter para um tópico já construído.
func NewAlerter(topic *snspub.Topic) *Alerter {
	return &Alerter{
		topic:  topic,
		logger: log.With().Str("component", "alerter").Logger(),
	}
}

// LowStockAlert publica um alerta de estoque abaixo do nível de reposição e
// devolve o message id.
func (a *Alerter) LowStockAlert(ctx context.Context, productName string, quantity int) (string, error) {
	body := fmt.Sprintf("Product '%s' is below the reorder level (%d left).", productName, quantity)

	// O mesmo correlation_id viaja na mensagem e no log, para cruzar os dois.
	correlationID := uuid.NewString()

	result, err := a.topic.Publish(ctx, snspub.Message{
		Subject:    "Low Stock Alert",
		Body:       body,
		Attributes: map[string]string{"correlation_id": correlationID},
	})
	if err != nil {
		return "", err
	}

	a.logger.Info().
		Str("correlation_id", correlationID).
		Str("message_id", result.MessageID).
		Str("product", productName).
		Int("quantity", quantity).
		Msg("alerta de estoque publicado")
	return result.MessageID, nil
}

// OrderStatusAlert publica a mudança de status de um pedido de cliente.
// O atributo customer_email casa com a filter policy das assinaturas
// criadas por EnsureCustomerSubscription.
func (a *Alerter) OrderStatusAlert(ctx context.Context, order CustomerOrder) (string, error) {
	body := fmt.Sprintf("Order %s is now %s.", order.ID, order.Status)

	result, err := a.topic.Publish(ctx, snspub.Message{
		Subject:    "Order Status Update",
		Body:       body,
		Attributes: map[string]string{"customer_email": order.CustomerEmail},
	})
	if err != nil {
		return "", err
	}
	return result.MessageID, nil
}

// EnsureCustomerSubscription garante uma assinatura de e-mail do cliente no
// tópico, com filter policy por customer_email. Idempotente.
func (a *Alerter) EnsureCustomerSubscription(ctx context.Context, customerEmail string) (string, error) {
	return a.topic.EnsureSubscription(ctx, "email", customerEmail,
		map[string][]string{"customer_email": {customerEmail}})
}
