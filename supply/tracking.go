package supply

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTrackingID gera um identificador no formato PREFIX-YYYYMMDDHHMMSS-XXXX,
// com sufixo aleatório de 4 caracteres.
func NewTrackingID(prefix string) string {
	datePart := time.Now().UTC().Format("20060102150405")

	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteByte(trackingAlphabet[rand.Intn(len(trackingAlphabet))])
	}
	return fmt.Sprintf("%s-%s-%s", prefix, datePart, sb.String())
}

// BelowThreshold reporta se a quantidade está no nível de reposição ou abaixo.
func BelowThreshold(quantity, threshold int) bool {
	return quantity <= threshold
}
