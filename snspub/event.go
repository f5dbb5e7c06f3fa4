package snspub

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/goccy/go-json"
)

// Record é o shape tipado de um registro SNS recebido por uma Lambda.
type Record struct {
	MessageID  string
	TopicARN   string
	Subject    string
	Body       string
	Attributes map[string]string
}

// ParseEvent converte um events.SNSEvent nos registros tipados do toolkit,
// achatando os atributos de mensagem para string.
func ParseEvent(event events.SNSEvent) []Record {
	records := make([]Record, 0, len(event.Records))
	for _, r := range event.Records {
		rec := Record{
			MessageID: r.SNS.MessageID,
			TopicARN:  r.SNS.TopicArn,
			Subject:   r.SNS.Subject,
			Body:      r.SNS.Message,
		}
		if len(r.SNS.MessageAttributes) > 0 {
			rec.Attributes = make(map[string]string, len(r.SNS.MessageAttributes))
			for k, v := range r.SNS.MessageAttributes {
				if attr, ok := v.(map[string]interface{}); ok {
					if s, ok := attr["Value"].(string); ok {
						rec.Attributes[k] = s
					}
				}
			}
		}
		records = append(records, rec)
	}
	return records
}

// DecodeBody desserializa o corpo JSON de um registro em target.
func (r Record) DecodeBody(target any) error {
	return json.Unmarshal([]byte(r.Body), target)
}
