package faults

import (
	"errors"

	"github.com/aws/smithy-go"
)

// Códigos de throttling compartilhados entre os serviços AWS. A lista cobre
// DynamoDB, S3, SNS e Lambda; códigos novos caem em UnknownServiceError.
var throttleCodes = map[string]bool{
	"ThrottlingException":                    true,
	"Throttling":                             true,
	"ThrottledException":                     true,
	"ProvisionedThroughputExceededException": true,
	"RequestLimitExceeded":                   true,
	"RequestThrottled":                       true,
	"SlowDown":                               true,
	"TooManyRequestsException":               true,
}

var notFoundCodes = map[string]bool{
	"ResourceNotFoundException": true,
	"NoSuchKey":                 true,
	"NoSuchBucket":              true,
	"NotFound":                  true,
	"NotFoundException":         true,
	"404":                       true,
}

var validationCodes = map[string]bool{
	"ValidationException":             true,
	"ValidationError":                 true,
	"InvalidParameter":                true,
	"InvalidParameterException":       true,
	"InvalidParameterValue":           true,
	"InvalidRequestException":         true,
	"MalformedPolicyDocument":         true,
	"InvalidRequestContentException":  true,
	"ConditionalCheckFailedException": true,
}

// Translate mapeia um erro do SDK para a taxonomia do toolkit.
//
// Erros que não são smithy.APIError (contexto cancelado, falha de rede antes
// do dispatch) passam sem tradução; o chamador ainda consegue usar errors.Is
// com context.Canceled etc.
func Translate(service, resource string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.ErrorCode()
	switch {
	case notFoundCodes[code]:
		return &NotFoundError{Service: service, Resource: resource, cause: err}
	case validationCodes[code]:
		return &ValidationError{Service: service, Resource: resource, Message: apiErr.ErrorMessage(), cause: err}
	case throttleCodes[code]:
		return &ThrottledError{Service: service, Resource: resource, cause: err}
	default:
		return &UnknownServiceError{Service: service, Resource: resource, cause: err}
	}
}
