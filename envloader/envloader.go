// Package envloader preenche structs de configuração a partir de variáveis
// de ambiente, usando as tags "env" e "envDefault".
//
// É usado pelo pkg/config e pelo dyndb para permitir que TableConfig e
// ToolkitConfig sejam montados direto do ambiente de execução (Lambda, ECS).
package envloader

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Load preenche uma struct (via ponteiro) com valores do ambiente.
// Campos sem tag "env" são ignorados; structs aninhadas são processadas
// recursivamente. envDefault só é aplicado em campos ainda zerados.
func Load(config interface{}) error {
	return load(config, true)
}

// Overlay aplica apenas as variáveis de ambiente presentes, sobrescrevendo o
// valor atual do campo; envDefault é ignorado. É o passo final quando o
// ambiente deve ter precedência sobre outra fonte (ex: YAML), inclusive para
// zerar um bool que a outra fonte definiu.
func Overlay(config interface{}) error {
	return load(config, false)
}

// MustLoad é igual ao Load, mas panic em caso de erro.
func MustLoad(config interface{}) {
	if err := Load(config); err != nil {
		panic(err)
	}
}

func load(config interface{}, applyDefaults bool) error {
	val := reflect.ValueOf(config)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidConfigError{Value: val.Type()}
	}
	return loadStruct(val.Elem(), applyDefaults)
}

func loadStruct(val reflect.Value, applyDefaults bool) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStruct(field, applyDefaults); err != nil {
				return err
			}
			continue
		}

		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem(), applyDefaults); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			if !applyDefaults {
				continue
			}
			// envDefault só preenche campos ainda zerados, para não
			// sobrescrever valores vindos de outra fonte
			if !field.IsZero() {
				continue
			}
			envValue = fieldType.Tag.Get("envDefault")
		}
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     envValue,
				Err:       err,
			}
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(uintValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}
