// Package config define a configuração do toolkit: nomes de recursos AWS por
// serviço, logging e métricas. A configuração pode vir de um arquivo YAML,
// de variáveis de ambiente (tags env) ou da combinação dos dois, e valores
// individuais podem ser resolvidos do SSM Parameter Store ou do Secrets
// Manager via referências "ssm://" e "secret://".
package config

// ToolkitConfig é a estrutura raiz da configuração.
type ToolkitConfig struct {
	Region  string      `yaml:"region" env:"AWS_REGION" envDefault:"us-east-1"`
	Tables  TablesConf  `yaml:"tables"`
	S3      S3Conf      `yaml:"s3"`
	SNS     SNSConf     `yaml:"sns"`
	Lambda  LambdaConf  `yaml:"lambda"`
	SQS     SQSConf     `yaml:"sqs"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
}

// TablesConf mapeia as tabelas DynamoDB do domínio. Os defaults seguem os
// nomes históricos das tabelas da aplicação.
type TablesConf struct {
	Suppliers            string `yaml:"suppliers" env:"TABLE_SUPPLIERS" envDefault:"Suppliers"`
	RawMaterials         string `yaml:"raw_materials" env:"TABLE_RAW_MATERIALS" envDefault:"RawMaterials"`
	FinishedProducts     string `yaml:"finished_products" env:"TABLE_FINISHED_PRODUCTS" envDefault:"FinishedProducts"`
	PurchaseOrders       string `yaml:"purchase_orders" env:"TABLE_PURCHASE_ORDERS" envDefault:"PurchaseOrders"`
	Distributors         string `yaml:"distributors" env:"TABLE_DISTRIBUTORS" envDefault:"Distributors"`
	DistributorOrders    string `yaml:"distributor_orders" env:"TABLE_DISTRIBUTOR_ORDERS" envDefault:"DistributorOrders"`
	DistributorInventory string `yaml:"distributor_inventory" env:"TABLE_DISTRIBUTOR_INVENTORY" envDefault:"DistributorInventory"`
	CustomerOrders       string `yaml:"customer_orders" env:"TABLE_CUSTOMER_ORDERS" envDefault:"CustomerOrders"`
}

type S3Conf struct {
	Bucket string `yaml:"bucket" env:"S3_BUCKET"`
}

type SNSConf struct {
	TopicARN string `yaml:"topic_arn" env:"SNS_TOPIC_ARN" validate:"omitempty,startswith=arn:"`
}

type LambdaConf struct {
	FunctionName string `yaml:"function_name" env:"LAMBDA_FUNCTION_NAME"`
}

type SQSConf struct {
	QueueURL string `yaml:"queue_url" env:"SQS_QUEUE_URL" validate:"omitempty,url"`
}

// LoggingConf controla o logger global (zerolog).
type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" validate:"omitempty,oneof=json console"`
}

// MetricsConf controla o provider de métricas.
type MetricsConf struct {
	Enabled    bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	StatsdAddr string `yaml:"statsd_addr" env:"METRICS_STATSD_ADDR" envDefault:"127.0.0.1:8125"`
	Namespace  string `yaml:"namespace" env:"METRICS_NAMESPACE" envDefault:"supplychain"`
}
