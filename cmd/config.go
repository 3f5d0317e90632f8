package cmd

// Config carries everything the composition root needs to assemble the
// application. Values come from the environment, loaded in main.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// BusDriver selects the event bus: "memory" or "kafka".
	BusDriver          string
	KafkaHost          string
	KafkaConsumerGroup string

	RedisAddr     string
	RedisPassword string

	CatalogServiceURL string
	PaymentGatewayURL string
	UserServiceURL    string

	// TickSeconds is the motion simulation tick length.
	TickSeconds int
}
