package cmd

// Config carries everything the service reads from the environment.
// RedisAddr and KafkaHost are optional: an empty value disables the stats
// cache and event publishing respectively.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	AuthSecretKey          string
	AdminUserID            string
	DeliveryCharge         int64
	RedisAddr              string
	KafkaHost              string
	KafkaOrderChangedTopic string
}
