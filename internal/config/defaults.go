package config

import "time"

const defaultPort = 8080

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultKafka = Kafka{
	GroupID: "order-policy-worker",
	Topic:   "orders",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPolicy = Policy{
	DefaultOpen:      true,
	OperationTimeout: 3 * time.Second,
	CacheTTL:         time.Minute,
}

var defaultAgent = Agent{
	APIURL:            "http://localhost:8080",
	TrackInterval:     2 * time.Second,
	MinInterval:       5 * time.Second,
	MinDistanceMeters: 10,
	RequestTimeout:    5 * time.Second,
	Retry: Retry{
		MaxAttempts: 4,
		BaseDelay:   150 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	},
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultPolicy returns the default policy settings.
func DefaultPolicy() Policy { return defaultPolicy }

// DefaultAgent returns the default courier agent settings.
func DefaultAgent() Agent { return defaultAgent }
