package config

import "time"

// defaultConfig returns the built-in configuration applied when no other
// source provides a value. The admin/admin credential and the "changeme"
// sign key match the development fixtures; production deployments are
// expected to override all three.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:   "changeme",
			TokenAlgorithm: "HS256",
			TokenIssuer:    "go-user-registry",
			TokenTTL:       time.Hour,
			AdminUsername:  "admin",
			AdminPassword:  "admin",
		},
		Storage: Storage{
			DB: DB{DSN: "users.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Client: Client{
			BaseURL: "http://localhost:8080",
			Timeout: 15 * time.Second,
		},
	}
}
