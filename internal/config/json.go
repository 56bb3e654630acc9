package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for JSON decoding, using the
// Duration wrapper so durations can be written as "1h" style strings.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenAlgorithm string   `json:"token_algorithm"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenTTL       Duration `json:"token_ttl"`
		AdminUsername  string   `json:"admin_username"`
		AdminPassword  string   `json:"admin_password"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Client struct {
		BaseURL  string   `json:"base_url"`
		Username string   `json:"username"`
		Password string   `json:"password"`
		Token    string   `json:"token"`
		Timeout  Duration `json:"timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			TokenSignKey:   jsonCfg.Auth.TokenSignKey,
			TokenAlgorithm: jsonCfg.Auth.TokenAlgorithm,
			TokenIssuer:    jsonCfg.Auth.TokenIssuer,
			TokenTTL:       time.Duration(jsonCfg.Auth.TokenTTL),
			AdminUsername:  jsonCfg.Auth.AdminUsername,
			AdminPassword:  jsonCfg.Auth.AdminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Client: Client{
			BaseURL:  jsonCfg.Client.BaseURL,
			Username: jsonCfg.Client.Username,
			Password: jsonCfg.Client.Password,
			Token:    jsonCfg.Client.Token,
			Timeout:  time.Duration(jsonCfg.Client.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
