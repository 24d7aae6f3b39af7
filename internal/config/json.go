package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	Auth struct {
		PasswordHashCost int      `json:"password_hash_cost"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		CookieSecure     bool     `json:"cookie_secure"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Name         string `json:"name"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Files struct {
			UploadDir          string   `json:"upload_dir"`
			MaxUploadFiles     int      `json:"max_upload_files"`
			MaxUploadSize      int64    `json:"max_upload_size"`
			RemoteFetchTimeout Duration `json:"remote_fetch_timeout"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	LogLevel string `json:"log_level"`
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
		App: App{
			PasswordHashCost: jsonCfg.Auth.PasswordHashCost,
			TokenSignKey:     jsonCfg.Auth.TokenSignKey,
			TokenIssuer:      jsonCfg.Auth.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.Auth.TokenDuration),
			CookieSecure:     jsonCfg.Auth.CookieSecure,
			LogLevel:         jsonCfg.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Name:         jsonCfg.Storage.DB.Name,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
			Files: Files{
				UploadDir:          jsonCfg.Storage.Files.UploadDir,
				MaxUploadFiles:     jsonCfg.Storage.Files.MaxUploadFiles,
				MaxUploadSize:      jsonCfg.Storage.Files.MaxUploadSize,
				RemoteFetchTimeout: time.Duration(jsonCfg.Storage.Files.RemoteFetchTimeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
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
