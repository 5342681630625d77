package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Environment    string   `json:"environment"`
		SessionSignKey string   `json:"session_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		AdminEmails    []string `json:"admin_emails"`
		SiteURL        string   `json:"site_url"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			PublicDir     string `json:"public_dir"`
			MaxUploadSize int64  `json:"max_upload_size"`
		} `json:"files,omitempty"`

		S3 struct {
			Endpoint  string `json:"endpoint"`
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"s3,omitempty"`

		Redis struct {
			Addr string `json:"addr"`
			DB   int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      int      `json:"rate_limit"`
		RateWindow     Duration `json:"rate_window"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`

	Adapter struct {
		DaDataAPIKey   string   `json:"dadata_api_key"`
		DaDataURL      string   `json:"dadata_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Mail struct {
		Host     string `json:"smtp_host"`
		Port     int    `json:"smtp_port"`
		User     string `json:"smtp_user"`
		Password string `json:"smtp_password"`
		From     string `json:"from"`
		NotifyTo string `json:"notify_to"`
	} `json:"mail,omitempty"`

	Workers struct {
		LimiterSweepInterval Duration `json:"limiter_sweep_interval"`
	} `json:"workers,omitempty"`
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
			Environment:    jsonCfg.App.Environment,
			SessionSignKey: jsonCfg.App.SessionSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			AdminEmails:    jsonCfg.App.AdminEmails,
			SiteURL:        jsonCfg.App.SiteURL,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				PublicDir:     jsonCfg.Storage.Files.PublicDir,
				MaxUploadSize: jsonCfg.Storage.Files.MaxUploadSize,
			},
			S3: S3{
				Endpoint:  jsonCfg.Storage.S3.Endpoint,
				Region:    jsonCfg.Storage.S3.Region,
				Bucket:    jsonCfg.Storage.S3.Bucket,
				AccessKey: jsonCfg.Storage.S3.AccessKey,
				SecretKey: jsonCfg.Storage.S3.SecretKey,
				UseSSL:    jsonCfg.Storage.S3.UseSSL,
				PublicURL: jsonCfg.Storage.S3.PublicURL,
			},
			Redis: Redis{
				Addr: jsonCfg.Storage.Redis.Addr,
				DB:   jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateWindow:     time.Duration(jsonCfg.Server.RateWindow),
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
		Adapter: Adapter{
			DaDataAPIKey:   jsonCfg.Adapter.DaDataAPIKey,
			DaDataURL:      jsonCfg.Adapter.DaDataURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			User:     jsonCfg.Mail.User,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
			NotifyTo: jsonCfg.Mail.NotifyTo,
		},
		Workers: Workers{
			LimiterSweepInterval: time.Duration(jsonCfg.Workers.LimiterSweepInterval),
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
