package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-public-dir static front-end and local upload root
//	-session-sign-key session token signing key
//	-token-issuer session token issuer name
//	-admin-emails comma separated admin allow-list
//	-site-url public site URL
//	-env runtime environment (e.g. "production")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit API requests allowed per client per window
//	-trusted-proxies comma separated proxy addresses or CIDRs
//	-redis-addr Redis address for the rate limiter
//	-dadata-api-key DaData API key
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var publicDir string
	var sessionSignKey string
	var tokenIssuer string
	var adminEmails string
	var siteURL string
	var environment string
	var requestTimeout time.Duration
	var rateLimit int
	var trustedProxies string
	var redisAddr string
	var dadataAPIKey string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&publicDir, "public-dir", "", "Static files and local uploads directory")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.StringVar(&adminEmails, "admin-emails", "", "Comma separated admin emails")
	fs.StringVar(&siteURL, "site-url", "", "Public site URL")
	fs.StringVar(&environment, "env", "", "Runtime environment")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "API requests per client per window")
	fs.StringVar(&trustedProxies, "trusted-proxies", "", "Comma separated trusted proxy addresses or CIDRs")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	fs.StringVar(&dadataAPIKey, "dadata-api-key", "", "DaData API key")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var emails []string
	if adminEmails != "" {
		emails = strings.Split(adminEmails, ",")
	}
	var proxies []string
	if trustedProxies != "" {
		proxies = strings.Split(trustedProxies, ",")
	}

	return &StructuredConfig{
		App: App{
			Environment:    environment,
			SessionSignKey: sessionSignKey,
			TokenIssuer:    tokenIssuer,
			AdminEmails:    emails,
			SiteURL:        siteURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				PublicDir: publicDir,
			},
			Redis: Redis{
				Addr: redisAddr,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			TrustedProxies: proxies,
		},
		Adapter: Adapter{
			DaDataAPIKey: dadataAPIKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}
	if port > 65535 {
		return errors.New("port number must not exceed 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
