// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads server flags from args (without the program name).
//
// Flags:
//
//	-a                 listen address host:port
//	-d                 Postgres DSN
//	-c, -config        JSON config file
//	-password-hash-key HMAC key for owner auth hashes
//	-token-sign-key    session token signing key
//	-token-issuer      session token issuer
//	-token-duration    session token lifetime
//	-request-timeout   inbound request timeout
//	-system-key        key for the inactivity sweep endpoint
//	-access-window     approved access window
//	-redis             Redis address host:port
//	-amqp              AMQP URL for email intents
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vaultkeeper", flag.ContinueOnError)

	var (
		serverAddress   NetAddress
		databaseDSN     string
		jsonConfigPath  string
		passwordHashKey string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		requestTimeout  time.Duration
		systemKey       string
		accessWindow    time.Duration
		redisAddress    string
		amqpURL         string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&systemKey, "system-key", "", "System key for scheduler endpoints")
	fs.DurationVar(&accessWindow, "access-window", 0, "Approved access window (e.g., 72h)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&amqpURL, "amqp", "", "AMQP URL for email notifications")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			SystemKey:       systemKey,
			AccessWindow:    accessWindow,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notify:       Notify{AMQPURL: amqpURL},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
