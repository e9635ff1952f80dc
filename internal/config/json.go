// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey         string   `json:"password_hash_key"`
		TokenSignKey            string   `json:"token_sign_key"`
		TokenIssuer             string   `json:"token_issuer"`
		TokenDuration           Duration `json:"token_duration"`
		SystemKey               string   `json:"system_key"`
		AccessWindow            Duration `json:"access_window"`
		DefaultWaitingPeriod    string   `json:"default_waiting_period"`
		DefaultInactivityPeriod string   `json:"default_inactivity_period"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Notify struct {
		RedisChannelPrefix string `json:"redis_channel_prefix"`
		AMQPURL            string `json:"amqp_url"`
		AMQPQueue          string `json:"amqp_queue"`
		QueueSize          int    `json:"queue_size"`
	} `json:"notify"`

	Workers struct {
		InactivitySchedule  string `json:"inactivity_schedule"`
		AutoApproveSchedule string `json:"auto_approve_schedule"`
	} `json:"workers"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey:         j.App.PasswordHashKey,
			TokenSignKey:            j.App.TokenSignKey,
			TokenIssuer:             j.App.TokenIssuer,
			TokenDuration:           time.Duration(j.App.TokenDuration),
			SystemKey:               j.App.SystemKey,
			AccessWindow:            time.Duration(j.App.AccessWindow),
			DefaultWaitingPeriod:    j.App.DefaultWaitingPeriod,
			DefaultInactivityPeriod: j.App.DefaultInactivityPeriod,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Notify: Notify{
			RedisChannelPrefix: j.Notify.RedisChannelPrefix,
			AMQPURL:            j.Notify.AMQPURL,
			AMQPQueue:          j.Notify.AMQPQueue,
			QueueSize:          j.Notify.QueueSize,
		},
		Workers: Workers{
			InactivitySchedule:  j.Workers.InactivitySchedule,
			AutoApproveSchedule: j.Workers.AutoApproveSchedule,
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
	}, nil
}

// Duration accepts "1h"-style strings or nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
