package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types (durations as "30s"-style strings). It exists only as a decoding
// target for the optional JSON config file.
type StructuredJSONConfig struct {
	API struct {
		URL         string `json:"url"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		StaticToken string `json:"static_token"`
	} `json:"api,omitempty"`

	Client struct {
		RequestTimeout     Duration `json:"request_timeout"`
		RefreshMargin      Duration `json:"refresh_margin"`
		DisableAutoRefresh bool     `json:"disable_auto_refresh"`
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
		API: API{
			URL:         jsonCfg.API.URL,
			Username:    jsonCfg.API.Username,
			Password:    jsonCfg.API.Password,
			StaticToken: jsonCfg.API.StaticToken,
		},
		Client: Client{
			RequestTimeout:     time.Duration(jsonCfg.Client.RequestTimeout),
			RefreshMargin:      time.Duration(jsonCfg.Client.RefreshMargin),
			DisableAutoRefresh: jsonCfg.Client.DisableAutoRefresh,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
