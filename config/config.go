package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Routing configuration for the primary and fallback routing services
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Navigation configuration for acquisition and live tracking
	Navigation *NavigationConfig `json:"navigation" yaml:"navigation"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for destination QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RoutingConfig defines the routing services used to compute routes
type RoutingConfig struct {
	Primary  PrimaryRoutingConfig  `json:"primary" yaml:"primary"`
	Fallback FallbackRoutingConfig `json:"fallback" yaml:"fallback"`
}

// PrimaryRoutingConfig defines the OpenRouteService compatible endpoint
type PrimaryRoutingConfig struct {
	// Full POST endpoint, the profile is sent in the body
	URL     string        `json:"url" yaml:"url"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Client side token bucket, zero disables limiting
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines circuit breaker settings for the primary service
type BreakerConfig struct {
	MaxRequests         uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval            time.Duration `json:"interval" yaml:"interval"`
	OpenTimeout         time.Duration `json:"openTimeout" yaml:"openTimeout"`
	ConsecutiveFailures uint32        `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// FallbackRoutingConfig defines the OSRM compatible endpoint
type FallbackRoutingConfig struct {
	// Base URL up to and including the /route/v1 path
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// NavigationConfig defines the timing of location acquisition and live tracking
type NavigationConfig struct {
	Acquisition   AcquisitionConfig `json:"acquisition" yaml:"acquisition"`
	Tracking      TrackingConfig    `json:"tracking" yaml:"tracking"`
	DialogTimeout time.Duration     `json:"dialogTimeout" yaml:"dialogTimeout"`
}

// AcquisitionConfig defines the start point acquisition timing
type AcquisitionConfig struct {
	SampleTimeout     time.Duration `json:"sampleTimeout" yaml:"sampleTimeout"`
	MaxSampleAge      time.Duration `json:"maxSampleAge" yaml:"maxSampleAge"`
	Deadline          time.Duration `json:"deadline" yaml:"deadline"`
	SuppressionWindow time.Duration `json:"suppressionWindow" yaml:"suppressionWindow"`
}

// TrackingConfig defines the live tracking timing
type TrackingConfig struct {
	SampleTimeout time.Duration `json:"sampleTimeout" yaml:"sampleTimeout"`
	MaxSampleAge  time.Duration `json:"maxSampleAge" yaml:"maxSampleAge"`
	CheckInterval time.Duration `json:"checkInterval" yaml:"checkInterval"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Title of toast notifications
	Title string `json:"title" yaml:"title"`

	// ToastTTL is how long an undelivered toast stays relevant
	ToastTTL time.Duration `json:"toastTtl" yaml:"toastTtl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Subscription name written into local push envelopes
	LocalSubscription string `json:"localSubscription" yaml:"localSubscription"`

	// QueueSize bounds events waiting to be published; overflow is dropped
	QueueSize int `json:"queueSize" yaml:"queueSize"`

	// PublishTimeout bounds a single publish call
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// Load reads <name>.yaml from the first directory that has it and overlays
// environment variables on the keys the file declares.
func Load(name string, dirs ...string) (*Config, error) {
	path, err := locate(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := k.Load(envOverlay(k.Raw()), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// New loads config.yaml from the working directory or one of its config dirs.
func New() (*Config, error) {
	return Load("config", defaultPath, "config", "../config", "../../config")
}

func locate(name string, dirs []string) (string, error) {
	if len(dirs) == 0 {
		dirs = []string{defaultPath}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name+".yaml")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found in %s", name, strings.Join(dirs, ", "))
}

// envOverlay maps ROUTING_PRIMARY_APIKEY onto routing.primary.apiKey.
func envOverlay(known map[string]any) koanf.Provider {
	return env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, known)
			if !overridable(key, known) {
				return "", nil
			}

			return key, v
		},
	})
}

// overridable rejects variables outside the file's sections and ones that
// would replace a whole section with a scalar.
func overridable(key string, known map[string]any) bool {
	segments := strings.Split(key, ".")
	if _, ok := known[segments[0]]; !ok {
		return false
	}

	var node any = known
	for _, segment := range segments {
		section, ok := node.(map[string]any)
		if !ok {
			return true
		}
		if node, ok = section[segment]; !ok {
			return true
		}
	}
	_, isSection := node.(map[string]any)

	return !isSection
}

func decoderConfig(out *Config) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

// applyDefaults fills sections missing from the file so constructors never see nil
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Routing == nil {
		c.Routing = &RoutingConfig{}
	}
	if c.Navigation == nil {
		c.Navigation = &NavigationConfig{}
	}

	nav := c.Navigation
	setDefaultDuration(&nav.Acquisition.SampleTimeout, 10*time.Second)
	setDefaultDuration(&nav.Acquisition.MaxSampleAge, 30*time.Second)
	setDefaultDuration(&nav.Acquisition.Deadline, 12*time.Second)
	setDefaultDuration(&nav.Acquisition.SuppressionWindow, 5*time.Second)
	setDefaultDuration(&nav.Tracking.SampleTimeout, 5*time.Second)
	setDefaultDuration(&nav.Tracking.MaxSampleAge, 2*time.Second)
	setDefaultDuration(&nav.Tracking.CheckInterval, 5*time.Second)
	setDefaultDuration(&nav.DialogTimeout, 2*time.Minute)

	setDefaultDuration(&c.Routing.Primary.Timeout, 10*time.Second)
	setDefaultDuration(&c.Routing.Fallback.Timeout, 10*time.Second)
}

func setDefaultDuration(d *time.Duration, fallback time.Duration) {
	if *d <= 0 {
		*d = fallback
	}
}

// canonicalizeEnvKey resolves each underscore separated segment against the
// keys already loaded, so camelCase keys keep their spelling. Segments with no
// match stay lower case.
func canonicalizeEnvKey(raw string, known map[string]any) string {
	parts := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool { return r == '_' })
	path := make([]string, 0, len(parts))

	level := known
	for _, part := range parts {
		key, child := lookupFold(level, part)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func lookupFold(level map[string]any, part string) (string, map[string]any) {
	want := foldKey(part)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return part, nil
}

// foldKey drops separators and case: "api-key", "apiKey" and "APIKEY" are equal.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
