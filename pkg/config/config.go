// Package config provides the compiled-in configuration for the monitor.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all monitor configuration options.
type Config struct {
	// Reporting
	Interval      time.Duration
	IntervalToken string

	// Collection settings
	SampleWindow        time.Duration
	ExcludedFilesystems []string
	ProcNetDir          string
	TCPCommand          string
	TCPTimeout          time.Duration

	// Logging
	LogLevel string
}

// Default configuration values.
const (
	DefaultInterval      = 10 * time.Second
	DefaultIntervalToken = "sentry_time"
	DefaultSampleWindow  = 500 * time.Millisecond
	DefaultProcNetDir    = "/proc/net"
	DefaultTCPCommand    = "netstat -an | grep tcp | awk '{print $NF}' | sort | uniq -c"
	DefaultTCPTimeout    = 5 * time.Second
	DefaultLogLevel      = "warn"
)

// DefaultExcludedFilesystems lists the virtual mounts skipped by disk usage.
func DefaultExcludedFilesystems() []string {
	return []string{"overlay", "tmpfs", "shm"}
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Interval:            DefaultInterval,
		IntervalToken:       DefaultIntervalToken,
		SampleWindow:        DefaultSampleWindow,
		ExcludedFilesystems: DefaultExcludedFilesystems(),
		ProcNetDir:          DefaultProcNetDir,
		TCPCommand:          DefaultTCPCommand,
		TCPTimeout:          DefaultTCPTimeout,
		LogLevel:            DefaultLogLevel,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Interval < time.Second || c.Interval%time.Second != 0 {
		return fmt.Errorf("interval must be a whole number of seconds, got %v", c.Interval)
	}

	if c.SampleWindow <= 0 {
		return fmt.Errorf("sample window must be positive, got %v", c.SampleWindow)
	}

	if c.SampleWindow >= c.Interval {
		return fmt.Errorf("sample window %v must be shorter than interval %v", c.SampleWindow, c.Interval)
	}

	if c.TCPTimeout < 0 {
		return fmt.Errorf("tcp timeout cannot be negative, got %v", c.TCPTimeout)
	}

	if strings.TrimSpace(c.IntervalToken) == "" {
		return fmt.Errorf("interval token cannot be empty")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: %s)", c.LogLevel, strings.Join(ValidLogLevels(), ", "))
	}

	return nil
}

// ValidLogLevels returns the list of supported log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels() {
		if l == level {
			return true
		}
	}
	return false
}

// ApplyDefaults fills in any missing values with defaults.
func (c *Config) ApplyDefaults() {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.IntervalToken == "" {
		c.IntervalToken = DefaultIntervalToken
	}
	if c.SampleWindow == 0 {
		c.SampleWindow = DefaultSampleWindow
	}
	if c.ExcludedFilesystems == nil {
		c.ExcludedFilesystems = DefaultExcludedFilesystems()
	}
	if c.ProcNetDir == "" {
		c.ProcNetDir = DefaultProcNetDir
	}
	if c.TCPCommand == "" {
		c.TCPCommand = DefaultTCPCommand
	}
	if c.TCPTimeout == 0 {
		c.TCPTimeout = DefaultTCPTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// IntervalSeconds returns the interval as whole seconds.
func (c *Config) IntervalSeconds() int64 {
	return int64(c.Interval / time.Second)
}

// IsExcludedFilesystem reports whether a device or filesystem type is virtual.
func (c *Config) IsExcludedFilesystem(device, fstype string) bool {
	for _, name := range c.ExcludedFilesystems {
		if name == device || name == fstype {
			return true
		}
	}
	return false
}
