package config

// AppName prefixes diagnostics printed before the logger exists.
const AppName = "sentry-sys-monitor"
