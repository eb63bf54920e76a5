package cliconfig

import "os"

// ApplyEnvConfig applies environment variable configuration to the Config.
// It respects flags that have been explicitly set (changed map).
// Environment variables use the CORELINK_ prefix.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("node-id", os.Getenv("CORELINK_NODE_ID"), &cfg.NodeID)
	s.setString("service-url", os.Getenv("CORELINK_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("auth-key", os.Getenv("CORELINK_AUTH_KEY"), &cfg.AuthKey)
	s.setString("state-dir", os.Getenv("CORELINK_STATE_DIR"), &cfg.StateDir)

	if err := s.setDuration("timeout", os.Getenv("CORELINK_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("heartbeat", os.Getenv("CORELINK_HEARTBEAT_INTERVAL"), &cfg.HeartbeatInterval); err != nil {
		return err
	}
	if err := s.setDuration("grace", os.Getenv("CORELINK_SHUTDOWN_GRACE"), &cfg.ShutdownGrace); err != nil {
		return err
	}

	s.setBoolFromString("shutdown-at-exit", os.Getenv("CORELINK_SHUTDOWN_AT_EXIT"), &cfg.ShutdownAtExit)

	return nil
}
