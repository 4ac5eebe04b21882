// Package config provides loading and environment overlay for the tqueue
// runtime configuration. It exposes a Default() baseline, a JSON file loader,
// and a TQUEUE_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/tqueue.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	rt, _ := runtime.Open(runtime.Options{DataDir: cfg.DataDir, Sync: cfg.SyncMode(), Config: cfg})
//	defer rt.Close()
package config
