package main

import (
	"fmt"

	"github.com/alnah/go-md2wechat/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML: defaults, the
// config file and MD2WECHAT_* variables applied. The output is a valid
// config file.
func runConfig(args []string, env *Environment) error {
	fs := newFlagSet("config")
	var common commonFlags
	addCommonFlags(fs, &common)
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg, _, err := loadSettings(common.config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
