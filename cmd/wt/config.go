package main

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/log"
	"github.com/easydaniel/wt-tools/internal/output"
)

func runConfig(cmd *cobra.Command, showGlobal, showProject bool) error {
	ctx := cmd.Context()
	p := output.FromContext(ctx)

	if showGlobal {
		path, err := config.GlobalPath()
		if err != nil {
			return err
		}
		return printConfigFile(cmd, path)
	}

	if showProject {
		rc, err := loadRepoContext(ctx)
		if err != nil {
			return err
		}
		return printConfigFile(cmd, config.ProjectPath(rc.repoRoot))
	}

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	encoded, err := encodeConfig(rc.cfg)
	if err != nil {
		return err
	}
	p.Print(encoded)
	return nil
}

// printConfigFile prints one layer's file verbatim.
func printConfigFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.FromContext(cmd.Context()).Printf("%s does not exist\n", path)
			return nil
		}
		return err
	}
	output.FromContext(cmd.Context()).Print(string(data))
	return nil
}

// encodeConfig renders the effective config as TOML.
func encodeConfig(cfg config.Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}
