package boconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/logs"
)

//go:embed schema.cue
var Schema string

var configFiles = cmds.Collect[string]("-config")

var fileNames = []string{
	"bo.cue",
	".bo.cue",
}

// ConfigsLoader reads files given by -config, then bo.cue and .bo.cue from the working
// directory, the user config directory and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFiles...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}

func mustFirst[T any](loader configs.Loader, path string) T {
	v, err := configs.First[T](loader, path)
	if err != nil {
		panic(err)
	}
	return v
}
