// Package config loads the server's TOML configuration file, falling back
// to documented defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file's name within the server folder.
const FileName = "keisteen.toml"

// Server holds the [server] table.
type Server struct {
	BindAddress          string `toml:"bind_address"`
	BindPort             uint16 `toml:"bind_port"`
	MaxPlayers           int    `toml:"max_players"`
	MOTD                 string `toml:"motd"`
	EnforcesSecureChat   bool   `toml:"enforces_secure_chat"`
	CompressionThreshold int    `toml:"compression_threshold"`
	OnlineMode           bool   `toml:"online_mode"`
}

// Config is the top-level parsed configuration document.
type Config struct {
	Server Server `toml:"server"`
}

// Default returns the documented default configuration, used wholesale when
// no config file is present and as the base any partial file is merged onto.
func Default() Config {
	return Config{Server: Server{
		BindAddress:          "0.0.0.0",
		BindPort:             25565,
		MaxPlayers:           20,
		MOTD:                 "A Minecraft Server",
		EnforcesSecureChat:   false,
		CompressionThreshold: 256,
		OnlineMode:           false,
	}}
}

// Load reads <dir>/keisteen.toml. A missing file yields Default(); a file
// that exists but fails to parse is a fatal error.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
