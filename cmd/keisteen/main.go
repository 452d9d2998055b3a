// Command keisteen runs a Minecraft: Java Edition server-side protocol
// endpoint: handshake, status, login, configuration, and the handoff into
// play.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/BaukeWestendorp/keisteen/config"
	"github.com/BaukeWestendorp/keisteen/crypto"
	"github.com/BaukeWestendorp/keisteen/registries"
	"github.com/BaukeWestendorp/keisteen/server"
	"github.com/BaukeWestendorp/keisteen/serverctx"
)

// protocolNumber and serverVersion identify this server to connecting
// clients during Handshake and Status.
const (
	protocolNumber = 772
	serverVersion  = "1.21.8"
	viewDistance   = 10
)

func main() {
	app := cli.NewApp()
	app.Name = "keisteen"
	app.Usage = "a Minecraft: Java Edition server-side protocol endpoint"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "path",
			Value: ".",
			Usage: "server directory containing keisteen.toml and assets/registries",
		},
		cli.IntFlag{
			Name:  "port",
			Usage: "overrides the bind_port from keisteen.toml when non-zero",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := c.String("path")

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port := c.Int("port"); port != 0 {
		cfg.Server.BindPort = uint16(port)
	}

	catalog, err := registries.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load registries: %w", err)
	}

	cryptoCtx, err := crypto.NewServerContext()
	if err != nil {
		return fmt.Errorf("failed to initialize crypto context: %w", err)
	}

	ctx := serverctx.New(cryptoCtx, catalog, serverctx.Config{
		MOTD:                 cfg.Server.MOTD,
		MaxPlayers:           cfg.Server.MaxPlayers,
		ServerVersion:        serverVersion,
		ProtocolNumber:       protocolNumber,
		ViewDistance:         viewDistance,
		OnlineMode:           cfg.Server.OnlineMode,
		EnforcesSecureChat:   cfg.Server.EnforcesSecureChat,
		CompressionThreshold: cfg.Server.CompressionThreshold,
	})

	address := fmt.Sprintf("%s:%d", cfg.Server.BindAddress, cfg.Server.BindPort)
	srv := server.New(ctx, logger)
	if err := srv.ListenAndServe(address); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
