package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-papi"
	"gopkg.in/yaml.v3"
)

// parseConfig holds parsed parse command configuration
type parseConfig struct {
	text        string
	contextPath string
	configPath  string
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFlagParseFailed, err)
		return ExitCodeUsageError
	}

	text := cfg.text
	if text == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadInputFailed, err)
			return ExitCodeInputError
		}
		text = string(data)
	}

	rctx, err := loadContextFile(cfg.contextPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgContextLoadFailed, err)
		return ExitCodeInputError
	}

	engine, err := newEngine(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeError
	}
	defer engine.Close()

	fmt.Fprintln(stdout, engine.SetPlaceholders(context.Background(), rctx, text))
	return ExitCodeSuccess
}

func parseParseFlags(args []string) (*parseConfig, error) {
	fs := flag.NewFlagSet(CmdNameParse, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &parseConfig{}

	fs.StringVar(&cfg.text, FlagText, "", "")
	fs.StringVar(&cfg.text, FlagTextShort, "", "")
	fs.StringVar(&cfg.contextPath, FlagContext, "", "")
	fs.StringVar(&cfg.contextPath, FlagContextShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds an engine from an optional config file path.
func newEngine(configPath string) (*papi.Engine, error) {
	if configPath == "" {
		return papi.New()
	}
	cfg, err := papi.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return papi.NewFromConfig(cfg)
}

// contextFile is the YAML shape of a resolution context.
type contextFile struct {
	Player *playerFile `yaml:"player"`
	Server *serverFile `yaml:"server"`
}

type playerFile struct {
	Name        string       `yaml:"name"`
	Position    positionFile `yaml:"position"`
	Dimension   string       `yaml:"dimension"`
	Ping        int          `yaml:"ping"`
	Address     string       `yaml:"address"`
	RuntimeID   uint64       `yaml:"runtime_id"`
	ExpLevel    int          `yaml:"exp_level"`
	TotalExp    int          `yaml:"total_exp"`
	ExpProgress float32      `yaml:"exp_progress"`
	GameMode    string       `yaml:"game_mode"`
	XUID        string       `yaml:"xuid"`
	UUID        string       `yaml:"uuid"`
	DeviceOS    string       `yaml:"device_os"`
	Locale      string       `yaml:"locale"`
}

type positionFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type serverFile struct {
	MinecraftVersion string `yaml:"minecraft_version"`
	Online           int    `yaml:"online"`
	MaxOnline        int    `yaml:"max_online"`
}

// loadContextFile reads an optional YAML context file into a resolution
// context. An empty path yields an empty context.
func loadContextFile(path string) (*papi.Context, error) {
	rctx := papi.NewContext()
	if path == "" {
		return rctx, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file contextFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if file.Player != nil {
		dimension, _ := papi.ParseDimension(file.Player.Dimension)
		gameMode, _ := papi.ParseGameMode(file.Player.GameMode)
		rctx.WithPlayer(&papi.Player{
			Name: file.Player.Name,
			Position: papi.Position{
				X: file.Player.Position.X,
				Y: file.Player.Position.Y,
				Z: file.Player.Position.Z,
			},
			Dimension:   dimension,
			Ping:        file.Player.Ping,
			Address:     file.Player.Address,
			RuntimeID:   file.Player.RuntimeID,
			ExpLevel:    file.Player.ExpLevel,
			TotalExp:    file.Player.TotalExp,
			ExpProgress: file.Player.ExpProgress,
			GameMode:    gameMode,
			XUID:        file.Player.XUID,
			UUID:        file.Player.UUID,
			DeviceOS:    file.Player.DeviceOS,
			Locale:      file.Player.Locale,
		})
	}
	if file.Server != nil {
		rctx.WithServer(&papi.Server{
			MinecraftVersion: file.Server.MinecraftVersion,
			OnlinePlayers:    file.Server.Online,
			MaxPlayers:       file.Server.MaxOnline,
		})
	}
	return rctx, nil
}
