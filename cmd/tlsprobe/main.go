// tlsprobe dials a TLS server, sends a ClientHello built with the
// tlswire codec, and reports the first record the server answers
// with. It never proceeds past the first flight; it is a wire-format
// probe, not a TLS client.
package main

import (
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ulfheim/tlswire"
)

type clientHelloHandshake = tlswire.Handshake[tlswire.ClientHello, *tlswire.ClientHello]

var (
	flagServer  string
	flagSNI     string
	flagConfig  string
	flagTimeout time.Duration
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tlsprobe",
	Short: "Send a TLS ClientHello and report the server's first record",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(flagVerbose)

		cfg := defaultConfig()
		if flagConfig != "" {
			var err error
			if cfg, err = loadConfig(flagConfig); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("server") {
			cfg.Server = flagServer
		}
		if cmd.Flags().Changed("sni") {
			cfg.SNI = flagSNI
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = flagTimeout
		}
		if cfg.Server == "" {
			return errors.New("no server given; use --server or a config file")
		}

		return probe(logger, cfg)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagServer, "server", "s", "", "server to probe, host:port")
	rootCmd.Flags().StringVar(&flagSNI, "sni", "", "host name for the server_name extension")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "dial and read timeout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "tlsprobe").Logger()
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}

func probe(logger zerolog.Logger, cfg probeConfig) error {
	hello := tlswire.NewClientHelloHandshake(cfg.Suites...)
	if cfg.SNI != "" {
		ext, err := tlswire.NewServerNameExtension(cfg.SNI)
		if err != nil {
			return err
		}
		hello.Body.AddExtension(ext)
		hello.SetLength()
	}
	rec := tlswire.NewRecord[clientHelloHandshake](tlswire.ContentHandshake, tlswire.TLS10, hello)

	logger.Debug().
		Str("server", cfg.Server).
		Int("suites", len(cfg.Suites)).
		Int("record_len", rec.WireLen()).
		Msg("dialing")

	conn, err := net.DialTimeout("tcp", cfg.Server, cfg.Timeout)
	if err != nil {
		return errors.Wrap(err, "dial")
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(cfg.Timeout)); err != nil {
		return errors.Wrap(err, "set deadline")
	}

	stream := tlswire.NewRecordStream(conn)
	if err := stream.WriteRecord(&rec); err != nil {
		return err
	}
	logger.Info().Str("server", cfg.Server).Msg("client_hello sent")

	hdr, body, err := stream.ReadRecord()
	if err != nil {
		return err
	}

	event := logger.Info().
		Stringer("content_type", hdr.ContentType).
		Uint16("record_len", uint16(hdr.Length))

	switch hdr.ContentType {
	case tlswire.ContentAlert:
		var alert tlswire.Alert
		if err := alert.UnmarshalFrom(body); err != nil {
			return err
		}
		event.
			Stringer("level", alert.Level).
			Stringer("description", alert.Description).
			Msg("server answered with an alert")
	case tlswire.ContentHandshake:
		var msgType tlswire.HandshakeType
		if err := msgType.UnmarshalFrom(body); err != nil {
			return err
		}
		event.Stringer("msg_type", msgType).Msg("handshake started")
	default:
		event.Msg("unexpected first record")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
