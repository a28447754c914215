package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/spf13/cobra"

	"github.com/go-petr/balance-ledger/internal/sessionservice"
)

// KeyInfo describes a key pair usable as the backend authority.
type KeyInfo struct {
	WIF       string `json:"wif"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

// SessionRequest is the body of POST /sessions.
type SessionRequest struct {
	PublicKey string `json:"public_key"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// NewKeygenCommand creates the keygen command.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "keygen",
		Short:        "Generate a key pair for the backend authority",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := keys.NewPrivateKey()
			if err != nil {
				return err
			}

			return writeJSON(cmd, describeKey(priv))
		},
	}
}

// NewSignCommand creates the sign command.
func NewSignCommand() *cobra.Command {
	var (
		wif       string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a session challenge",
		Long: `Sign a session challenge with a WIF encoded key and print the body
expected by POST /sessions.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if timestamp == 0 {
				timestamp = time.Now().Unix()
			}

			req, err := SignChallenge(wif, timestamp)
			if err != nil {
				return err
			}

			return writeJSON(cmd, req)
		},
	}

	cmd.Flags().StringVar(&wif, "wif", "", "WIF encoded private key")
	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "challenge unix time (defaults to now)")
	_ = cmd.MarkFlagRequired("wif")

	return cmd
}

func describeKey(priv *keys.PrivateKey) KeyInfo {
	pub := priv.PublicKey()

	return KeyInfo{
		WIF:       priv.WIF(),
		PublicKey: hex.EncodeToString(pub.Bytes()),
		Address:   pub.Address(),
	}
}

// SignChallenge builds the session request for the key at the given unix time.
func SignChallenge(wif string, timestamp int64) (SessionRequest, error) {
	priv, err := keys.NewPrivateKeyFromWIF(wif)
	if err != nil {
		return SessionRequest{}, fmt.Errorf("invalid WIF: %w", err)
	}

	pub := priv.PublicKey()
	msg := sessionservice.Challenge(pub.Address(), timestamp)

	return SessionRequest{
		PublicKey: hex.EncodeToString(pub.Bytes()),
		Timestamp: timestamp,
		Signature: hex.EncodeToString(priv.Sign([]byte(msg))),
	}, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
