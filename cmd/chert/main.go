package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chert-network/chert-go/pkg/chert"
	"github.com/chert-network/chert-go/pkg/log"
)

func main() {
	logger := newLogger()

	// Load .env if present; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found")
	}

	root := &cobra.Command{
		Use:           "chert",
		Short:         "Command-line client for the Chert blockchain network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		statusCmd(logger),
		blockCmd(logger),
		accountCmd(logger),
		balanceCmd(logger),
		sendCmd(logger),
		txCmd(logger),
		validatorsCmd(logger),
		proposalsCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger() log.Logger {
	return log.NewZapLogger(log.Config{
		Format: os.Getenv("LOG_FORMAT"),
		Level:  log.Level(os.Getenv("LOG_LEVEL")),
		Output: os.Getenv("LOG_OUTPUT"),
	}).WithName("cli")
}

func newClient(logger log.Logger) (*chert.Client, error) {
	cfg, err := chert.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return chert.NewClient(cfg, chert.WithLogger(logger))
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func statusCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current network status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			status, err := client.NetworkStatus(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(status)
		},
	}
}

func blockCmd(logger log.Logger) *cobra.Command {
	var height uint64

	cmd := &cobra.Command{
		Use:   "block",
		Short: "Show a block (latest by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			var block *chert.Block
			if height > 0 {
				block, err = client.BlockByHeight(cmd.Context(), height)
			} else {
				block, err = client.LatestBlock(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printJSON(block)
		},
	}
	cmd.Flags().Uint64Var(&height, "height", 0, "block height (0 for latest)")
	return cmd
}

func accountCmd(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create a new account with a fresh key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			account, err := client.Wallet.CreateAccount()
			if err != nil {
				return err
			}
			return printJSON(account)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <private-key>",
		Short: "Import an account from a hex-encoded private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			account, err := client.Wallet.ImportAccount(args[0])
			if err != nil {
				return err
			}
			return printJSON(account)
		},
	})

	return cmd
}

func balanceCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balance of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			balance, err := client.Wallet.Balance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(balance)
		},
	}
}

func sendCmd(logger log.Logger) *cobra.Command {
	var (
		privateKey string
		fee        string
		memo       string
		nonce      uint64
	)

	cmd := &cobra.Command{
		Use:   "send <recipient> <amount>",
		Short: "Sign and submit a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			if privateKey == "" {
				privateKey = os.Getenv("CHERT_PRIVATE_KEY")
			}
			account, err := client.Wallet.ImportAccount(privateKey)
			if err != nil {
				return err
			}

			hash, err := client.Wallet.SendTransaction(cmd.Context(), chert.TransactionRequest{
				To:     args[0],
				Amount: args[1],
				Fee:    fee,
				Memo:   memo,
				Nonce:  nonce,
			}, *account)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
	cmd.Flags().StringVar(&privateKey, "private-key", "", "hex-encoded private key (defaults to CHERT_PRIVATE_KEY)")
	cmd.Flags().StringVar(&fee, "fee", "0.001", "transaction fee")
	cmd.Flags().StringVar(&memo, "memo", "", "optional memo")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "transaction nonce")
	return cmd
}

func txCmd(logger log.Logger) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "tx <hash>",
		Short: "Show a transaction, optionally waiting for confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			if wait > 0 {
				tx, err := client.Wallet.WaitForTransaction(cmd.Context(), args[0], wait, 0)
				if err != nil {
					return err
				}
				if tx == nil {
					return fmt.Errorf("transaction not confirmed within %s", wait)
				}
				return printJSON(tx)
			}

			tx, err := client.TransactionByHash(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(tx)
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "wait this long for confirmation (0 to fetch once)")
	return cmd
}

func validatorsCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validators",
		Short: "List validators",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			validators, err := client.Staking.Validators(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(validators)
		},
	}
}

func proposalsCmd(logger log.Logger) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "List governance proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			proposals, err := client.Governance.Proposals(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(proposals)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of proposals")
	return cmd
}
