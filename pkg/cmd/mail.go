package cmd

import (
	contextPkg "context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greengivers/nursery/pkg/configs"
	"github.com/greengivers/nursery/pkg/internal/mailer"
)

var (
	mailCmd = &cobra.Command{
		Use:   "mail",
		Short: "mail relay commands",
	}

	mailVerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "dial the configured relay and report connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			cfg := configs.GetConfig()

			relay, err := mailer.NewSMTP(&cfg.Mail)
			if err != nil {
				return err
			}

			ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(),
				time.Duration(cfg.Mail.Timeout)*time.Second)
			defer cancel()

			if err := relay.Verify(ctx); err != nil {
				return fmt.Errorf("mail relay verification failed: %w", err)
			}

			host, port := cfg.Mail.Endpoint()
			fmt.Fprintf(cmd.OutOrStdout(), "mail relay %s:%d verified\n", host, port)

			return nil
		},
	}
)

func registerMailCommands() {
	mailCmd.AddCommand(mailVerifyCmd)
	rootCmd.AddCommand(mailCmd)
}
