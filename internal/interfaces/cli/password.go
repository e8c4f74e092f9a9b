package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
	"github.com/serranotex/serrano-tex-ims/pkg/config"
)

var errWeakPassword = errors.New("la contraseña no cumple la política")

func newCheckPasswordCmd() *cobra.Command {
	var symbols bool
	cmd := &cobra.Command{
		Use:   "check-password <password>",
		Short: "Valida una contraseña contra la política configurada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			policy := passwordPolicy(cfg.Security)
			if cmd.Flags().Changed("symbols") {
				policy.RequireSymbols = symbols
			}
			res := policy.Validate(args[0])
			out := cmd.OutOrStdout()
			if res.IsValid {
				fmt.Fprintln(out, "OK")
				return nil
			}
			for _, e := range res.Errors {
				fmt.Fprintf(out, "- %s\n", e)
			}
			return errWeakPassword
		},
	}
	cmd.Flags().BoolVar(&symbols, "symbols", false, "exigir al menos un símbolo")
	return cmd
}

// passwordPolicy parte de la política por defecto y aplica lo configurado.
func passwordPolicy(sec config.SecurityConfig) validation.PasswordPolicy {
	p := validation.DefaultPasswordPolicy
	if sec.PasswordMinLength > 0 {
		p.MinLength = sec.PasswordMinLength
	}
	p.RequireSymbols = sec.PasswordRequireSymbols
	return p
}
