package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
)

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles [role]",
		Short: "Muestra los permisos de cada rol (o de uno solo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := access.Roles()
			if len(args) == 1 {
				r, ok := access.ParseRole(args[0])
				if !ok {
					return fmt.Errorf("rol desconocido %q (válidos: %s)", args[0], roleNames())
				}
				roles = []access.Role{r}
			}
			out := cmd.OutOrStdout()
			for _, r := range roles {
				codes := access.PermissionCodes(r)
				fmt.Fprintf(out, "%s (%d)\n", r, len(codes))
				for _, c := range codes {
					fmt.Fprintf(out, "  %s\n", c)
				}
			}
			return nil
		},
	}
}

func roleNames() string {
	roles := access.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
