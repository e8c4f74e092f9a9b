// Package cli implementa imsctl: tareas de operación (migraciones, alta del primer admin)
// y consultas offline de la tabla de permisos y la política de contraseñas.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd arma el árbol de comandos de imsctl.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "imsctl",
		Short:         "Herramientas de operación de Serrano Tex IMS",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newRolesCmd(),
		newCheckPasswordCmd(),
		newMigrateCmd(),
		newSeedAdminCmd(),
	)
	return root
}

// Execute ejecuta imsctl con los argumentos del proceso.
func Execute() error {
	return NewRootCmd().Execute()
}
