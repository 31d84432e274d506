package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SibilSoren/react-vite-boilerplate/internal/pkgmanager"
	"github.com/SibilSoren/react-vite-boilerplate/internal/templates"
)

// createFlags holds the flags of the project creation command.
type createFlags struct {
	Yes            bool
	PackageManager string
	SkipInstall    bool
	SkipGit        bool
	DryRun         bool
	Template       string
	Dir            string
}

// AddTo registers the creation flags on cmd.
func (f *createFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Overwrite an existing directory without asking")
	cmd.Flags().StringVar(&f.PackageManager, "pm", "",
		fmt.Sprintf("Package manager to use (%s); detected when omitted (env: RVB_PACKAGE_MANAGER)",
			strings.Join(pkgmanager.Names(), ", ")))
	cmd.Flags().BoolVar(&f.SkipInstall, "skip-install", false,
		"Skip dependency installation (env: RVB_SKIP_INSTALL)")
	cmd.Flags().BoolVar(&f.SkipGit, "skip-git", false,
		"Skip git repository initialization (env: RVB_SKIP_GIT)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show what would be created without writing anything")
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		fmt.Sprintf("Template to use (%s); default %q (env: RVB_TEMPLATE)",
			strings.Join(templates.Names(), ", "), templates.DefaultName))
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Directory to create the project in (defaults to the project name)")

	_ = cmd.RegisterFlagCompletionFunc("pm", fixedCompletions(pkgmanager.Names()))
	_ = cmd.RegisterFlagCompletionFunc("template", fixedCompletions(templates.Names()))
}

func fixedCompletions(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
