package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atalink/saio-build/pkg/client/docker"
	"github.com/atalink/saio-build/pkg/config"
	"github.com/atalink/saio-build/pkg/registry"
	"github.com/atalink/saio-build/pkg/utils/notify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Builder abstracts the container build invocation so tests can substitute
// the docker CLI client.
type Builder interface {
	Build(ctx context.Context, opts docker.BuildOptions) error
}

// NewRootCmd creates the root command with version info, backed by the docker CLI.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithBuilder(version, commit, date, docker.NewClient())
}

// NewRootCmdWithBuilder creates the root command with a custom build backend.
func NewRootCmdWithBuilder(version, commit, date string, builder Builder) *cobra.Command {
	vpr := config.NewViper()

	cmd := &cobra.Command{
		Use:   "saio-build",
		Short: "Build and tag the OpenStack Swift SAIO container image",
		Long: "saio-build resolves the target registry and Swift version from flags or\n" +
			"the environment, constructs the image reference\n" +
			"<registry>/" + registry.ImageRepository + ":<version>, and runs 'docker build'\n" +
			"against the " + config.DefaultBuildDefinition + " build definition in the working directory.\n" +
			"The process exits with the build tool's own exit code.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, vpr, builder)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version if available
	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	bindFlags(cmd, vpr)

	return cmd
}

// bindFlags registers the build flags and binds them to the viper keys so the
// resolution order is flag > environment variable > default.
func bindFlags(cmd *cobra.Command, vpr *viper.Viper) {
	flags := cmd.Flags()

	bindFlag(flags, vpr, config.RegistryKey,
		"registry host and namespace for the image tag (env "+config.RegistryHostEnvVar+")")
	bindFlag(flags, vpr, config.SwiftVersionKey,
		"Swift version used as the image tag (env "+config.SwiftVersionEnvVar+")")
	bindFlag(flags, vpr, config.FileKey,
		"build-definition file (default "+config.DefaultBuildDefinition+")")
	bindFlag(flags, vpr, config.ContextKey,
		"build context directory (default "+config.DefaultContextDir+")")
}

// bindFlag registers a single string flag and binds it to its viper key.
// The flag default stays empty so viper falls through to env and defaults.
func bindFlag(flags *pflag.FlagSet, vpr *viper.Viper, key, usage string) {
	flags.String(key, "", usage)

	// BindPFlag errors only on a nil flag, and the flag is registered above.
	_ = vpr.BindPFlag(key, flags.Lookup(key))
}

// runBuild resolves the configuration, constructs the image reference, and
// delegates to the build backend. The build tool's output streams through to
// the command's own writers untouched.
func runBuild(cmd *cobra.Command, vpr *viper.Viper, builder Builder) error {
	cfg := config.Load(vpr)

	imageTag := registry.ImageTag(cfg.RegistryHost, cfg.SwiftVersion)

	ref, err := registry.ParseImageTag(cfg.RegistryHost, cfg.SwiftVersion)
	if err != nil {
		return err
	}

	slog.Debug("resolved image reference",
		"registry", ref.RegistryStr(),
		"repository", ref.RepositoryStr(),
		"tag", ref.TagStr(),
	)

	notify.Activityf(cmd.OutOrStdout(), "building %s from %s", imageTag, cfg.BuildDefinition)

	err = builder.Build(cmd.Context(), docker.BuildOptions{
		Tag:             imageTag,
		BuildDefinition: cfg.BuildDefinition,
		ContextDir:      cfg.ContextDir,
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "built and tagged %s", imageTag)

	return nil
}
