package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gofurnish/internal/config"
	"github.com/philipparndt/gofurnish/internal/furnish"
	"github.com/philipparndt/gofurnish/pkg/watcher"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Place furniture into the scene shell and export the result",
	Long: `Load the scene shell, strip its ceiling, place every metadata record whose
model can be found and export the furnished scene.

Settings come from gofurnish.toml (or --config); flags override them.
Objects without a model or with a broken model are skipped. A missing
shell, missing metadata or a failed export aborts the run.`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

var composeFlags struct {
	configFile  string
	sceneID     string
	baseDir     string
	shell       string
	metadata    string
	metadataAlt string
	assets      string
	output      string
	mergeParts  bool
	watch       bool
	debounce    time.Duration
}

func init() {
	f := composeCmd.Flags()
	f.StringVarP(&composeFlags.configFile, "config", "c", config.DefaultFile, "Config file")
	f.StringVarP(&composeFlags.sceneID, "scene", "s", "", "Scene identifier")
	f.StringVar(&composeFlags.baseDir, "base-dir", "", "Dataset base directory")
	f.StringVar(&composeFlags.shell, "shell", "", "Shell model path template")
	f.StringVar(&composeFlags.metadata, "metadata", "", "Metadata path template")
	f.StringVar(&composeFlags.metadataAlt, "metadata-alt", "", "Alternate metadata path template")
	f.StringVar(&composeFlags.assets, "assets", "", "Assets directory template")
	f.StringVarP(&composeFlags.output, "output", "o", "", "Output path template (.glb, .gltf or .obj)")
	f.BoolVar(&composeFlags.mergeParts, "merge-parts", false, "Merge multi-part models into one mesh per object")
	f.BoolVarP(&composeFlags.watch, "watch", "w", false, "Recompose when the shell, metadata or config changes")
	f.DurationVar(&composeFlags.debounce, "debounce", 300*time.Millisecond, "Delay before recomposing in watch mode")
	rootCmd.AddCommand(composeCmd)
}

// loadConfig reads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(composeFlags.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, err
	}

	overrides := []struct {
		flag  string
		value string
		field *string
	}{
		{"scene", composeFlags.sceneID, &cfg.SceneID},
		{"base-dir", composeFlags.baseDir, &cfg.BaseDir},
		{"shell", composeFlags.shell, &cfg.Shell},
		{"metadata", composeFlags.metadata, &cfg.Metadata},
		{"metadata-alt", composeFlags.metadataAlt, &cfg.MetadataAlt},
		{"assets", composeFlags.assets, &cfg.AssetsDir},
		{"output", composeFlags.output, &cfg.Output},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.field = o.value
		}
	}
	if cmd.Flags().Changed("merge-parts") {
		cfg.MergeParts = composeFlags.mergeParts
	}
	return cfg, cfg.Validate()
}

func runCompose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := composeOnce(cfg); err != nil && !composeFlags.watch {
		return err
	}
	if !composeFlags.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndCompose(ctx, cmd, cfg)
}

func composeOnce(cfg config.Config) error {
	report, err := furnish.Run(cfg, slog.Default())
	if report != nil {
		fmt.Printf("Done! Placed %d/%d objects.\n", report.Placed(), report.Total())
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", cfg.OutputPath())
	return nil
}

// watchedFiles are the inputs whose change triggers a new run
func watchedFiles(cfg config.Config) []string {
	primary, alternate := cfg.MetadataPaths()
	files := []string{composeFlags.configFile, cfg.ShellPath(), primary}
	if alternate != "" {
		files = append(files, alternate)
	}
	return files
}

func watchAndCompose(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	fw, err := watcher.NewFileWatcher(composeFlags.debounce, slog.Default())
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, file := range watchedFiles(cfg) {
		if err := fw.Watch(file); err != nil {
			slog.Warn("not watching input", "path", file, "err", err)
		}
	}
	go fw.Run(ctx)

	fmt.Println("Watching for changes, press Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-fw.Changes():
			slog.Info("recomposing", "changed", changed)
			next, err := loadConfig(cmd)
			if err != nil {
				slog.Error("keeping previous config", "err", err)
				next = cfg
			}
			cfg = next
			if err := composeOnce(cfg); err != nil {
				slog.Error("compose failed", "err", err)
			}
		}
	}
}
