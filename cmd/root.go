package cmd

import (
	"context"
	"fmt"
	"mimir_backend/internal/app"
	"mimir_backend/internal/config"
	"mimir_backend/pkg/configwatcher"
	"mimir_backend/pkg/logger"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "mimir",
	Short:        "AI bootcamp generator backend",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "配置文件所在目录")
	rootCmd.Flags().Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	rootCmd.Flags().Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	rootCmd.Flags().Bool("watch-config", true, "配置文件变化时热更新日志级别")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	return cfg, dir, nil
}

func runServer(cmd *cobra.Command) error {
	cfg, dir, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	migrate, _ := cmd.Flags().GetBool("migrate")
	migrateOnly, _ := cmd.Flags().GetBool("migrate-only")
	cfg.ForceMigrate = migrate || migrateOnly
	cfg.MigrateOnly = migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if migrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		application.Close(context.Background())
		return nil
	}

	if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			file := filepath.Join(dir, "config.yaml")
			if err := configwatcher.WatchConfig(ctx, file, application.ApplyConfig); err != nil {
				logger.Log.Warn("Config watcher disabled", zap.Error(err))
			}
		}()
	}

	application.Run()
	return nil
}
