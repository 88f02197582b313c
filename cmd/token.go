package cmd

import (
	"fmt"
	"mimir_backend/internal/util"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd 本地调试用，签发与认证服务格式一致的令牌
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a development session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			userID = uuid.NewString()
		}
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := util.GenerateJWT(userID, cfg.JWT, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "用户ID，为空时随机生成")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "有效期")
}
