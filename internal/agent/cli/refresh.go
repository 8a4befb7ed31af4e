package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/config"
)

// NewRefreshCmd создаёт CLI-команду для перевыпуска access токена.
//
// Команда использует сохранённый access токен для получения свежего
// с сервера car-market. Обновлённый токен сохраняется в локальный
// конфигурационный файл.
//
// Команда не принимает аргументов. Перед выполнением требуется,
// чтобы токен уже был сохранён (например, после выполнения команды login).
//
// Пример использования:
//
//	carmarket refresh
//
// Если токен отсутствует в конфигурации, команда завершится
// с ошибкой и предложит выполнить повторный вход (login).
func NewRefreshCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Перевыпустить access токен",
		Long: `Перевыпускает access token по сохранённому.

Пример:
  carmarket refresh
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token in config, run: carmarket login")
			}

			c := NewAPIClient(app.ServerURL)
			// выпускает свежий jwt по действующему
			resp, err := c.Refresh(app.Creds.AccessToken)
			if err != nil {
				return err
			}
			// сохраняет в структуру
			app.Creds.AccessToken = resp.AccessToken
			app.Creds.TokenType = resp.TokenType
			// сохраняет локально
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "refresh ok (token updated)")
			return nil
		},
	}

	return cmd
}
