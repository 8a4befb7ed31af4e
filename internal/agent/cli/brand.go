package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/api"
)

// NewBrandCmd создаёт группу CLI-команд для работы с марками.
//
// Подкоманды:
//   - create: создание марки;
//   - list: список марок с поиском по имени;
//   - delete: удаление марки по id.
//
// Все команды требуют сохранённого access токена (carmarket login).
func NewBrandCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Работа с марками",
	}

	cmd.AddCommand(newBrandCreateCmd(app))
	cmd.AddCommand(newBrandListCmd(app))
	cmd.AddCommand(newBrandDeleteCmd(app))

	return cmd
}

// requireToken проверяет, что access токен сохранён локально.
func requireToken(app *App) error {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return fmt.Errorf("no access_token in config, run: carmarket login")
	}
	return nil
}

func newBrandCreateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать марку",
		Long: `Создание марки.

Пример:
  carmarket brand create --name Honda --description "Japanese manufacturer"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			req := api.BrandRequest{Name: name}
			if description != "" {
				req.Description = &description
			}

			c := NewAPIClient(app.ServerURL)
			brand, err := c.CreateBrand(req, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "brand created: id=%d name=%s\n", brand.ID, brand.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "brand name")
	cmd.Flags().StringVar(&description, "description", "", "brand description")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newBrandListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список марок",
		Long: `Список марок с поиском по имени.

Пример:
  carmarket brand list --search hon
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListBrands(search, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			for _, b := range resp.Brands {
				active := "active"
				if !b.IsActive {
					active = "inactive"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", b.ID, b.Name, active)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d (offset=%d limit=%d)\n", len(resp.Brands), resp.Offset, resp.Limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring of brand name")

	return cmd
}

func newBrandDeleteCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить марку по id",
		Long: `Удаление марки. Марка с машинами не удаляется.

Пример:
  carmarket brand delete --id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteBrand(id, app.Creds.AccessToken); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "brand %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "brand id")
	cmd.MarkFlagRequired("id")

	return cmd
}
