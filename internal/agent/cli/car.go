package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-car-market/internal/agent/api"
)

// NewCarCmd создаёт группу CLI-команд для работы с машинами.
//
// Подкоманды:
//   - create: создание машины (владелец — текущий пользователь);
//   - list: список своих машин с фильтрами;
//   - get: машина по id;
//   - delete: удаление машины по id.
//
// Все команды требуют сохранённого access токена (carmarket login).
func NewCarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "car",
		Short: "Работа с машинами",
	}

	cmd.AddCommand(newCarCreateCmd(app))
	cmd.AddCommand(newCarListCmd(app))
	cmd.AddCommand(newCarGetCmd(app))
	cmd.AddCommand(newCarDeleteCmd(app))

	return cmd
}

func newCarCreateCmd(app *App) *cobra.Command {
	var req api.CarRequest
	var description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать машину",
		Long: `Создание машины. Владельцем становится текущий пользователь.

Пример:
  carmarket car create --model Civic --factory-year 2020 --model-year 2021 \
    --color black --plate ABC1234 --fuel-type flex --transmission manual \
    --price 85000.00 --brand-id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			if description != "" {
				req.Description = &description
			}

			c := NewAPIClient(app.ServerURL)
			car, err := c.CreateCar(req, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "car created: id=%d model=%s plate=%s\n", car.ID, car.Model, car.Plate)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Model, "model", "", "car model")
	cmd.Flags().IntVar(&req.FactoryYear, "factory-year", 0, "factory year (1900..2030)")
	cmd.Flags().IntVar(&req.ModelYear, "model-year", 0, "model year (1900..2030)")
	cmd.Flags().StringVar(&req.Color, "color", "", "car color")
	cmd.Flags().StringVar(&req.Plate, "plate", "", "license plate (7..10 chars)")
	cmd.Flags().StringVar(&req.FuelType, "fuel-type", "", "fuel type (gasoline|ethanol|flex|diesel|electric|hybrid)")
	cmd.Flags().StringVar(&req.Transmission, "transmission", "", "transmission (manual|automatic|semi_automatic|cvt)")
	cmd.Flags().StringVar(&req.Price, "price", "", "price, e.g. 85000.00")
	cmd.Flags().StringVar(&description, "description", "", "car description")
	cmd.Flags().Int64Var(&req.BrandID, "brand-id", 0, "brand id")
	cmd.MarkFlagRequired("model")
	cmd.MarkFlagRequired("factory-year")
	cmd.MarkFlagRequired("model-year")
	cmd.MarkFlagRequired("color")
	cmd.MarkFlagRequired("plate")
	cmd.MarkFlagRequired("fuel-type")
	cmd.MarkFlagRequired("transmission")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("brand-id")

	return cmd
}

func newCarListCmd(app *App) *cobra.Command {
	var f api.CarListFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список своих машин",
		Long: `Список машин текущего пользователя. Чужие машины не показываются.

Пример:
  carmarket car list --search civic --fuel-type flex
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListCars(f, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			for _, car := range resp.Cars {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s %s\t%s\t%s\n",
					car.ID, car.Brand.Name, car.Model, car.Plate, car.Price)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d (offset=%d limit=%d)\n", len(resp.Cars), resp.Offset, resp.Limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "substring of model or plate")
	cmd.Flags().StringVar(&f.FuelType, "fuel-type", "", "filter by fuel type")
	cmd.Flags().StringVar(&f.Transmission, "transmission", "", "filter by transmission")
	cmd.Flags().StringVar(&f.MinPrice, "min-price", "", "inclusive lower price bound")
	cmd.Flags().StringVar(&f.MaxPrice, "max-price", "", "inclusive upper price bound")

	return cmd
}

func newCarGetCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Машина по id",
		Long: `Карточка машины. Доступна только владельцу.

Пример:
  carmarket car get --id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			car, err := c.GetCar(id, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:           %d\n", car.ID)
			fmt.Fprintf(out, "brand:        %s\n", car.Brand.Name)
			fmt.Fprintf(out, "model:        %s\n", car.Model)
			fmt.Fprintf(out, "years:        %d/%d\n", car.FactoryYear, car.ModelYear)
			fmt.Fprintf(out, "color:        %s\n", car.Color)
			fmt.Fprintf(out, "plate:        %s\n", car.Plate)
			fmt.Fprintf(out, "fuel:         %s\n", car.FuelType)
			fmt.Fprintf(out, "transmission: %s\n", car.Transmission)
			fmt.Fprintf(out, "price:        %s\n", car.Price)
			fmt.Fprintf(out, "available:    %t\n", car.IsAvailable)
			fmt.Fprintf(out, "owner:        %s\n", car.Owner.Username)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "car id")
	cmd.MarkFlagRequired("id")

	return cmd
}

func newCarDeleteCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить машину по id",
		Long: `Удаление машины. Доступно только владельцу.

Пример:
  carmarket car delete --id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(app); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteCar(id, app.Creds.AccessToken); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "car %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "car id")
	cmd.MarkFlagRequired("id")

	return cmd
}
