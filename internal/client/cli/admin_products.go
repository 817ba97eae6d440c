package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avolkovs/storekeeper/internal/client/guard"
	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/services"
	"github.com/avolkovs/storekeeper/internal/client/table"
	"github.com/avolkovs/storekeeper/internal/client/validation"
)

func productColumns() []table.Column[models.Product] {
	return []table.Column[models.Product]{
		{
			Key: "id", Title: "ID",
			Value: func(p models.Product) string { return strconv.FormatInt(p.ID, 10) },
			Compare: func(a, b models.Product) int {
				switch {
				case a.ID < b.ID:
					return -1
				case a.ID > b.ID:
					return 1
				default:
					return 0
				}
			},
		},
		{Key: "name", Title: "Name", Value: func(p models.Product) string { return p.Name }},
		{Key: "brand", Title: "Brand", Value: func(p models.Product) string { return p.Brand }},
		{
			Key: "price", Title: "Price",
			Value: func(p models.Product) string { return strconv.FormatFloat(p.Price, 'f', 2, 64) },
			Compare: func(a, b models.Product) int {
				switch {
				case a.Price < b.Price:
					return -1
				case a.Price > b.Price:
					return 1
				default:
					return 0
				}
			},
		},
		{
			Key: "inventory", Title: "Inventory",
			Value: func(p models.Product) string { return strconv.FormatInt(p.Inventory, 10) },
			Compare: func(a, b models.Product) int {
				switch {
				case a.Inventory < b.Inventory:
					return -1
				case a.Inventory > b.Inventory:
					return 1
				default:
					return 0
				}
			},
		},
		{Key: "category", Title: "Category", Value: func(p models.Product) string { return p.CategoryName() }},
	}
}

// AdminProducts runs the catalog-management screen. Admin only.
func (a *App) AdminProducts(ctx context.Context) error {
	switch guard.RequireAdmin(a.session.Snapshot()) {
	case guard.RedirectLogin:
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	case guard.RedirectUnauthorized:
		fmt.Fprintln(a.out, "This screen requires the admin role.")
		return nil
	}

	tc := table.New(productColumns())
	screen := tableScreen[models.Product]{
		title:     "products",
		reload:    func(ctx context.Context) ([]models.Product, error) { return a.products.All(ctx) },
		extra:     a.adminProductCommand,
		extraHelp: "add, edit <id>, del <id>",
	}
	return runTableScreen(ctx, a, tc, screen)
}

func (a *App) adminProductCommand(ctx context.Context, cmd string, args []string) (bool, bool, error) {
	switch cmd {
	case "add":
		return true, true, a.adminCreateProduct(ctx)
	case "edit":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return true, false, nil
		}
		return true, true, a.adminEditProduct(ctx, id)
	case "del":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: del <id>")
			return true, false, nil
		}
		return true, true, a.adminDeleteProduct(ctx, id)
	}
	return false, false, nil
}

// chooseCategory lists the categories and reads a pick by id.
func (a *App) chooseCategory(ctx context.Context, current int64) (int64, error) {
	categories, err := a.categories.All(ctx)
	if err != nil {
		a.printErr(err)
		return 0, err
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "  %d: %s\n", c.ID, c.Name)
	}

	prompt := "Category id"
	var answer string
	if current > 0 {
		answer, err = getOptionalText(a.reader, prompt, strconv.FormatInt(current, 10), a.out)
	} else {
		answer, err = getSimpleText(a.reader, prompt, a.out)
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a valid category id.")
		return 0, err
	}
	return id, nil
}

func (a *App) adminCreateProduct(ctx context.Context) error {
	form := validation.ProductForm{}
	var err error
	if form.Name, err = getSimpleText(a.reader, "Product name", a.out); err != nil {
		return err
	}
	if form.Brand, err = getSimpleText(a.reader, "Brand", a.out); err != nil {
		return err
	}
	if form.Price, err = a.readFloat("Price"); err != nil {
		return err
	}
	if form.Inventory, err = a.readInt64("Inventory"); err != nil {
		return err
	}
	if form.CategoryID, err = a.chooseCategory(ctx, 0); err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	product, err := a.products.Create(ctx, services.ProductCreateRequest{
		Name:        form.Name,
		Brand:       form.Brand,
		Price:       form.Price,
		Inventory:   form.Inventory,
		Description: description,
		CategoryID:  form.CategoryID,
	})
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Created product %d.\n", product.ID)
	return nil
}

func (a *App) adminEditProduct(ctx context.Context, id int64) error {
	current, err := a.products.GetByID(ctx, id)
	if err != nil {
		a.printErr(err)
		return err
	}

	form := validation.ProductForm{}
	if form.Name, err = getOptionalText(a.reader, "Product name", current.Name, a.out); err != nil {
		return err
	}
	if form.Brand, err = getOptionalText(a.reader, "Brand", current.Brand, a.out); err != nil {
		return err
	}
	priceText, err := getOptionalText(a.reader, "Price", strconv.FormatFloat(current.Price, 'f', 2, 64), a.out)
	if err != nil {
		return err
	}
	if form.Price, err = strconv.ParseFloat(priceText, 64); err != nil {
		fmt.Fprintln(a.out, "Not a valid price.")
		return err
	}
	inventoryText, err := getOptionalText(a.reader, "Inventory", strconv.FormatInt(current.Inventory, 10), a.out)
	if err != nil {
		return err
	}
	if form.Inventory, err = strconv.ParseInt(inventoryText, 10, 64); err != nil {
		fmt.Fprintln(a.out, "Not a valid inventory count.")
		return err
	}
	if form.CategoryID, err = a.chooseCategory(ctx, current.Category.ID); err != nil {
		return err
	}

	if err := validation.Check(form); err != nil {
		a.printErr(err)
		return err
	}

	req := services.ProductUpdateRequest{
		Name:       &form.Name,
		Brand:      &form.Brand,
		Price:      &form.Price,
		Inventory:  &form.Inventory,
		CategoryID: &form.CategoryID,
	}
	if _, err := a.products.Update(ctx, id, req); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Product updated.")
	return nil
}

func (a *App) adminDeleteProduct(ctx context.Context, id int64) error {
	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete product %d? This cannot be undone.", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.products.Delete(ctx, id); err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Product deleted.")
	return nil
}

func (a *App) readFloat(prompt string) (float64, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a valid number.")
		return 0, err
	}
	return v, nil
}

func (a *App) readInt64(prompt string) (int64, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a valid number.")
		return 0, err
	}
	return v, nil
}
